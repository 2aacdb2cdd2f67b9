// Package content embeds the default site content.
package content

import _ "embed"

// SiteYAML is the default site configuration.
//
//go:embed site.yaml
var SiteYAML []byte
