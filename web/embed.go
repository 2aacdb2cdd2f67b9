package web

import "embed"

// FS contains the static assets served under /static and copied by the
// site export. The patterns are relative to this file's directory.
//
//go:embed static/*
var FS embed.FS

// StaticPrefix is the URL path the assets are served from.
const StaticPrefix = "/static"
