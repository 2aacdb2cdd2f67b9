// Package site holds the content model of the documentation site: home page
// snippets, rule documentation and theme configuration.
package site

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/curlylint/site/internal/snippet"
	"github.com/curlylint/site/internal/theme"
	"github.com/curlylint/site/web/content"
)

// ErrRuleNotFound is returned when looking up an unknown rule id.
var ErrRuleNotFound = errors.New("rule not found")

// Site is the whole site content.
type Site struct {
	Title       string       `yaml:"title" validate:"required"`
	Tagline     string       `yaml:"tagline"`
	Description string       `yaml:"description"`
	BaseURL     string       `yaml:"base_url" validate:"omitempty,url"`
	Repository  string       `yaml:"repository" validate:"omitempty,url"`
	Theme       theme.Config `yaml:"theme"`
	Install     Example      `yaml:"install"`
	Examples    []Example    `yaml:"examples" validate:"dive"`
	Features    []Feature    `yaml:"features" validate:"dive"`
	Rules       []Rule       `yaml:"rules" validate:"unique=ID,dive"`
	Docs        Docs         `yaml:"docs"`
}

// Example is a snippet shown on the site, with optional linter output.
type Example struct {
	Label           string `yaml:"label"`
	snippet.Snippet `yaml:",inline"`
	Annotations     []snippet.Annotation `yaml:"annotations" validate:"dive"`
	// Theme overrides the site theme for this example only.
	Theme *theme.Def `yaml:"theme,omitempty"`
}

// Feature is a selling point on the home page.
type Feature struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// Resource is a link to further reading about a rule.
type Resource struct {
	Title string `yaml:"title" validate:"required"`
	URL   string `yaml:"url" validate:"required,url"`
}

// Rule documents one linter rule.
type Rule struct {
	ID          string     `yaml:"id" validate:"required"`
	Type        string     `yaml:"type" validate:"required"`
	Description string     `yaml:"description" validate:"required"`
	Impact      string     `yaml:"impact"`
	Recommended *bool      `yaml:"recommended,omitempty"`
	Tags        []string   `yaml:"tags"`
	Resources   []Resource `yaml:"resources" validate:"dive"`
	Example     *Example   `yaml:"example,omitempty"`
}

// Docs holds the prose pages, one paragraph per entry.
type Docs struct {
	GettingStarted []string `yaml:"getting_started"`
	Ideas          []string `yaml:"ideas"`
}

// Rule returns the rule with the given id.
func (s *Site) Rule(id string) (Rule, error) {
	for _, r := range s.Rules {
		if r.ID == id {
			return r, nil
		}
	}
	return Rule{}, fmt.Errorf("%q: %w", id, ErrRuleNotFound)
}

var validate = validator.New()

// Parse decodes and validates site YAML.
func Parse(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode site config: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("invalid site config: %w", err)
	}
	return &s, nil
}

// Load reads the site configuration at path on fs. An empty path loads the
// embedded default content.
func Load(fs afero.Fs, path string) (*Site, error) {
	if path == "" {
		return Parse(content.SiteYAML)
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open site config: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config: %w", err)
	}
	return Parse(data)
}
