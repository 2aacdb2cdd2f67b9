// Package theme resolves the syntax highlighting palette for a snippet from
// site configuration and the viewer's light/dark preference.
package theme

import (
	"strings"
)

// Style describes how a run of text is painted.
type Style struct {
	Color      string `yaml:"color,omitempty"`
	Background string `yaml:"background,omitempty"`
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
}

// IsZero reports whether the style sets nothing.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Merge returns s with every attribute set in o applied on top. Colors are
// replaced; Bold, Italic and Underline accumulate and are never cleared.
func (s Style) Merge(o Style) Style {
	if o.Color != "" {
		s.Color = o.Color
	}
	if o.Background != "" {
		s.Background = o.Background
	}
	s.Bold = s.Bold || o.Bold
	s.Italic = s.Italic || o.Italic
	s.Underline = s.Underline || o.Underline
	return s
}

// CSS renders the style as an inline style attribute value.
func (s Style) CSS() string {
	var parts []string
	if s.Color != "" {
		parts = append(parts, "color:"+s.Color)
	}
	if s.Background != "" {
		parts = append(parts, "background-color:"+s.Background)
	}
	if s.Bold {
		parts = append(parts, "font-weight:bold")
	}
	if s.Italic {
		parts = append(parts, "font-style:italic")
	}
	if s.Underline {
		parts = append(parts, "text-decoration:underline")
	}
	return strings.Join(parts, ";")
}

// Rule applies a style to every token tagged with one of Types.
type Rule struct {
	Types []string `yaml:"types" validate:"min=1"`
	Style Style    `yaml:",inline"`
}

// Theme is a named palette: a plain style for the code block and rules
// mapping token categories to styles.
type Theme struct {
	Name  string `yaml:"name"`
	Plain Style  `yaml:"plain"`
	Rules []Rule `yaml:"rules" validate:"dive"`
}

// StyleFor returns the style for a token tagged with categories. Categories
// are applied in order, so the color and background of the most specific one
// win; later rules override earlier rules for the same category. Bold, Italic
// and Underline set by any matching rule stay set.
func (t Theme) StyleFor(categories []string) Style {
	var out Style
	for _, c := range categories {
		for _, r := range t.Rules {
			for _, typ := range r.Types {
				if typ == c {
					out = out.Merge(r.Style)
				}
			}
		}
	}
	return out
}

// IsZero reports whether t is the empty theme.
func (t Theme) IsZero() bool {
	return t.Name == "" && t.Plain.IsZero() && len(t.Rules) == 0
}
