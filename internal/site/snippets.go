package site

import (
	"github.com/curlylint/site/internal/snippet"
	"github.com/curlylint/site/internal/theme"
)

// NewRenderer creates an unmounted renderer for the example. The example's
// own theme, if any, overrides the site themes.
func (e Example) NewRenderer(tok snippet.Tokenizer, themes theme.Config, id string) *snippet.Renderer {
	return snippet.NewRenderer(tok, e.Snippet, e.Annotations, snippet.Options{
		ID:       id,
		Themes:   themes,
		Override: e.Theme,
	})
}
