// Package highlight adapts the chroma lexers to the snippet.Tokenizer
// interface.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/curlylint/site/internal/snippet"
)

// aliases maps the language ids used by the site content to chroma lexer
// names.
var aliases = map[string]string{
	"twig":     "twig",
	"django":   "django",
	"jinja":    "django",
	"jinja2":   "django",
	"nunjucks": "twig",
	"liquid":   "twig",
	"html":     "html",
	"bash":     "bash",
	"shell":    "bash",
	"sh":       "bash",
}

// ChromaTokenizer tokenizes snippets with chroma. Language ids missing from
// the alias table are looked up as chroma lexer names. The zero value is
// ready to use.
type ChromaTokenizer struct{}

// NewChromaTokenizer returns a tokenizer.
func NewChromaTokenizer() *ChromaTokenizer {
	return &ChromaTokenizer{}
}

var _ snippet.Tokenizer = (*ChromaTokenizer)(nil)

func (t *ChromaTokenizer) lexer(language string) chroma.Lexer {
	id := strings.ToLower(strings.TrimSpace(language))
	if id == "" {
		return nil
	}
	if name, ok := aliases[id]; ok {
		return lexers.Get(name)
	}
	return lexers.Get(id)
}

// Tokenize implements snippet.Tokenizer.
func (t *ChromaTokenizer) Tokenize(text, language string) ([]snippet.TokenLine, error) {
	lexer := t.lexer(language)
	if lexer == nil {
		return nil, fmt.Errorf("%q: %w", language, snippet.ErrUnsupportedLanguage)
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(&chroma.TokeniseOptions{State: "root", EnsureLF: true}, text)
	if err != nil {
		return nil, fmt.Errorf("tokenise %s: %w", language, err)
	}

	var (
		out  []snippet.TokenLine
		line snippet.TokenLine
	)
	for tok := it(); tok != chroma.EOF; tok = it() {
		cats := categories(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				out = append(out, line)
				line = nil
			}
			if part != "" {
				line = append(line, snippet.TokenSpan{Text: part, Categories: cats})
			}
		}
	}
	out = append(out, line)

	// Lexers configured with EnsureNL append a newline the source never had.
	if want := lineCount(text); len(out) > want {
		out = out[:want]
	}
	return out, nil
}

func lineCount(text string) int {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Count(text, "\n") + 1
}

// categories lists the chroma category, sub-category and type of tt,
// general first, without duplicates. Types outside the category ranges, such
// as Error and Other, only carry their own name.
func categories(tt chroma.TokenType) []string {
	if tt.Category() == 0 {
		return []string{tt.String()}
	}
	seq := []chroma.TokenType{tt.Category(), tt.SubCategory(), tt}
	out := make([]string, 0, len(seq))
	for _, c := range seq {
		name := c.String()
		if len(out) > 0 && out[len(out)-1] == name {
			continue
		}
		out = append(out, name)
	}
	return out
}
