// Package snippet renders source-code samples with syntax highlighting and
// per-line linter annotations.
//
// A Renderer owns the lifecycle of one rendered snippet. The first render is
// always produced with the light theme, because the viewer's real preference
// is only known once the page is attached in the browser. Attach then
// rebuilds the whole line structure with the right theme under a new version
// key.
package snippet

import (
	"errors"

	"github.com/curlylint/site/internal/theme"
)

// ErrUnsupportedLanguage is returned by a Tokenizer that has no grammar for
// the requested language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Snippet is a source-code sample to be displayed.
type Snippet struct {
	Text     string `yaml:"code" validate:"required"`
	Language string `yaml:"language" validate:"required"`
}

// Annotation is a diagnostic message attached to a line of a snippet.
type Annotation struct {
	FilePath string `yaml:"file_path"`
	Line     int    `yaml:"line" validate:"min=1"`
	Column   int    `yaml:"column" validate:"min=0"`
	Message  string `yaml:"message" validate:"required"`
	Code     string `yaml:"code" validate:"required"`
}

// TokenSpan is a piece of source text tagged with grammar categories,
// ordered from the most general to the most specific.
type TokenSpan struct {
	Text       string
	Categories []string
}

// TokenLine is one source line worth of tokens.
type TokenLine []TokenSpan

// Tokenizer splits source text into highlighted lines. Index i of the result
// is source line i+1. Implementations must return ErrUnsupportedLanguage for
// languages they cannot handle.
type Tokenizer interface {
	Tokenize(text, language string) ([]TokenLine, error)
}

// Phase is the lifecycle state of a Renderer.
type Phase int

const (
	Unmounted Phase = iota
	MountedInitial
	MountedStable
)

func (p Phase) String() string {
	switch p {
	case Unmounted:
		return "unmounted"
	case MountedInitial:
		return "mounted-initial"
	case MountedStable:
		return "mounted-stable"
	default:
		return "unknown"
	}
}

// Span is a styled run of text ready for output.
type Span struct {
	Text       string
	Categories []string
	Style      theme.Style
}

// Line is the render descriptor for one source line.
type Line struct {
	// Number is the 1-based source line number.
	Number     int
	Spans      []Span
	Annotation string
}

// Annotated reports whether the line carries at least one message.
func (l Line) Annotated() bool {
	return l.Annotation != ""
}

// Rendering is the renderable output of a Renderer at a given version.
type Rendering struct {
	ID       string
	Language string
	Version  uint64
	Phase    Phase
	Dark     bool
	Theme    theme.Theme
	Lines    []Line
	Fallback bool
}

// AnnotatedLines counts the lines wrapped as annotated.
func (r Rendering) AnnotatedLines() int {
	n := 0
	for _, l := range r.Lines {
		if l.Annotated() {
			n++
		}
	}
	return n
}
