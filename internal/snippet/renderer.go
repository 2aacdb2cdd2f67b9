package snippet

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/curlylint/site/internal/theme"
)

// Options configure a Renderer.
type Options struct {
	// ID identifies the instance to the host page.
	ID string
	// Themes is the site theme configuration.
	Themes theme.Config
	// Override replaces the site configuration for this snippet only.
	Override *theme.Def
	Logger   *slog.Logger
}

// RenderState is the state exclusively owned by one Renderer.
type RenderState struct {
	Mounted     bool
	Phase       Phase
	Version     uint64
	Dark        bool
	Theme       theme.Theme
	TokenLines  []TokenLine
	Annotations *AnnotationIndex
}

// Renderer turns one snippet into renderable lines and tracks the
// mount/attach lifecycle that reconciles the first paint with the viewer's
// real light/dark preference.
//
// Events are serialized; when several preference changes race, the last one
// to be applied determines the final state.
type Renderer struct {
	mu          sync.Mutex
	tokenizer   Tokenizer
	snippet     Snippet
	annotations []Annotation
	opts        Options
	logger      *slog.Logger

	state    RenderState
	tokens   []TokenLine
	fallback bool
	lines    []Line
}

// NewRenderer creates a Renderer in the Unmounted phase. Tokenization is
// deferred to Mount.
func NewRenderer(tokenizer Tokenizer, src Snippet, annotations []Annotation, opts Options) *Renderer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		tokenizer:   tokenizer,
		snippet:     src,
		annotations: append([]Annotation(nil), annotations...),
		opts:        opts,
		logger:      logger.With("snippet", opts.ID, "language", src.Language),
	}
}

// ID returns the instance identifier given in Options.
func (r *Renderer) ID() string {
	return r.opts.ID
}

// Mount handles the host attach event. The first render always uses the
// light theme. Calling Mount again has no effect.
func (r *Renderer) Mount() Rendering {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mountLocked()
	return r.renderingLocked()
}

// Attach moves a freshly mounted renderer to its stable phase, resolving the
// theme for the viewer's real preference and rebuilding every line under a
// new version key. Once stable it behaves like SetPreference.
func (r *Renderer) Attach(dark bool) Rendering {
	return r.SetPreference(dark)
}

// SetPreference applies a light/dark preference change. Each call rebuilds
// the line structure and bumps the version key by one. A renderer that has
// not been mounted yet is mounted first.
func (r *Renderer) SetPreference(dark bool) Rendering {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mountLocked()
	r.rebuildLocked(dark)
	r.state.Phase = MountedStable
	r.state.Version++
	return r.renderingLocked()
}

// RenderStatic collapses mount and attach into one step for output where the
// preference is known up front and no client will remount.
func (r *Renderer) RenderStatic(dark bool) Rendering {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mountLocked()
	if r.state.Phase == MountedInitial && !dark {
		r.state.Phase = MountedStable
		return r.renderingLocked()
	}
	r.rebuildLocked(dark)
	r.state.Phase = MountedStable
	r.state.Version++
	return r.renderingLocked()
}

// Render returns the current rendering without changing state. An unmounted
// renderer yields an empty rendering.
func (r *Renderer) Render() Rendering {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renderingLocked()
}

// State returns a copy of the renderer's state.
func (r *Renderer) State() RenderState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Renderer) mountLocked() {
	if r.state.Mounted {
		return
	}
	r.tokens, r.fallback = r.tokenize()
	r.state.Mounted = true
	r.state.Phase = MountedInitial
	r.state.TokenLines = r.tokens
	r.state.Annotations = NewAnnotationIndex(r.annotations)
	r.rebuildLocked(false)
}

// rebuildLocked resolves the theme and constructs a fresh line structure.
// Nothing from the previous build is reused.
func (r *Renderer) rebuildLocked(dark bool) {
	t := theme.Resolve(r.opts.Themes, dark, r.opts.Override)
	r.state.Dark = dark
	r.state.Theme = t

	if r.fallback {
		r.lines = []Line{{Number: 1, Spans: []Span{{Text: r.snippet.Text}}}}
		return
	}

	lines := make([]Line, len(r.tokens))
	for i, tl := range r.tokens {
		spans := make([]Span, len(tl))
		for j, tok := range tl {
			spans[j] = Span{
				Text:       tok.Text,
				Categories: tok.Categories,
				Style:      t.StyleFor(tok.Categories),
			}
		}
		lines[i] = Line{
			Number:     i + 1,
			Spans:      spans,
			Annotation: r.state.Annotations.Build(i),
		}
	}
	r.lines = lines
}

func (r *Renderer) renderingLocked() Rendering {
	return Rendering{
		ID:       r.opts.ID,
		Language: r.snippet.Language,
		Version:  r.state.Version,
		Phase:    r.state.Phase,
		Dark:     r.state.Dark,
		Theme:    r.state.Theme,
		Lines:    r.lines,
		Fallback: r.fallback,
	}
}

// tokenize runs the tokenizer, turning any failure into the raw-text
// fallback.
func (r *Renderer) tokenize() (lines []TokenLine, fallback bool) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("tokenizer panicked, rendering raw text", "panic", fmt.Sprint(p))
			lines, fallback = nil, true
		}
	}()
	if r.tokenizer == nil {
		return nil, true
	}
	lines, err := r.tokenizer.Tokenize(r.snippet.Text, r.snippet.Language)
	switch {
	case errors.Is(err, ErrUnsupportedLanguage):
		r.logger.Debug("no grammar for language, rendering raw text")
		return nil, true
	case err != nil:
		r.logger.Warn("tokenization failed, rendering raw text", "error", err)
		return nil, true
	case len(lines) == 0:
		return nil, true
	}
	return lines, false
}
