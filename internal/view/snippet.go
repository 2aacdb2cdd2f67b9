package view

import (
	"strconv"
	"strings"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/curlylint/site/internal/snippet"
)

// darkVals makes htmx send the client's current theme with every snippet
// request. The page layout keeps data-theme on <html> up to date.
const darkVals = `js:{dark: document.documentElement.dataset.theme === "dark"}`

// SnippetOptions tune how a rendering is turned into HTML.
type SnippetOptions struct {
	// Interactive adds the htmx wiring for attach and preference changes.
	Interactive bool
}

// SnippetHostID is the DOM id of the element swapped on remount.
func SnippetHostID(id string) string {
	return "snippet-" + id
}

// AttachPath is the endpoint that finishes the first mount.
func AttachPath(id string) string {
	return "/snippets/" + id + "/attach"
}

// PreferencePath is the endpoint receiving later theme changes.
func PreferencePath(id string) string {
	return "/snippets/" + id + "/preference"
}

// Snippet renders a code snippet. Each call produces the whole subtree; the
// client swaps it in one piece, keyed by data-version.
func Snippet(r snippet.Rendering, opts SnippetOptions) cmp.Node {
	return g.Div(
		g.ID(SnippetHostID(r.ID)),
		g.Class("code-snippet-host"),
		cmp.If(opts.Interactive, remountAttrs(r)),
		g.Pre(
			g.Class(preClass(r)),
			cmp.If(!r.Theme.Plain.IsZero(), g.Style(r.Theme.Plain.CSS())),
			cmp.Attr("data-version", strconv.FormatUint(r.Version, 10)),
			cmp.Attr("data-phase", r.Phase.String()),
			cmp.Attr("data-theme", r.Theme.Name),
			cmp.Map(r.Lines, snippetLine),
		),
	)
}

func remountAttrs(r snippet.Rendering) cmp.Node {
	if r.Phase == snippet.MountedInitial {
		return cmp.Group{
			hx.Post(AttachPath(r.ID)),
			hx.Trigger("load"),
			hx.Swap("outerHTML"),
			cmp.Attr("hx-vals", darkVals),
		}
	}
	return cmp.Group{
		hx.Post(PreferencePath(r.ID)),
		hx.Trigger("theme-change from:body"),
		hx.Swap("outerHTML"),
		cmp.Attr("hx-vals", darkVals),
	}
}

func preClass(r snippet.Rendering) string {
	c := "code-snippet"
	if r.Language != "" {
		c += " language-" + r.Language
	}
	if r.Fallback {
		c += " code-snippet--raw"
	}
	return c
}

func snippetLine(l snippet.Line) cmp.Node {
	var spans cmp.Node = cmp.Map(l.Spans, tokenSpan)
	if len(l.Spans) == 0 {
		// Keep blank lines one row high.
		spans = cmp.Text("\n")
	}
	if !l.Annotated() {
		return g.Div(g.Class("token-line"), spans)
	}
	return g.Div(
		g.Class("token-line"),
		g.Span(
			g.Class("annotation"),
			g.Title(l.Annotation),
			cmp.Attr("data-annotation", l.Annotation),
			spans,
		),
	)
}

func tokenSpan(s snippet.Span) cmp.Node {
	if s.Style.IsZero() && len(s.Categories) == 0 {
		return g.Span(cmp.Text(s.Text))
	}
	return g.Span(
		cmp.If(len(s.Categories) > 0, g.Class("token "+strings.Join(s.Categories, " "))),
		cmp.If(!s.Style.IsZero(), g.Style(s.Style.CSS())),
		cmp.Text(s.Text),
	)
}
