package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/curlylint/site/internal/site"
	"github.com/curlylint/site/internal/snippet"
	"github.com/curlylint/site/internal/view"
)

// LabeledSnippet is a rendered example with its tab label.
type LabeledSnippet struct {
	Label     string
	Rendering snippet.Rendering
}

// HomeData is everything the home page shows.
type HomeData struct {
	Site        *site.Site
	Install     snippet.Rendering
	Examples    []LabeledSnippet
	Interactive bool
}

// Home is the landing page.
func Home(d HomeData) cmp.Node {
	opts := view.SnippetOptions{Interactive: d.Interactive}

	return cmp.Group{
		g.Header(
			g.Class("hero"),
			g.H1(cmp.Text(d.Site.Title)),
			g.P(g.Class("hero__subtitle"), cmp.Text(d.Site.Tagline)),
			g.A(g.Class("button"), g.Href(site.GettingStartedPath), cmp.Text("Get Started")),
		),
		g.Div(
			g.Class("row"),
			g.Section(
				g.Class("col col--5"),
				g.H2(cmp.Text("Install and run")),
				g.P(cmp.Text("Grab curlylint from PyPI, and start linting HTML directly in your templates.")),
				view.Snippet(d.Install, opts),
			),
			g.Section(
				g.Class("col col--7 config-snippets"),
				cmp.Map(d.Examples, func(ex LabeledSnippet) cmp.Node {
					return g.Div(
						g.Class("tab"),
						g.H3(cmp.Text(ex.Label)),
						g.Div(g.Class("config-snippet"), view.Snippet(ex.Rendering, opts)),
					)
				}),
			),
		),
		g.Hr(),
		g.Section(
			g.Class("features row"),
			cmp.Map(d.Site.Features, func(f site.Feature) cmp.Node {
				return g.Div(
					g.Class("col col--4 feature"),
					g.H3(cmp.Text(f.Title)),
					g.P(cmp.Text(f.Description)),
				)
			}),
		),
	}
}

// Doc renders a prose page.
func Doc(title string, paragraphs []string) cmp.Node {
	return g.Article(
		g.H1(cmp.Text(title)),
		cmp.Map(paragraphs, func(p string) cmp.Node {
			return g.P(cmp.Text(p))
		}),
	)
}

// RulesIndex lists every rule.
func RulesIndex(rules []site.Rule) cmp.Node {
	return g.Article(
		g.H1(cmp.Text("All rules")),
		g.Ul(cmp.Map(rules, func(r site.Rule) cmp.Node {
			return g.Li(
				g.A(g.Href(site.RulePath(r.ID)), g.Code(cmp.Text(r.ID))),
				cmp.Text(" – "+r.Description),
			)
		})),
	)
}

// RuleData is a rule page with its rendered example, if the rule has one.
type RuleData struct {
	Rule        site.Rule
	Example     *snippet.Rendering
	Interactive bool
}

// Rule documents a single rule.
func Rule(d RuleData) cmp.Node {
	r := d.Rule
	return g.Article(
		g.H1(cmp.Text(r.ID)),
		g.BlockQuote(cmp.Text(r.Description)),
		g.Dl(
			g.Dt(cmp.Text("Type")), g.Dd(cmp.Text(r.TypeLabel())),
			cmp.If(r.Impact != "", cmp.Group{g.Dt(cmp.Text("Impact")), g.Dd(cmp.Text(r.Impact))}),
			cmp.If(len(r.Tags) > 0, cmp.Group{
				g.Dt(cmp.Text("Tags")),
				g.Dd(cmp.Map(r.Tags, func(t string) cmp.Node {
					return g.Code(g.Class("tag"), cmp.Text(t))
				})),
			}),
		),
		cmp.If(d.Example != nil, cmp.Group{
			g.H2(cmp.Text("Example")),
			exampleSnippet(d),
		}),
		cmp.If(len(r.Resources) > 0, cmp.Group{
			g.H2(cmp.Text("Resources")),
			g.Ul(cmp.Map(r.Resources, func(res site.Resource) cmp.Node {
				return g.Li(g.A(g.Href(res.URL), cmp.Text(res.Title)))
			})),
		}),
	)
}

func exampleSnippet(d RuleData) cmp.Node {
	if d.Example == nil {
		return nil
	}
	return view.Snippet(*d.Example, view.SnippetOptions{Interactive: d.Interactive})
}
