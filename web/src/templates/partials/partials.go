package partials

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/curlylint/site/internal/site"
	"github.com/curlylint/site/internal/view"
)

// Navbar renders the top navigation, with the theme switcher when
// interactive.
func Navbar(s *site.Site, interactive bool) cmp.Node {
	title := "curlylint"
	var repo string
	if s != nil {
		title = s.Title
		repo = s.Repository
	}
	return g.Header(
		g.Class("navbar"),
		g.A(g.Href("/"), g.Class("navbar__brand"), cmp.Text(title)),
		g.Nav(
			g.A(g.Href(site.GettingStartedPath), cmp.Text("Docs")),
			cmp.Text(" "),
			g.A(g.Href(site.RulesPath), cmp.Text("Rules")),
			cmp.If(repo != "", cmp.Group{cmp.Text(" "), g.A(g.Href(repo), cmp.Text("GitHub"))}),
		),
		cmp.If(interactive, ThemeSwitcher()),
	)
}

// ThemeSwitcher posts the chosen theme. Without JavaScript the form submits
// normally and the server redirects back.
func ThemeSwitcher() cmp.Node {
	return g.Form(
		g.Class("theme-switcher"),
		g.Method("post"),
		g.Action("/theme"),
		hx.Post("/theme"),
		hx.Swap("none"),
		themeButton("light", "Light"),
		themeButton("dark", "Dark"),
		themeButton("system", "System"),
	)
}

func themeButton(value, label string) cmp.Node {
	return g.Button(g.Type("submit"), g.Name("theme"), g.Value(value), cmp.Text(label))
}

// Flash renders flash messages, if any.
func Flash(f view.FlashData) cmp.Node {
	if f.Empty() {
		return cmp.Group{}
	}
	return g.Div(
		g.Class("flash"),
		cmp.Map(f.Success, func(m string) cmp.Node {
			return g.P(g.Class("flash--success"), cmp.Text(m))
		}),
		cmp.Map(f.Error, func(m string) cmp.Node {
			return g.P(g.Class("flash--error"), cmp.Text(m))
		}),
	)
}

// Sidebar renders the docs navigation, marking the current page.
func Sidebar(categories []site.NavCategory, current string) cmp.Node {
	return g.Aside(
		g.Class("sidebar"),
		cmp.Map(categories, func(c site.NavCategory) cmp.Node {
			return g.Section(
				g.H4(cmp.Text(c.Label)),
				g.Ul(cmp.Map(c.Items, func(it site.NavItem) cmp.Node {
					return g.Li(
						cmp.If(it.Href == current, g.Class("active")),
						g.A(g.Href(it.Href), cmp.Text(it.Title)),
					)
				})),
			)
		}),
	)
}
