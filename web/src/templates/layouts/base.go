package layouts

import (
	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/curlylint/site/internal/site"
	"github.com/curlylint/site/internal/view"
	"github.com/curlylint/site/web"
	"github.com/curlylint/site/web/src/templates/partials"
)

// Page carries what every page layout needs besides its content.
type Page struct {
	Title string
	Site  *site.Site
	// Theme is the viewer's explicit choice, "light" or "dark", or empty to
	// follow the system preference.
	Theme   string
	Flash   view.FlashData
	Path    string
	Sidebar bool
	// Static pages are exported without htmx or the theme controls.
	Static bool
}

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// themeScript keeps data-theme on <html> in sync with the system preference
// unless the viewer picked one, and tells snippets to remount on change.
const themeScript = `(function () {
  var root = document.documentElement;
  var media = window.matchMedia("(prefers-color-scheme: dark)");
  function sync() {
    if (!root.dataset.explicit) root.dataset.theme = media.matches ? "dark" : "light";
  }
  function changed() {
    document.body.dispatchEvent(new Event("theme-change"));
  }
  sync();
  media.addEventListener("change", function () { sync(); changed(); });
  document.addEventListener("theme-set", function (e) {
    var value = e.detail && e.detail.value;
    if (value) {
      root.dataset.explicit = "true";
      root.dataset.theme = value;
    } else {
      delete root.dataset.explicit;
      sync();
    }
    changed();
  });
})();`

// Base wraps page content in the site chrome. It returns a templ.Component so
// it can be rendered by the universal renderer like any other page.
func Base(p Page, content cmp.Node) templ.Component {
	var title, description string
	if p.Site != nil {
		title = p.Site.Title
		description = p.Site.Description
	}

	htmlAttrs := cmp.Group{g.Lang("en")}
	if p.Theme != "" {
		htmlAttrs = append(htmlAttrs,
			cmp.Attr("data-theme", p.Theme),
			cmp.Attr("data-explicit", "true"),
		)
	}

	doc := g.Doctype(
		g.HTML(
			htmlAttrs,
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(p.Title, title))),
				cmp.If(description != "", g.Meta(g.Name("description"), g.Content(description))),
				g.Link(g.Rel("stylesheet"), g.Href(web.StaticPrefix+"/css/site.css")),
				cmp.If(!p.Static, cmp.Group{
					g.Script(g.Src(htmxSrc), g.Defer()),
					g.Script(cmp.Raw(themeScript)),
				}),
			),
			g.Body(
				partials.Navbar(p.Site, !p.Static),
				partials.Flash(p.Flash),
				cmp.Iff(p.Sidebar && p.Site != nil, func() cmp.Node {
					return g.Div(
						g.Class("layout"),
						partials.Sidebar(p.Site.Sidebar(), p.Path),
						g.Main(content),
					)
				}),
				cmp.If(!p.Sidebar || p.Site == nil, g.Main(content)),
			),
		),
	)
	return view.AdaptGomponentToTempl(doc)
}
