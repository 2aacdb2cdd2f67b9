package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/curlylint/site/internal/registry"
	"github.com/curlylint/site/internal/site"
	"github.com/curlylint/site/internal/snippet"
	"github.com/curlylint/site/internal/view"
	"github.com/curlylint/site/web/src/templates/layouts"
	"github.com/curlylint/site/web/src/templates/pages"
)

// SiteSource provides the current site content.
type SiteSource interface {
	Get() *site.Site
}

// SiteHandler serves the site pages. Every snippet on a page gets its own
// renderer, registered so the client can finish mounting it.
type SiteHandler struct {
	sites     SiteSource
	renderers *registry.Registry
	tokenizer snippet.Tokenizer
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(sites SiteSource, renderers *registry.Registry, tokenizer snippet.Tokenizer) *SiteHandler {
	return &SiteHandler{sites: sites, renderers: renderers, tokenizer: tokenizer}
}

// mount creates, registers and mounts a renderer for the example. The result
// is the light first paint.
func (h *SiteHandler) mount(s *site.Site, ex site.Example) snippet.Rendering {
	rd := ex.NewRenderer(h.tokenizer, s.Theme, registry.NewID())
	h.renderers.Put(rd)
	return rd.Mount()
}

func (h *SiteHandler) page(c echo.Context, s *site.Site, title string, sidebar bool) layouts.Page {
	return layouts.Page{
		Title:   title,
		Site:    s,
		Theme:   ThemeFromSession(c),
		Flash:   view.GetFlashData(c),
		Path:    c.Request().URL.Path,
		Sidebar: sidebar,
	}
}

// HomeGet handles the GET request for the home page.
func (h *SiteHandler) HomeGet(c echo.Context) error {
	s := h.sites.Get()

	data := pages.HomeData{
		Site:        s,
		Install:     h.mount(s, s.Install),
		Interactive: true,
	}
	for _, ex := range s.Examples {
		data.Examples = append(data.Examples, pages.LabeledSnippet{
			Label:     ex.Label,
			Rendering: h.mount(s, ex),
		})
	}

	finalComponent := layouts.Base(h.page(c, s, s.Tagline, false), pages.Home(data))
	return c.Render(http.StatusOK, "", finalComponent)
}
