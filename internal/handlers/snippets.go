package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/curlylint/site/internal/middleware"
	"github.com/curlylint/site/internal/registry"
	"github.com/curlylint/site/internal/snippet"
	"github.com/curlylint/site/internal/view"
)

// SnippetAttachPost finishes the first mount of a snippet once the client
// knows its real theme. The response replaces the light first paint.
func (h *SiteHandler) SnippetAttachPost(c echo.Context) error {
	return h.applyPreference(c, (*snippet.Renderer).Attach)
}

// SnippetPreferencePost rebuilds a mounted snippet after a theme change.
func (h *SiteHandler) SnippetPreferencePost(c echo.Context) error {
	return h.applyPreference(c, (*snippet.Renderer).SetPreference)
}

func (h *SiteHandler) applyPreference(c echo.Context, apply func(*snippet.Renderer, bool) snippet.Rendering) error {
	var req SnippetPreferenceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid preference")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid preference")
	}

	rd, err := h.renderers.Get(req.ID)
	if errors.Is(err, registry.ErrNotFound) {
		// The page keeps its current rendering; a reload starts over.
		return echo.NewHTTPError(http.StatusNotFound, "Snippet expired")
	}
	if err != nil {
		return err
	}

	dark := req.Dark
	switch ThemeFromSession(c) {
	case "dark":
		dark = true
	case "light":
		dark = false
	}

	rendering := apply(rd, dark)
	middleware.FromContext(c.Request().Context()).Debug("Rebuilt snippet",
		"snippet", rendering.ID, "version", rendering.Version, "dark", dark, "theme", rendering.Theme.Name,
		"annotated_lines", rendering.AnnotatedLines(), "fallback", rendering.Fallback)

	fragment := view.AdaptGomponentToTempl(view.Snippet(rendering, view.SnippetOptions{Interactive: true}))
	return c.Render(http.StatusOK, "", fragment)
}
