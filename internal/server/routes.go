package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/curlylint/site/internal/handlers"
	"github.com/curlylint/site/internal/middleware"
	"github.com/curlylint/site/internal/site"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	h := s.siteHandler
	snippetLimiter := middleware.RateLimiter(20)

	s.E.GET("/", h.HomeGet)
	s.E.GET(site.GettingStartedPath, h.GettingStartedGet)
	s.E.GET(site.IdeasPath, h.IdeasGet)
	s.E.GET(site.RulesPath, h.RulesGet)
	s.E.GET(site.RulesPath+"/:id", h.RuleGet)

	s.E.POST("/snippets/:id/attach", h.SnippetAttachPost, snippetLimiter)
	s.E.POST("/snippets/:id/preference", h.SnippetPreferencePost, snippetLimiter)
	s.E.POST("/theme", handlers.ThemePost)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
