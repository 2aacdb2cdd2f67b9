package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/curlylint/site/internal/config"
	"github.com/curlylint/site/internal/handlers"
	"github.com/curlylint/site/internal/highlight"
	appmiddleware "github.com/curlylint/site/internal/middleware"
	"github.com/curlylint/site/internal/registry"
	"github.com/curlylint/site/internal/rendering"
	"github.com/curlylint/site/internal/site"
	"github.com/curlylint/site/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E           *echo.Echo
	Cfg         *config.Config
	Sites       *site.Store
	Renderers   *registry.Registry
	siteHandler *handlers.SiteHandler
}

// New creates a new Server instance serving the content of sites.
func New(cfg *config.Config, sites *site.Store) *Server {
	renderers := registry.New(cfg.SnippetTTL, cfg.SnippetMax)
	siteHandler := handlers.NewSiteHandler(sites, renderers, highlight.NewChromaTokenizer())

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			appmiddleware.FromContext(c.Request().Context()).Info("request",
				"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.StaticFS(web.StaticPrefix, echo.MustSubFS(web.FS, "static"))
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	return &Server{
		E:           e,
		Cfg:         cfg,
		Sites:       sites,
		Renderers:   renderers,
		siteHandler: siteHandler,
	}
}

// setupErrorHandling installs an error handler that logs unexpected errors
// with a stack trace and answers with the HTTP error's status.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			slog.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
			he = echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}

		msg := fmt.Sprint(he.Message)
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(he.Code)
		} else {
			err = c.String(he.Code, msg)
		}
		if err != nil {
			slog.Error("Failed to write error response", "error", err)
		}
	}
}
