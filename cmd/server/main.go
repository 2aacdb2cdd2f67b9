package main

import (
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/curlylint/site/internal/config"
	"github.com/curlylint/site/internal/logging"
	"github.com/curlylint/site/internal/server"
	"github.com/curlylint/site/internal/site"
)

func main() {
	cfg := config.New()
	logging.New()

	sites, err := site.NewStore(afero.NewOsFs(), cfg.SiteConfig)
	if err != nil {
		slog.Error("Failed to load site content", "path", cfg.SiteConfig, "error", err)
		os.Exit(1)
	}

	// Create a new server instance.
	s := server.New(cfg, sites)

	// Register all application routes.
	s.RegisterRoutes()

	// Start the server.
	s.Start()
}
