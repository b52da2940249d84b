package main

import (
	"log/slog"
	"os"

	"github.com/TillGrassi/My-Portfolio/config"
	"github.com/TillGrassi/My-Portfolio/handlers"
	"github.com/TillGrassi/My-Portfolio/middleware"
	"github.com/TillGrassi/My-Portfolio/storage"
	"github.com/TillGrassi/My-Portfolio/uploads"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	store, err := storage.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open store", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}

	saver, err := uploads.NewSaver(cfg.UploadDir)
	if err != nil {
		slog.Error("failed to prepare upload dir", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}

	if cfg.AdminToken == "" {
		slog.Warn("ADMIN_TOKEN not set; admin endpoints are unprotected")
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Store:          store,
		Uploads:        saver,
		Admin:          middleware.ForConfig(cfg.AdminToken),
		UploadDir:      cfg.UploadDir,
		AssetsDir:      cfg.AssetsDir,
		AllowedOrigins: cfg.AllowedOrigins,
		TemplateGlob:   "templates/*",
	})

	slog.Info("server starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
