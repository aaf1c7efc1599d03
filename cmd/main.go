package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vivamau/diet-tracker/config"
	"github.com/vivamau/diet-tracker/routes"
	"github.com/vivamau/diet-tracker/store"
	"github.com/vivamau/diet-tracker/utils"
)

func main() {
	utils.SetupLogging()
	cfg := config.Load()

	if err := os.MkdirAll(filepath.Dir(cfg.DBFile), 0o755); err != nil {
		slog.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}
	st := store.New(cfg.DBFile)

	r := routes.SetupRouter(st, cfg)
	slog.Info("server listening", "port", cfg.Port, "database", cfg.DBFile)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
