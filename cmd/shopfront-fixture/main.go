package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/marketbee/shopfront/internal/config"
	"github.com/marketbee/shopfront/internal/fixture"
	"github.com/marketbee/shopfront/internal/logging"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	slog.SetDefault(log)

	// Tokens signed against a persistent database outlive the process, so
	// the secret must be set explicitly instead of the dev default.
	if cfg.DatabaseURL != "" {
		config.MustNonEmpty(os.Getenv("JWT_SECRET"), "JWT_SECRET")
	}

	db, err := fixture.OpenDB(cfg.DatabaseURL)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}
	if err := fixture.Seed(db); err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}

	srv := fixture.NewServer(db, cfg.JWTSecret, log)
	e := srv.Routes()

	addr := fmt.Sprintf(":%d", cfg.FixturePort)
	log.Info("fixture API listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
