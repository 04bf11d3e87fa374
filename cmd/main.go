package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/javierDev03/invoices/app"
	"github.com/javierDev03/invoices/app/view"
	"github.com/javierDev03/invoices/internal/config"
	"github.com/javierDev03/invoices/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	views, err := view.NewStore()
	if err != nil {
		slog.Error("failed to load views", "error", err)
		os.Exit(1)
	}

	sessions := session.NewStore(cfg.Session.TTL)

	app := app.New(slog.Default(), cfg.App.Name, sessions, views).
		WithHost(cfg.App.Host).
		WithPort(cfg.App.Port)

	if err := app.Serve(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
