package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/javierDev03/invoices/app/session"
	"github.com/javierDev03/invoices/app/view"
)

type App struct {
	host string
	port int

	name string

	slog   *slog.Logger
	router chi.Router

	sessions session.Store
	views    *view.Store
}

func New(slog *slog.Logger, name string, sessions session.Store, views *view.Store) *App {
	app := &App{
		host: "localhost",
		port: 3000,

		name: name,

		router: chi.NewRouter(),
		slog:   slog,

		sessions: sessions,
		views:    views,
	}

	app.RegisterRoutes()

	return app
}

func (a *App) WithHost(host string) *App {
	a.host = host
	return a
}

func (a *App) WithPort(port uint) *App {
	a.port = int(port)
	return a
}

func (a *App) Serve() error {
	addr := fmt.Sprintf("%s:%d", a.host, a.port)
	server := http.Server{
		Addr:    addr,
		Handler: a.router,

		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	a.slog.Info("server started listening", "addr", addr)

	return server.ListenAndServe()
}
