package app

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/javierDev03/invoices/app/route/invoice"
	"github.com/javierDev03/invoices/app/session"
)

func (a *App) RegisterRoutes() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(session.Middleware(a.sessions))

	invoice.NewHandlerGroup(a.name, a.views).Mount(a.router)

	a.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("app/static/"))))
}
