// Package session ties browser cookies to in-memory editing sessions.
package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/javierDev03/invoices/internal/invoice"
)

// CookieName carries the session id between requests.
const CookieName = "invoice_session"

// Store is the session store the middleware resolves editors from.
//
//go:generate mockgen -source=session.go -destination=store_mock.go -package=session
type Store interface {
	Get(id uuid.UUID) (*invoice.Editor, bool)
	Create() (uuid.UUID, *invoice.Editor)
}

// Middleware ensures every request carries an editing session: existing
// cookies resolve to their editor, anything else starts a fresh session
// and sets the cookie. The editor lands in the request context.
func Middleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			editor := resolve(store, r)
			if editor == nil {
				id, created := store.Create()
				editor = created

				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    id.String(),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), editorKey, editor),
			))
		})
	}
}

func resolve(store Store, r *http.Request) *invoice.Editor {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return nil
	}

	editor, ok := store.Get(id)
	if !ok {
		return nil
	}

	return editor
}

// Editor returns the editing session stored by the middleware.
func Editor(ctx context.Context) (*invoice.Editor, error) {
	editor, ok := ctx.Value(editorKey).(*invoice.Editor)
	if !ok {
		return nil, errors.New("editing session not found")
	}

	return editor, nil
}

type key struct{}

var editorKey = key{}
