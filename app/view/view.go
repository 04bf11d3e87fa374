// Package view renders the editing UI from embedded HTML templates,
// one template per file keyed by file name.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/javierDev03/invoices/internal/currency"
	"github.com/javierDev03/invoices/internal/invoice"
)

//go:embed templates/*.gohtml
var files embed.FS

// Data is what every template receives.
type Data struct {
	AppName   string
	Invoice   invoice.Invoice
	TaxRate   float64
	CanExport bool
}

// Store holds the parsed template set.
type Store struct {
	root *template.Template
}

// NewStore parses all embedded templates into one set so fragments can
// reference each other.
func NewStore() (*Store, error) {
	root, err := template.New("views").Funcs(template.FuncMap{
		"money":  currency.Format,
		"date":   formatDate,
		"qty":    formatQuantity,
		"shaded": func(i int) bool { return i%2 == 0 },
	}).ParseFS(files, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Store{root: root}, nil
}

// Render executes the template with the given file name.
func (s *Store) Render(w io.Writer, name string, data Data) error {
	if err := s.root.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.DateOnly)
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
