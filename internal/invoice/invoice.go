// Package invoice holds the invoice data model and the arithmetic
// that keeps line totals and aggregate totals consistent while the
// user edits the form.
package invoice

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultTaxRatePercent is the tax rate a fresh editing session starts with.
const DefaultTaxRatePercent = 16.0

// LineItem is one product/service row. LineTotal is derived from
// Quantity and UnitPrice and is never edited directly.
type LineItem struct {
	ID          uuid.UUID
	Description string
	Quantity    float64
	UnitPrice   float64
	LineTotal   float64
}

// Party is either the issuing company or the billed client.
// All fields are free text; Name gates export.
type Party struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Invoice is the single mutable document of an editing session.
// Subtotal, TaxAmount and Total are derived and only ever written
// together by RecomputeTotals.
type Invoice struct {
	Number    string
	IssueDate time.Time
	DueDate   time.Time

	Company Party
	Client  Party

	Items []LineItem

	TaxRatePercent float64
	Subtotal       float64
	TaxAmount      float64
	Total          float64

	Notes string
}

// New creates the session invoice with a timestamp-derived number and
// today's issue date.
func New(now time.Time) *Invoice {
	return &Invoice{
		Number:         fmt.Sprintf("INV-%d", now.UnixMilli()),
		IssueDate:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		TaxRatePercent: DefaultTaxRatePercent,
	}
}

// ItemField identifies an editable line item field.
type ItemField string

const (
	ItemFieldDescription ItemField = "description"
	ItemFieldQuantity    ItemField = "quantity"
	ItemFieldPrice       ItemField = "price"
)

// Field identifies an editable scalar invoice field.
type Field string

const (
	FieldCompanyName    Field = "companyName"
	FieldCompanyAddress Field = "companyAddress"
	FieldCompanyPhone   Field = "companyPhone"
	FieldCompanyEmail   Field = "companyEmail"
	FieldClientName     Field = "clientName"
	FieldClientAddress  Field = "clientAddress"
	FieldClientPhone    Field = "clientPhone"
	FieldClientEmail    Field = "clientEmail"
	FieldNumber         Field = "invoiceNumber"
	FieldIssueDate      Field = "invoiceDate"
	FieldDueDate        Field = "dueDate"
	FieldNotes          Field = "notes"
)

// AddItem appends a fresh line item (quantity 1, price 0) and returns it.
func (inv *Invoice) AddItem() LineItem {
	item := LineItem{
		ID:       uuid.New(),
		Quantity: 1,
	}
	inv.Items = append(inv.Items, item)

	return item
}

// UpdateItem applies a single field edit to the item with the given id.
// An unknown id or field is a no-op. Numeric input that fails to parse
// is coerced to 0. Editing quantity or price recomputes the line total.
func (inv *Invoice) UpdateItem(id uuid.UUID, field ItemField, value string) {
	for i := range inv.Items {
		if inv.Items[i].ID != id {
			continue
		}

		item := &inv.Items[i]

		switch field {
		case ItemFieldDescription:
			item.Description = value
		case ItemFieldQuantity:
			item.Quantity = coerceNumber(value)
		case ItemFieldPrice:
			item.UnitPrice = coerceNumber(value)
		default:
			return
		}

		if field == ItemFieldQuantity || field == ItemFieldPrice {
			item.LineTotal = item.Quantity * item.UnitPrice
		}

		return
	}
}

// RemoveItem deletes the item with the given id, preserving the order
// of the remaining items. Absent ids are a no-op.
func (inv *Invoice) RemoveItem(id uuid.UUID) {
	for i := range inv.Items {
		if inv.Items[i].ID == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return
		}
	}
}

// SetField applies a scalar field edit. Unknown fields are a no-op.
// Dates parse as 2006-01-02; a failed parse leaves the zero time.
func (inv *Invoice) SetField(field Field, value string) {
	switch field {
	case FieldCompanyName:
		inv.Company.Name = value
	case FieldCompanyAddress:
		inv.Company.Address = value
	case FieldCompanyPhone:
		inv.Company.Phone = value
	case FieldCompanyEmail:
		inv.Company.Email = value
	case FieldClientName:
		inv.Client.Name = value
	case FieldClientAddress:
		inv.Client.Address = value
	case FieldClientPhone:
		inv.Client.Phone = value
	case FieldClientEmail:
		inv.Client.Email = value
	case FieldNumber:
		inv.Number = value
	case FieldIssueDate:
		inv.IssueDate, _ = time.Parse(time.DateOnly, value)
	case FieldDueDate:
		inv.DueDate, _ = time.Parse(time.DateOnly, value)
	case FieldNotes:
		inv.Notes = value
	}
}

// RecomputeTotals derives Subtotal, TaxAmount and Total from the
// current items and the supplied tax rate. The rate is passed
// explicitly on every call so totals are never computed against a
// stale one. Idempotent for unchanged inputs.
func (inv *Invoice) RecomputeTotals(taxRatePercent float64) {
	var subtotal float64
	for _, item := range inv.Items {
		subtotal += item.LineTotal
	}

	inv.TaxRatePercent = taxRatePercent
	inv.Subtotal = subtotal
	inv.TaxAmount = subtotal * taxRatePercent / 100
	inv.Total = inv.Subtotal + inv.TaxAmount
}

// CanExport reports whether the document may be exported: both party
// names and at least one line item are required.
func (inv *Invoice) CanExport() bool {
	return inv.Company.Name != "" && inv.Client.Name != "" && len(inv.Items) > 0
}

// DocumentName is the export filename derived from the invoice number.
func (inv *Invoice) DocumentName() string {
	return fmt.Sprintf("factura-%s.pdf", inv.Number)
}

// Clone returns a deep snapshot for the preview and the renderer, so
// pagination never reads an invoice the session is still mutating.
func (inv *Invoice) Clone() Invoice {
	out := *inv
	out.Items = make([]LineItem, len(inv.Items))
	copy(out.Items, inv.Items)

	return out
}

func coerceNumber(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0
	}

	return f
}
