package invoice

import (
	"time"

	"github.com/google/uuid"
)

// Editor is the editing controller for one session. It owns the
// session's single Invoice and the session tax rate, and guarantees
// that every mutation is followed by an aggregate recompute with the
// current rate in the same step.
type Editor struct {
	inv     *Invoice
	taxRate float64
}

// NewEditor starts an editing session with a fresh invoice.
func NewEditor(now time.Time) *Editor {
	return &Editor{
		inv:     New(now),
		taxRate: DefaultTaxRatePercent,
	}
}

// Snapshot returns a deep copy of the current invoice for the preview
// and the document renderer.
func (e *Editor) Snapshot() Invoice {
	return e.inv.Clone()
}

// TaxRate returns the session tax rate percentage.
func (e *Editor) TaxRate() float64 {
	return e.taxRate
}

// AddItem appends a fresh line item and returns it.
func (e *Editor) AddItem() LineItem {
	item := e.inv.AddItem()
	e.inv.RecomputeTotals(e.taxRate)

	return item
}

// UpdateItem edits one field of one item and recomputes totals.
func (e *Editor) UpdateItem(id uuid.UUID, field ItemField, value string) {
	e.inv.UpdateItem(id, field, value)
	e.inv.RecomputeTotals(e.taxRate)
}

// RemoveItem removes an item by id and recomputes totals.
func (e *Editor) RemoveItem(id uuid.UUID) {
	e.inv.RemoveItem(id)
	e.inv.RecomputeTotals(e.taxRate)
}

// SetField edits a scalar invoice field. Scalar edits cannot change
// totals but the recompute is cheap and keeps the invariant uniform.
func (e *Editor) SetField(field Field, value string) {
	e.inv.SetField(field, value)
	e.inv.RecomputeTotals(e.taxRate)
}

// SetTaxRate updates the session tax rate from raw form input
// (unparseable input coerces to 0) and recomputes totals.
func (e *Editor) SetTaxRate(value string) {
	e.taxRate = coerceNumber(value)
	e.inv.RecomputeTotals(e.taxRate)
}
