package invoice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javierDev03/invoices/internal/invoice"
)

func TestEditor_TotalsFollowEveryMutation(t *testing.T) {
	e := invoice.NewEditor(time.Now())

	first := e.AddItem()
	e.UpdateItem(first.ID, invoice.ItemFieldQuantity, "2")
	e.UpdateItem(first.ID, invoice.ItemFieldPrice, "50.00")

	second := e.AddItem()
	e.UpdateItem(second.ID, invoice.ItemFieldPrice, "30.00")

	snap := e.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.InDelta(t, 130.0, snap.Subtotal, tolerance)
	assert.InDelta(t, 20.80, snap.TaxAmount, tolerance)
	assert.InDelta(t, 150.80, snap.Total, tolerance)

	e.RemoveItem(first.ID)

	snap = e.Snapshot()
	assert.InDelta(t, 30.0, snap.Subtotal, tolerance)
	assert.InDelta(t, 34.80, snap.Total, tolerance)
}

func TestEditor_SetTaxRate(t *testing.T) {
	e := invoice.NewEditor(time.Now())
	item := e.AddItem()
	e.UpdateItem(item.ID, invoice.ItemFieldPrice, "100")

	assert.Equal(t, 16.0, e.TaxRate())

	e.SetTaxRate("8")

	snap := e.Snapshot()
	assert.Equal(t, 8.0, e.TaxRate())
	assert.InDelta(t, 8.0, snap.TaxAmount, tolerance)
	assert.InDelta(t, 108.0, snap.Total, tolerance)

	// The fresh rate applies to edits made after the rate change, not
	// the rate that was current when the item was first touched.
	e.UpdateItem(item.ID, invoice.ItemFieldQuantity, "2")

	snap = e.Snapshot()
	assert.InDelta(t, 200.0, snap.Subtotal, tolerance)
	assert.InDelta(t, 16.0, snap.TaxAmount, tolerance)

	// Unparseable rate coerces to zero.
	e.SetTaxRate("n/a")
	snap = e.Snapshot()
	assert.Zero(t, snap.TaxAmount)
	assert.InDelta(t, snap.Subtotal, snap.Total, tolerance)
}

// Property: after any sequence of commands, subtotal equals the sum of
// the line totals and total equals subtotal plus tax.
func TestEditor_InvariantsUnderCommandSequences(t *testing.T) {
	e := invoice.NewEditor(time.Now())

	items := make([]invoice.LineItem, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, e.AddItem())
	}

	quantities := []string{"1", "3", "x", "2.5", "0", "7", "2", "1"}
	prices := []string{"9.99", "120", "15", "", "40", "3.25", "bad", "60"}

	for i, it := range items {
		e.UpdateItem(it.ID, invoice.ItemFieldQuantity, quantities[i])
		e.UpdateItem(it.ID, invoice.ItemFieldPrice, prices[i])
	}

	e.RemoveItem(items[2].ID)
	e.RemoveItem(items[5].ID)
	e.SetTaxRate("21")

	snap := e.Snapshot()

	var sum float64
	for _, it := range snap.Items {
		assert.InDelta(t, it.Quantity*it.UnitPrice, it.LineTotal, tolerance)
		sum += it.LineTotal
	}

	assert.InDelta(t, sum, snap.Subtotal, tolerance)
	assert.InDelta(t, sum*21/100, snap.TaxAmount, tolerance)
	assert.InDelta(t, snap.Subtotal+snap.TaxAmount, snap.Total, tolerance)
}
