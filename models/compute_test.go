package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineAmount(t *testing.T) {
	assert.Equal(t, 200.0, LineAmount(2, 100))
	assert.Equal(t, 0.0, LineAmount(5, 0))
	assert.Equal(t, 0.3, LineAmount(3, 0.1))
	assert.Equal(t, 9.99, LineAmount(1, 9.99))
}

func TestCoerceQuantity(t *testing.T) {
	assert.Equal(t, 1, CoerceQuantity(0))
	assert.Equal(t, 1, CoerceQuantity(-3))
	assert.Equal(t, 7, CoerceQuantity(7))
}

func TestCoerceRate(t *testing.T) {
	assert.Equal(t, 0.0, CoerceRate(-1))
	assert.Equal(t, 0.0, CoerceRate(math.NaN()))
	assert.Equal(t, 0.0, CoerceRate(math.Inf(1)))
	assert.Equal(t, 12.5, CoerceRate(12.5))
}

func TestTotals(t *testing.T) {
	items := []LineItem{
		{Description: "Design", Quantity: 2, Rate: 100, Amount: 200},
		{Description: "Hosting", Quantity: 12, Rate: 25, Amount: 300},
	}

	subtotal, total := Totals(items, 10)
	assert.Equal(t, 500.0, subtotal)
	assert.Equal(t, 550.0, total)

	// order independent
	reversed := []LineItem{items[1], items[0]}
	s2, t2 := Totals(reversed, 10)
	assert.Equal(t, subtotal, s2)
	assert.Equal(t, total, t2)
}

func TestTotalsEmpty(t *testing.T) {
	subtotal, total := Totals(nil, 15)
	assert.Equal(t, 0.0, subtotal)
	assert.Equal(t, 0.0, total)
}

func TestTotalsNoFloatDrift(t *testing.T) {
	// ten dimes sum to exactly one dollar; naive float64 summation drifts
	items := make([]LineItem, 10)
	for i := range items {
		items[i] = LineItem{Quantity: 1, Rate: 0.1, Amount: 0.1}
	}
	subtotal, total := Totals(items, 0)
	assert.Equal(t, 1.0, subtotal)
	assert.Equal(t, 1.0, total)
}

func TestTotalsCoercesMalformedTax(t *testing.T) {
	items := []LineItem{{Quantity: 2, Rate: 100, Amount: 200}}
	for _, tax := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -10} {
		subtotal, total := Totals(items, tax)
		assert.Equal(t, 200.0, subtotal)
		assert.Equal(t, 200.0, total, "tax %v falls back to 0", tax)
	}
}

func TestTotalsNeverBelowSubtotal(t *testing.T) {
	items := []LineItem{{Quantity: 3, Rate: 19.99, Amount: 59.97}}
	for _, tax := range []float64{0, 7.5, 20, 100} {
		subtotal, total := Totals(items, tax)
		assert.GreaterOrEqual(t, total, subtotal, "tax %v", tax)
	}
}

func TestRecalculate(t *testing.T) {
	inv := Invoice{
		LineItems: []LineItem{
			{Description: "Design", Quantity: 2, Rate: 100},
			{Description: "Copywriting", Quantity: 4, Rate: 50},
		},
		Tax: 10,
	}
	inv.Recalculate()

	assert.Equal(t, 200.0, inv.LineItems[0].Amount)
	assert.Equal(t, 200.0, inv.LineItems[1].Amount)
	assert.Equal(t, 400.0, inv.Subtotal)
	assert.Equal(t, 440.0, inv.Total)

	// changing one row leaves the other row's amount untouched
	inv.LineItems[0].Quantity = 3
	inv.Recalculate()
	assert.Equal(t, 300.0, inv.LineItems[0].Amount)
	assert.Equal(t, 200.0, inv.LineItems[1].Amount)
	assert.Equal(t, 500.0, inv.Subtotal)
	assert.Equal(t, 550.0, inv.Total)
}

func TestRecalculateCoercesMalformedInput(t *testing.T) {
	inv := Invoice{
		LineItems: []LineItem{
			{Description: "Broken row", Quantity: 0, Rate: -5, Amount: 999},
		},
		Tax: 10,
	}
	inv.Recalculate()

	require.Len(t, inv.LineItems, 1)
	assert.Equal(t, 1, inv.LineItems[0].Quantity)
	assert.Equal(t, 0.0, inv.LineItems[0].Rate)
	assert.Equal(t, 0.0, inv.LineItems[0].Amount)
	assert.Equal(t, 0.0, inv.Subtotal)
	assert.Equal(t, 0.0, inv.Total)
}

func TestAddLineItem(t *testing.T) {
	inv := Invoice{
		LineItems: []LineItem{{Description: "Design", Quantity: 2, Rate: 100}},
		Tax:       10,
	}
	inv.AddLineItem()

	require.Len(t, inv.LineItems, 2)
	fresh := inv.LineItems[1]
	assert.Empty(t, fresh.Description)
	assert.Equal(t, 1, fresh.Quantity)
	assert.Equal(t, 0.0, fresh.Rate)
	assert.Equal(t, 0.0, fresh.Amount)
	assert.Equal(t, 200.0, inv.Subtotal)
}

func TestRemoveLineItem(t *testing.T) {
	inv := Invoice{
		LineItems: []LineItem{
			{Description: "Design", Quantity: 2, Rate: 100},
			{Description: "Hosting", Quantity: 1, Rate: 25},
		},
		Tax: 0,
	}

	require.NoError(t, inv.RemoveLineItem(1))
	assert.Equal(t, 200.0, inv.Subtotal)

	// the last row can never be removed
	err := inv.RemoveLineItem(0)
	assert.ErrorIs(t, err, ErrLastLineItem)
	assert.Len(t, inv.LineItems, 1)

	assert.Error(t, inv.RemoveLineItem(5))
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusSent, StatusPaid, StatusOverdue} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}
