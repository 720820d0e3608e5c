package models

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrLastLineItem is returned when a caller tries to remove the only
// remaining line item; an invoice always keeps at least one row.
var ErrLastLineItem = errors.New("invoice must keep at least one line item")

// CoerceQuantity clamps a quantity to a positive integer, defaulting to 1.
func CoerceQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// CoerceRate clamps a rate to a non-negative decimal, defaulting to 0.
// NaN and infinities never reach the arithmetic below.
func CoerceRate(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return 0
	}
	return r
}

// LineAmount computes quantity * rate. Inputs must already be coerced.
func LineAmount(quantity int, rate float64) float64 {
	amount, _ := decimal.NewFromInt(int64(quantity)).
		Mul(decimal.NewFromFloat(rate)).
		Float64()
	return amount
}

// Totals sums the line-item amounts into a subtotal and applies the tax
// percentage on top. Summation runs through decimal so many small amounts
// don't accumulate float drift; the result is order-independent. The tax
// percentage is coerced like any other rate, so NaN and infinities fall
// back to 0 instead of reaching the decimal arithmetic.
func Totals(items []LineItem, taxPercent float64) (subtotal, total float64) {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Amount))
	}
	taxAmount := sum.Mul(decimal.NewFromFloat(CoerceRate(taxPercent))).Div(decimal.NewFromInt(100))
	subtotal, _ = sum.Float64()
	total, _ = sum.Add(taxAmount).Float64()
	return subtotal, total
}

// Recalculate rederives every line-item amount from its quantity and rate,
// then the invoice subtotal and total. Quantities and rates are coerced
// first so malformed input falls back to defaults instead of propagating.
func (inv *Invoice) Recalculate() {
	for i := range inv.LineItems {
		it := &inv.LineItems[i]
		it.Quantity = CoerceQuantity(it.Quantity)
		it.Rate = CoerceRate(it.Rate)
		it.Amount = LineAmount(it.Quantity, it.Rate)
	}
	inv.Subtotal, inv.Total = Totals(inv.LineItems, inv.Tax)
}

// AddLineItem appends a fresh zero-valued row and recomputes totals.
func (inv *Invoice) AddLineItem() {
	inv.LineItems = append(inv.LineItems, LineItem{Quantity: 1})
	inv.Recalculate()
}

// RemoveLineItem removes the row at index i and recomputes totals.
// Removing the last remaining row is rejected.
func (inv *Invoice) RemoveLineItem(i int) error {
	if i < 0 || i >= len(inv.LineItems) {
		return errors.New("line item index out of range")
	}
	if len(inv.LineItems) == 1 {
		return ErrLastLineItem
	}
	inv.LineItems = append(inv.LineItems[:i], inv.LineItems[i+1:]...)
	inv.Recalculate()
	return nil
}
