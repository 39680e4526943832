package order

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrTotalsMismatch = errors.New("order total does not equal subtotal + tax + shipping")

// Totals carries the monetary breakdown of an order. The invariant
// total = subtotal + tax + shipping is checked wherever totals enter the
// system; admin updates cannot touch these fields.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

func NewTotals(subtotal, tax, shipping decimal.Decimal) Totals {
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}

func (t Totals) Validate() error {
	if !t.Total.Equal(t.Subtotal.Add(t.Tax).Add(t.Shipping)) {
		return ErrTotalsMismatch
	}
	return nil
}
