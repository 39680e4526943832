package money

import "github.com/shopspring/decimal"

// DefaultTaxRate is the fixed sales-tax rate applied to one-time purchases.
var DefaultTaxRate = decimal.NewFromFloat(0.08)

// Tax returns amount * rate rounded to the nearest cent.
func Tax(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(2)
}

// Cents converts a decimal dollar amount to integer cents for the payment
// provider, which only deals in the currency's smallest unit.
func Cents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// FromCents converts provider cents back to a decimal dollar amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
}
