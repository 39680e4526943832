//go:build unit

package money_test

import (
	"testing"

	"tagmytrophy/internal/pkg/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTax(t *testing.T) {
	cases := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "single tag plan", amount: "29.99", want: "2.4"},
		{name: "three pack plan", amount: "74.99", want: "6"},
		{name: "five pack plan", amount: "109.99", want: "8.8"},
		{name: "zero amount", amount: "0", want: "0"},
		{name: "rounds half up", amount: "0.44", want: "0.04"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			got := money.Tax(amount, money.DefaultTaxRate)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"tax on %s: want %s, got %s", tc.amount, tc.want, got)
		})
	}
}

func TestCentsRoundTrip(t *testing.T) {
	assert.Equal(t, int64(3239), money.Cents(decimal.RequireFromString("32.39")))
	assert.Equal(t, int64(0), money.Cents(decimal.Zero))

	back := money.FromCents(3239)
	assert.True(t, back.Equal(decimal.RequireFromString("32.39")), "got %s", back)
}
