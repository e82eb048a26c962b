package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// USD builds a dollar amount from a decimal string such as "8.50".
// It panics on malformed input and is meant for literals and fixtures.
func USD(amount string) Money {
	return Money{Amount: decimal.RequireFromString(amount), Currency: currency.USD}
}

func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

// Display renders the amount rounded to two decimals, e.g. "$8.50".
// Rounding happens only here; arithmetic keeps full precision.
func (m Money) Display() string {
	return fmt.Sprintf("%v%s", currency.NarrowSymbol(m.Currency), m.Amount.StringFixed(2))
}

func intDecimal(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
