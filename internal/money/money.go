// Package money centralizes the cents-only arithmetic the spec requires:
// every price, subtotal, tax, and total in this platform is a signed int64
// count of minor units (cents). The only place a fractional decimal number
// is allowed to exist is at the JSON edge, rendered via shopspring/decimal
// so the int64->dollars conversion never touches float64 arithmetic.
package money

import (
	"github.com/shopspring/decimal"

	quotingv1 "github.com/quoteforge/platform/internal/proto/quoting/v1"
)

// Money is an immutable (currency, cents) pair.
type Money struct {
	CurrencyCode string
	AmountCents  int64
}

// New constructs a Money value.
func New(currencyCode string, amountCents int64) Money {
	return Money{CurrencyCode: currencyCode, AmountCents: amountCents}
}

// FromProto converts a wire Money message to a Money value. A nil input
// yields the zero value.
func FromProto(m *quotingv1.Money) Money {
	if m == nil {
		return Money{}
	}
	return Money{CurrencyCode: m.GetCurrencyCode(), AmountCents: m.GetAmountCents()}
}

// Proto converts back to the wire message.
func (m Money) Proto() *quotingv1.Money {
	return &quotingv1.Money{CurrencyCode: m.CurrencyCode, AmountCents: m.AmountCents}
}

// Add sums two Money values of the same currency. Mismatched currencies are
// a programmer error in this single-currency-per-checkout platform; Add
// does not attempt conversion and simply keeps the receiver's currency.
func (m Money) Add(other Money) Money {
	return Money{CurrencyCode: m.CurrencyCode, AmountCents: m.AmountCents + other.AmountCents}
}

// MulQuantity scales a unit price by an integer quantity.
func (m Money) MulQuantity(quantity int32) Money {
	return Money{CurrencyCode: m.CurrencyCode, AmountCents: m.AmountCents * int64(quantity)}
}

// MulFraction scales amount by a multiplier (e.g. a cross-vendor variance
// factor) and rounds to the nearest cent. Used only where the spec itself
// calls for a scalar multiplier on an otherwise-integer price.
func (m Money) MulFraction(multiplier float64) Money {
	scaled := decimal.NewFromInt(m.AmountCents).Mul(decimal.NewFromFloat(multiplier))
	rounded := scaled.Round(0).IntPart()
	return Money{CurrencyCode: m.CurrencyCode, AmountCents: rounded}
}

// TaxFloor computes floor(subtotal * rate) in cents, matching the spec's
// "floor(subtotal × 0.08)" tax rule exactly (integer floor, no rounding).
func (m Money) TaxFloor(rate float64) Money {
	taxed := decimal.NewFromInt(m.AmountCents).Mul(decimal.NewFromFloat(rate)).Floor()
	return Money{CurrencyCode: m.CurrencyCode, AmountCents: taxed.IntPart()}
}

// Dollars renders the amount as a decimal dollars value, the only place in
// this codebase a fractional number is produced. It is used solely when
// marshaling a JSON response at the Edge Bridge.
func (m Money) Dollars() float64 {
	d := decimal.NewFromInt(m.AmountCents).Div(decimal.NewFromInt(100))
	f, _ := d.Float64()
	return f
}
