package kernel

import (
	"courierdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNegative indicates that a monetary value was constructed with a negative amount.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a value object representing a non-negative monetary amount.
// It wraps github.com/shopspring/decimal to keep arithmetic exact: intermediate
// calculations are never rounded, and two-decimal rounding is applied only at
// the serialization boundary via StringFixed or Round2.
//
// The zero value of Money is a valid zero amount, so Money can be embedded in
// aggregates without a constructor guard.
//
// Example usage:
//
//	price, _ := kernel.NewMoneyFromString("50.00")
//	lineTotal := price.MulInt(3)           // 150.00, exact
//	tax := lineTotal.MulRate(0.15)         // 22.50, exact
//	fmt.Println(lineTotal.Add(tax).StringFixed()) // "172.50"
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money with a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromString parses a decimal string (e.g. "150.00") into Money.
// Returns an error if the string is not a valid decimal or the amount is negative.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	if d.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: d}, nil
}

// NewMoneyFromFloat converts a float64 into Money.
// Returns an error if the amount is negative. Intended for boundary input only;
// internal arithmetic should stay on Money to avoid float drift.
func NewMoneyFromFloat(f float64) (Money, error) {
	d := decimal.NewFromFloat(f)
	if d.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: d}, nil
}

// RestoreMoney reconstructs a Money from its exact decimal representation,
// bypassing the non-negativity check. Used by persistence adapters only.
func RestoreMoney(d decimal.Decimal) Money {
	return Money{amount: d}
}

// Add returns the sum of two monetary amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two monetary amounts.
// The result may be negative; callers that require non-negative amounts
// must check IsNegative.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// MulRate returns the amount multiplied by a fractional rate (e.g. a tax rate).
// The result is exact; no rounding is performed.
func (m Money) MulRate(rate float64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromFloat(rate))}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsEqual compares two monetary amounts for exact equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying exact decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Round2 returns the amount rounded to two decimal places.
// Rounding belongs at the display/serialization boundary only.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(2)}
}

// StringFixed returns the amount formatted with exactly two decimal places.
func (m Money) StringFixed() string {
	return m.amount.StringFixed(2)
}

// String returns the exact decimal representation without forced rounding.
func (m Money) String() string {
	return m.amount.String()
}
