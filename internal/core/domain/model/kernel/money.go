package kernel

import (
	"fmt"

	"foodsewa/internal/pkg/errs"
)

// ErrMoneyIsNegative is returned when constructing Money from a negative amount.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount cannot be negative")

// ErrMoneySubtractionUnderflow is returned when subtracting a larger amount
// from a smaller one. Monetary amounts in this domain never go below zero.
var ErrMoneySubtractionUnderflow = errs.NewValueIsInvalidError("money subtraction result cannot be negative")

// Money is an immutable, non-negative monetary amount stored in minor units
// (cents). Prices, delivery fees, discounts, and order totals are all Money.
//
// The zero value is a valid amount of zero, so Money can be embedded directly
// in aggregates without a constructor guard. Arithmetic that could produce a
// negative amount returns an error instead.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromCents(1000) // 10.00
//	total := price.MulQty(2)                   // 20.00
type Money struct {
	cents int64
}

// NewMoneyFromCents creates Money from an amount in minor units.
// Returns ErrMoneyIsNegative for negative amounts.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{cents: cents}, nil
}

// MoneyZero returns the zero amount.
func MoneyZero() Money {
	return Money{}
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns the difference of two amounts.
// Returns ErrMoneySubtractionUnderflow if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.cents > m.cents {
		return Money{}, ErrMoneySubtractionUnderflow
	}
	return Money{cents: m.cents - other.cents}, nil
}

// SubFloor returns the difference of two amounts, clamped at zero.
// Used where an oversized discount should zero out a subtotal rather than fail.
func (m Money) SubFloor(other Money) Money {
	if other.cents > m.cents {
		return Money{}
	}
	return Money{cents: m.cents - other.cents}
}

// MulQty returns the amount multiplied by a non-negative quantity.
// Negative quantities are treated as zero; quantity validation belongs to
// the caller (line item quantities are bounded elsewhere).
func (m Money) MulQty(qty int) Money {
	if qty <= 0 {
		return Money{}
	}
	return Money{cents: m.cents * int64(qty)}
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// String formats the amount as a decimal with two fraction digits, e.g. "12.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
