package services

import (
	"math"
	"strings"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"
)

// coupon is one entry in the static coupon table. Either percent or
// amountCents is set, never both. minSubtotalCents gates eligibility.
type coupon struct {
	percent          int
	amountCents      int64
	minSubtotalCents int64
}

// FixedCouponValidator resolves coupon codes against a static table.
// Codes are matched case-insensitively.
type FixedCouponValidator struct {
	coupons map[string]coupon
}

// NewFixedCouponValidator creates a validator with the built-in coupon table.
func NewFixedCouponValidator() FixedCouponValidator {
	return FixedCouponValidator{
		coupons: map[string]coupon{
			"WELCOME10": {percent: 10},
			"SAVE50":    {amountCents: 5000, minSubtotalCents: 25000},
			"FREEDEL":   {amountCents: 250, minSubtotalCents: 1500},
		},
	}
}

// Discount resolves a code to a discount for the given subtotal.
// Returns errs.ErrObjectNotFound for unknown codes and errs.ErrValueIsOutOfRange
// when the subtotal is below the coupon's minimum.
func (v FixedCouponValidator) Discount(code string, subtotal kernel.Money) (kernel.Money, error) {
	entry, ok := v.coupons[strings.ToUpper(code)]
	if !ok {
		return kernel.MoneyZero(), errs.NewObjectNotFoundError("couponCode", code)
	}

	if subtotal.Cents() < entry.minSubtotalCents {
		return kernel.MoneyZero(), errs.NewValueIsOutOfRangeError(
			"subtotal", subtotal.Cents(), int(entry.minSubtotalCents), math.MaxInt)
	}

	if entry.percent > 0 {
		return kernel.NewMoneyFromCents(subtotal.Cents() * int64(entry.percent) / 100)
	}

	return kernel.NewMoneyFromCents(entry.amountCents)
}
