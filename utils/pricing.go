package utils

import "github.com/vantelle/vantelle-api/models"

// DiscountAmount returns the absolute currency amount subtracted from
// one unit. Percentage discounts are proportional to the unit price;
// every other kind is a flat subtraction.
func DiscountAmount(unitPrice, discount float64, discountType string) float64 {
	if discountType == models.DiscountPercentage {
		return unitPrice * (discount / 100)
	}
	return discount
}

// DiscountedUnitPrice returns the effective price of one unit after
// applying the snapshotted discount.
func DiscountedUnitPrice(unitPrice, discount float64, discountType string) float64 {
	return unitPrice - DiscountAmount(unitPrice, discount, discountType)
}

// LineTotal returns the total price for a quantity of one variant.
func LineTotal(unitPrice, discount float64, discountType string, quantity int) float64 {
	return DiscountedUnitPrice(unitPrice, discount, discountType) * float64(quantity)
}
