package models

import "gorm.io/gorm"

// CartItem holds one chosen variant with a price/discount snapshot
// taken at add time. The discount snapshot is refreshed on every add.
// One live row per (user, product, size, color): adds merge into the
// existing line instead of inserting a duplicate.
type CartItem struct {
	gorm.Model
	CartID       string  `json:"cartId" gorm:"uniqueIndex;size:32"`
	UserID       uint    `json:"userId" gorm:"index:idx_user_variant"`
	ProductID    uint    `json:"productId" gorm:"index:idx_user_variant"`
	Size         string  `json:"size" gorm:"index:idx_user_variant;size:16"`
	Color        string  `json:"color" gorm:"index:idx_user_variant;size:32"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	Discount     float64 `json:"discount"`
	DiscountType string  `json:"discountType"`
}
