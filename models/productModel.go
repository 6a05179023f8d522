package models

import "gorm.io/gorm"

const (
	ProductStatusActive   = "Active"
	ProductStatusInactive = "Inactive"

	DiscountNone       = "None"
	DiscountFlat       = "Flat"
	DiscountPercentage = "Percentage"
)

type Product struct {
	gorm.Model
	Title        string             `json:"title" binding:"required"`
	Description  string             `json:"description"`
	Price        float64            `json:"price" binding:"required"`
	Discount     float64            `json:"discount"`
	DiscountType string             `json:"discountType"`
	Category     string             `json:"category"`
	Gender       string             `json:"gender"`
	Season       string             `json:"season"`
	Status       string             `json:"status"`
	IsFeatured   bool               `json:"isFeatured"`
	Images       []ProductImage     `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variants     []InventoryVariant `json:"variants" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// InventoryVariant is the authoritative stock ledger for one
// (product, size, color) combination.
type InventoryVariant struct {
	gorm.Model
	ProductID uint   `json:"productId" gorm:"uniqueIndex:idx_product_variant"`
	Size      string `json:"size" gorm:"uniqueIndex:idx_product_variant;size:16"`
	Color     string `json:"color" gorm:"uniqueIndex:idx_product_variant;size:32"`
	Inventory int    `json:"inventory"`
}

type ProductImage struct {
	gorm.Model
	ProductID uint   `json:"productId"`
	ImageData []byte `json:"image" gorm:"type:longblob"`
	IsMain    bool   `json:"isMain"`
}
