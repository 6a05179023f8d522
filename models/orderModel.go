package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "Pending"
	OrderStatusConfirmed  = "Confirmed"
	OrderStatusProcessing = "Processing"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"

	PaymentStatusPending = "Pending"
)

type Order struct {
	gorm.Model
	OrderID       string  `json:"orderId" gorm:"uniqueIndex;size:40"`
	UserID        uint    `json:"userId"`
	TotalAmount   float64 `json:"totalAmount"`
	ShippingFee   float64 `json:"shippingFee"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
	Status        string  `json:"status"`
	// JSON for current rows; legacy rows hold delimited plain text and
	// are parsed defensively on read. Never rewritten.
	ShippingAddress   string      `json:"shippingAddress" gorm:"type:text"`
	Notes             string      `json:"notes"`
	TrackingNumber    string      `json:"trackingNumber"`
	EstimatedDelivery string      `json:"estimatedDelivery"`
	OrderDate         time.Time   `json:"orderDate"`
	Items             []OrderItem `json:"items" gorm:"foreignKey:OrderRef;constraint:OnDelete:CASCADE"`
}

// OrderItem is an immutable snapshot of one purchased variant at the
// price and discount in effect at order time.
type OrderItem struct {
	gorm.Model
	OrderItemID  string  `json:"orderItemId" gorm:"uniqueIndex;size:40"`
	OrderRef     uint    `json:"-"`
	OrderID      string  `json:"orderId" gorm:"size:40;index"`
	ProductID    uint    `json:"productId"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	Discount     float64 `json:"discount"`
	DiscountType string  `json:"discountType"`
	Size         string  `json:"size"`
	Color        string  `json:"color"`
	TotalPrice   float64 `json:"totalPrice"`
}
