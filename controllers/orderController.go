package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vantelle/vantelle-api/initializers"
	"github.com/vantelle/vantelle-api/middlewares"
	"github.com/vantelle/vantelle-api/models"
	"github.com/vantelle/vantelle-api/utils"
	"gorm.io/gorm"
)

const (
	msgCartEmpty          = "Cart is empty"
	msgOrderFailed        = "Order failed"
	msgOrderPlaced        = "Order placed!"
	msgOrderNotFound      = "Order not found"
	msgOrderNotCancelable = "Order not found or cannot be cancelled"
	msgOrderCancelled     = "Order cancelled successfully"
	msgNotesTooLong       = "Notes are too long"
)

const maxOrderNotesLength = 500

var errInsufficientStock = errors.New("insufficient stock")

type PlaceOrderInput struct {
	FullName      string  `json:"full_name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone" binding:"required"`
	Division      string  `json:"division"`
	District      string  `json:"district" binding:"required"`
	Upazila       string  `json:"upazila"`
	AddressLine1  string  `json:"address_line1" binding:"required"`
	AddressLine2  string  `json:"address_line2"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	ShippingFee   float64 `json:"shipping_fee"`
	Notes         string  `json:"notes"`
}

// PlaceOrder converts the caller's cart into an order with immutable
// line items, decrements inventory and clears the cart, all in one
// transaction. Any failure aborts without partial effects.
func PlaceOrder(ctx *gin.Context) {
	var input PlaceOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if len(input.Notes) > maxOrderNotesLength {
		sendErrorResponse(ctx, http.StatusBadRequest, msgNotesTooLong)
		return
	}

	userID, ok := middlewares.GetUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	var cartItems []models.CartItem
	if err := initializers.DB.Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
		log.Println("Cart fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgOrderFailed)
		return
	}
	if len(cartItems) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartEmpty)
		return
	}

	var totalAmount float64
	for _, item := range cartItems {
		totalAmount += utils.LineTotal(item.UnitPrice, item.Discount, item.DiscountType, item.Quantity)
	}

	estimatedDelivery := utils.EstimateDelivery(input.District, time.Now())
	orderID := utils.GenerateOrderID(userID)
	trackingNumber := utils.GenerateTrackingNumber(orderID)

	structuredAddress, err := json.Marshal(utils.ShippingAddress{
		FullName:     input.FullName,
		Phone:        input.Phone,
		Email:        input.Email,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		Upazila:      input.Upazila,
		District:     input.District,
		Division:     input.Division,
	})
	if err != nil {
		log.Println("Address marshal error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgOrderFailed)
		return
	}

	order := models.Order{
		OrderID:           orderID,
		UserID:            userID,
		TotalAmount:       totalAmount,
		ShippingFee:       input.ShippingFee,
		PaymentMethod:     input.PaymentMethod,
		PaymentStatus:     models.PaymentStatusPending,
		Status:            models.OrderStatusPending,
		ShippingAddress:   string(structuredAddress),
		Notes:             input.Notes,
		TrackingNumber:    trackingNumber,
		EstimatedDelivery: estimatedDelivery,
		OrderDate:         time.Now(),
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range cartItems {
			orderItem := models.OrderItem{
				OrderItemID:  utils.GenerateOrderItemID(orderID, item.ProductID),
				OrderRef:     order.ID,
				OrderID:      orderID,
				ProductID:    item.ProductID,
				Quantity:     item.Quantity,
				UnitPrice:    item.UnitPrice,
				Discount:     item.Discount,
				DiscountType: item.DiscountType,
				Size:         item.Size,
				Color:        item.Color,
				TotalPrice:   utils.LineTotal(item.UnitPrice, item.Discount, item.DiscountType, item.Quantity),
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}

			// Conditional decrement: zero rows affected means the
			// variant no longer has enough stock.
			result := tx.Model(&models.InventoryVariant{}).
				Where("product_id = ? AND size = ? AND color = ? AND inventory >= ?",
					item.ProductID, item.Size, item.Color, item.Quantity).
				UpdateColumn("inventory", gorm.Expr("inventory - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: product %d %s/%s", errInsufficientStock, item.ProductID, item.Size, item.Color)
			}
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		if errors.Is(err, errInsufficientStock) {
			log.Println("Order rejected:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, msgStockExceeded)
			return
		}
		log.Println("Order place error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgOrderFailed)
		return
	}

	if err := sendOrderConfirmationEmail(input.Email, input.FullName, orderID, trackingNumber, estimatedDelivery); err != nil {
		log.Println("Error sending order confirmation email:", err)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":            true,
		"message":            msgOrderPlaced,
		"order_id":           orderID,
		"tracking_number":    trackingNumber,
		"estimated_delivery": estimatedDelivery,
	})
}

func sendOrderConfirmationEmail(email, name, orderID, trackingNumber, estimatedDelivery string) error {
	emailData := utils.EmailData{
		Name:              name,
		Message:           "Thank you for your order! Here are your order details.",
		OrderID:           orderID,
		TrackingNumber:    trackingNumber,
		EstimatedDelivery: estimatedDelivery,
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	return utils.SendEmail(email, "Order Confirmation", emailData, templatePath)
}

type orderItemView struct {
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductSize  string  `json:"product_size"`
	ProductColor string  `json:"product_color"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	Discount     float64 `json:"discount"`
	DiscountType string  `json:"discount_type"`
	TotalPrice   float64 `json:"total_price"`
}

func fetchOrderItems(orderID string) ([]orderItemView, error) {
	var rows []struct {
		models.OrderItem
		ProductName string
	}
	err := initializers.DB.Table("order_items").
		Select("order_items.*, products.title AS product_name").
		Joins("LEFT JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ? AND order_items.deleted_at IS NULL", orderID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]orderItemView, 0, len(rows))
	for _, row := range rows {
		name := row.ProductName
		if name == "" {
			name = fmt.Sprintf("Product #%d", row.ProductID)
		}
		items = append(items, orderItemView{
			ProductID:    row.ProductID,
			ProductName:  name,
			ProductSize:  row.Size,
			ProductColor: row.Color,
			Quantity:     row.Quantity,
			UnitPrice:    row.UnitPrice,
			Discount:     row.Discount,
			DiscountType: row.DiscountType,
			TotalPrice:   row.TotalPrice,
		})
	}
	return items, nil
}

func orderToResponse(order models.Order, items []orderItemView) gin.H {
	return gin.H{
		"order_id":           order.OrderID,
		"user_id":            order.UserID,
		"order_date":         order.OrderDate.Format("2006-01-02 15:04"),
		"status":             order.Status,
		"payment_method":     order.PaymentMethod,
		"payment_status":     order.PaymentStatus,
		"total_amount":       order.TotalAmount,
		"shipping_fee":       order.ShippingFee,
		"shipping_address":   utils.ParseShippingAddress(order.ShippingAddress),
		"notes":              order.Notes,
		"tracking_number":    order.TrackingNumber,
		"estimated_delivery": order.EstimatedDelivery,
		"items":              items,
	}
}

// GetOrderDetails returns one order with its items and the parsed
// shipping address, tolerating both address encodings.
func GetOrderDetails(ctx *gin.Context) {
	orderID := ctx.Param("order_id")

	var order models.Order
	err := initializers.DB.Where("order_id = ?", orderID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			log.Println("Order fetch error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	items, err := fetchOrderItems(order.OrderID)
	if err != nil {
		log.Println("Order items fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": orderToResponse(order, items)})
}

// GetAllOrders returns the caller's order history, newest first.
func GetAllOrders(ctx *gin.Context) {
	userID, ok := middlewares.GetUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	var orders []models.Order
	err := initializers.DB.
		Where("user_id = ?", userID).
		Order("order_date desc").
		Find(&orders).Error
	if err != nil {
		log.Println("Orders fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	data := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		items, err := fetchOrderItems(order.OrderID)
		if err != nil {
			log.Println("Order items fetch error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		data = append(data, orderToResponse(order, items))
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": data})
}

// CancelOrder transitions Pending orders to Cancelled. Any other
// status is reported as not cancellable with no mutation. Inventory
// is not restored on cancellation.
func CancelOrder(ctx *gin.Context) {
	userID, ok := middlewares.GetUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	orderID := ctx.Param("order_id")
	result := initializers.DB.Model(&models.Order{}).
		Where("order_id = ? AND user_id = ? AND status = ?", orderID, userID, models.OrderStatusPending).
		Update("status", models.OrderStatusCancelled)
	if result.Error != nil {
		log.Println("Order cancel error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": false, "message": msgOrderNotCancelable})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": msgOrderCancelled})
}
