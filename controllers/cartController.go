package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vantelle/vantelle-api/initializers"
	"github.com/vantelle/vantelle-api/middlewares"
	"github.com/vantelle/vantelle-api/models"
	"github.com/vantelle/vantelle-api/utils"
	"gorm.io/gorm"
)

const (
	msgProductIDRequired    = "Product ID is required"
	msgSizeColorRequired    = "Size and Color are required"
	msgProductNotFound      = "Product not found"
	msgProductNotAvailable  = "Product is not available right now"
	msgVariantNotFound      = "Selected variant not found"
	msgStockExceeded        = "Requested quantity exceeds available stock"
	msgCartItemAdded        = "Item added to cart successfully!"
	msgCartItemNotFound     = "Cart item not found"
	msgInvalidQuantity      = "Invalid quantity"
	msgQuantityUpdated      = "Quantity updated successfully"
	msgVariantInventoryGone = "Variant inventory not found"
)

// CartLine is a cart row joined with live product data for display
// and subtotal computation.
type CartLine struct {
	CartID       string    `json:"cart_id"`
	ProductID    uint      `json:"product_id"`
	Title        string    `json:"title"`
	Size         string    `json:"size"`
	Color        string    `json:"color"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	Discount     float64   `json:"discount"`
	DiscountType string    `json:"discount_type"`
	Inventory    int       `json:"inventory"`
	AddedAt      time.Time `json:"added_at"`
}

func fetchCartLines(userID uint) ([]CartLine, error) {
	lines := []CartLine{}
	err := initializers.DB.Table("cart_items").
		Select(`cart_items.cart_id, cart_items.product_id, products.title,
			cart_items.size, cart_items.color, cart_items.quantity,
			cart_items.unit_price, cart_items.discount, cart_items.discount_type,
			inventory_variants.inventory, cart_items.created_at AS added_at`).
		Joins("JOIN products ON products.id = cart_items.product_id").
		Joins(`JOIN inventory_variants ON inventory_variants.product_id = cart_items.product_id
			AND inventory_variants.size = cart_items.size
			AND inventory_variants.color = cart_items.color`).
		Where("cart_items.user_id = ? AND cart_items.deleted_at IS NULL", userID).
		Scan(&lines).Error
	return lines, err
}

// heldQuantity sums the caller's cart quantity for one variant,
// optionally excluding a line that is being updated.
func heldQuantity(userID, productID uint, size, color, excludeCartID string) (int, error) {
	var total int
	query := initializers.DB.Model(&models.CartItem{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("user_id = ? AND product_id = ? AND size = ? AND color = ?", userID, productID, size, color)
	if excludeCartID != "" {
		query = query.Where("cart_id != ?", excludeCartID)
	}
	err := query.Scan(&total).Error
	return total, err
}

// AddToCart inserts a new cart line or merges into an existing line
// for the same variant, refreshing the discount snapshot either way.
func AddToCart(ctx *gin.Context) {
	var input struct {
		ProductID uint   `json:"product_id"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if input.ProductID == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgProductIDRequired)
		return
	}
	if input.Size == "" || input.Color == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgSizeColorRequired)
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 1 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidQuantity)
		return
	}

	userID, ok := middlewares.GetUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}
	if product.Status != models.ProductStatusActive {
		sendErrorResponse(ctx, http.StatusBadRequest, msgProductNotAvailable)
		return
	}

	var variant models.InventoryVariant
	err := initializers.DB.
		Where("product_id = ? AND size = ? AND color = ?", input.ProductID, input.Size, input.Color).
		First(&variant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgVariantNotFound)
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if variant.Inventory <= 0 || input.Quantity > variant.Inventory {
		sendErrorResponse(ctx, http.StatusBadRequest, msgStockExceeded)
		return
	}

	held, err := heldQuantity(userID, input.ProductID, input.Size, input.Color, "")
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if held+input.Quantity > variant.Inventory {
		sendErrorResponse(ctx, http.StatusBadRequest, msgStockExceeded)
		return
	}

	var existing models.CartItem
	err = initializers.DB.
		Where("user_id = ? AND product_id = ? AND size = ? AND color = ?", userID, input.ProductID, input.Size, input.Color).
		First(&existing).Error

	if err == nil {
		existing.Quantity += input.Quantity
		existing.Discount = product.Discount
		existing.DiscountType = product.DiscountType
		if err := initializers.DB.Save(&existing).Error; err != nil {
			log.Println("Cart update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		item := models.CartItem{
			CartID:       utils.GenerateCartID(userID),
			UserID:       userID,
			ProductID:    input.ProductID,
			Size:         input.Size,
			Color:        input.Color,
			Quantity:     input.Quantity,
			UnitPrice:    product.Price,
			Discount:     product.Discount,
			DiscountType: product.DiscountType,
		}
		if err := initializers.DB.Create(&item).Error; err != nil {
			log.Println("Cart create error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	} else {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": msgCartItemAdded})
}

// UpdateCartQuantity sets the absolute quantity of one cart line,
// re-checking the inventory ceiling with the line itself excluded
// from the held sum.
func UpdateCartQuantity(ctx *gin.Context) {
	var input struct {
		CartID   string `json:"cart_id"`
		Quantity int    `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if input.CartID == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Cart ID is required")
		return
	}
	if input.Quantity < 1 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidQuantity)
		return
	}

	userID, ok := middlewares.GetUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	var item models.CartItem
	err := initializers.DB.
		Where("cart_id = ? AND user_id = ?", input.CartID, userID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	var variant models.InventoryVariant
	err = initializers.DB.
		Where("product_id = ? AND size = ? AND color = ?", item.ProductID, item.Size, item.Color).
		First(&variant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgVariantInventoryGone)
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	heldByOthers, err := heldQuantity(userID, item.ProductID, item.Size, item.Color, item.CartID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if input.Quantity+heldByOthers > variant.Inventory {
		sendErrorResponse(ctx, http.StatusBadRequest, msgStockExceeded)
		return
	}

	if err := initializers.DB.Model(&item).Update("quantity", input.Quantity).Error; err != nil {
		log.Println("Cart update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": msgQuantityUpdated})
}

// RemoveCartItem deletes one cart line. Removing a line that does not
// exist is not an error.
func RemoveCartItem(ctx *gin.Context) {
	userID, ok := middlewares.GetUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	cartID := ctx.Param("cart_id")
	if err := initializers.DB.
		Where("cart_id = ? AND user_id = ?", cartID, userID).
		Delete(&models.CartItem{}).Error; err != nil {
		log.Println("Cart delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true})
}

func GetCart(ctx *gin.Context) {
	userID, ok := middlewares.GetUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	lines, err := fetchCartLines(userID)
	if err != nil {
		log.Println("Cart fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": lines})
}

// GetCheckout returns the caller's contact info, default address and
// cart snapshot for the checkout page.
func GetCheckout(ctx *gin.Context) {
	userID, ok := middlewares.GetUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, userID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
		return
	}

	var address *models.Address
	var defaultAddress models.Address
	err := initializers.DB.
		Where("user_id = ? AND is_default = ?", userID, true).
		First(&defaultAddress).Error
	if err == nil {
		address = &defaultAddress
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Address fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	lines, err := fetchCartLines(userID)
	if err != nil {
		log.Println("Cart fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"full_name": user.FullName,
			"email":     user.Email,
			"phone":     user.Phone,
		},
		"address": address,
		"cart":    lines,
	})
}
