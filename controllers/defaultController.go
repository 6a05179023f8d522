package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Vantelle API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/login" - Access user account
- POST "/register" - Create user account
- PUT "/profile" - Update profile, password and address

CATALOG
- GET "/catalog/featured" - Get featured products
- GET "/catalog" - Get all products (paged)
- GET "/catalog/{id}" - Get product by ID with variants and images
- GET "/catalog/{id}/images" - Get product images

CART
- POST "/cart/add" - Add a product variant to the cart
- PATCH "/cart/update" - Update cart line quantity
- DELETE "/cart/{cart_id}" - Remove a cart line
- GET "/cart" - Get the cart
- GET "/checkout" - Get checkout snapshot

ORDERS
- POST "/orders/place" - Place an order from the cart
- GET "/orders/details/{order_id}" - Get order details
- GET "/orders/allOrders" - Get order history
- PATCH "/orders/cancel/{order_id}" - Cancel a pending order

LOCATIONS
- GET "/locations/divisions" - Get divisions
- GET "/locations/districts/{division}" - Get districts
- GET "/locations/upazilas/{division}" - Get upazilas`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
