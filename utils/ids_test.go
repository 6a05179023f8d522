package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vantelle/vantelle-api/utils"
)

func TestGenerateOrderID(t *testing.T) {
	orderID := utils.GenerateOrderID(42)

	parts := strings.Split(orderID, "-")
	assert.Len(t, parts, 4)
	assert.Equal(t, "ORD", parts[0])
	assert.Equal(t, "42", parts[1])
	assert.Len(t, parts[2], 12)
	assert.Len(t, parts[3], 4)
}

func TestGenerateTrackingNumber(t *testing.T) {
	orderID := utils.GenerateOrderID(42)
	tracking := utils.GenerateTrackingNumber(orderID)

	parts := strings.Split(tracking, "-")
	assert.Len(t, parts, 4)
	assert.Equal(t, "TRK", parts[0])
	assert.Equal(t, orderID[len(orderID)-4:], parts[1])
}

func TestGenerateCartID(t *testing.T) {
	cartID := utils.GenerateCartID(7)

	assert.True(t, strings.HasPrefix(cartID, "CART-7-"))
	parts := strings.Split(cartID, "-")
	assert.Len(t, parts, 4)
	assert.Len(t, parts[3], 3)
}

func TestGenerateOrderItemID(t *testing.T) {
	itemID := utils.GenerateOrderItemID("ORD-42-202511221045-4829", 9)

	parts := strings.Split(itemID, "-")
	assert.Len(t, parts, 3)
	assert.Equal(t, "4829", parts[0])
	assert.Equal(t, "9", parts[1])
}

func TestGenerateAddressID(t *testing.T) {
	addressID := utils.GenerateAddressID(15)

	assert.True(t, strings.HasPrefix(addressID, "15-"))
}
