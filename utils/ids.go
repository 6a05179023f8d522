package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Display identifiers embed the owning user, a timestamp fragment and
// a random suffix. They are opaque to clients; rows keep a separate
// database primary key.

func GenerateOrderID(userID uint) string {
	datePart := time.Now().Format("200601021504")
	return fmt.Sprintf("ORD-%d-%s-%d", userID, datePart, 1000+rand.Intn(9000))
}

func GenerateTrackingNumber(orderID string) string {
	timestamp := lastDigits(time.Now().UnixMilli(), 6)
	return fmt.Sprintf("TRK-%s-%s-%d", lastChars(orderID, 4), timestamp, 1000+rand.Intn(9000))
}

func GenerateCartID(userID uint) string {
	timestamp := lastDigits(time.Now().UnixMilli(), 6)
	return fmt.Sprintf("CART-%d-%s-%d", userID, timestamp, 100+rand.Intn(900))
}

func GenerateOrderItemID(orderID string, productID uint) string {
	return fmt.Sprintf("%s-%d-%d", lastChars(orderID, 4), productID, 100+rand.Intn(900))
}

func GenerateAddressID(userID uint) string {
	return fmt.Sprintf("%d-%d", userID, 1000+rand.Intn(9000))
}

func lastChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func lastDigits(v int64, n int) string {
	return lastChars(strconv.FormatInt(v, 10), n)
}
