package utils

import (
	"strings"
	"time"
)

// EstimateDelivery returns a human-readable delivery date label.
// Dhaka district ships in 2 days, everywhere else in 5.
func EstimateDelivery(district string, now time.Time) string {
	days := 5
	if strings.EqualFold(district, "Dhaka") {
		days = 2
	}
	return now.AddDate(0, 0, days).Format("Monday, January 02")
}
