package utils

import (
	"encoding/json"
	"regexp"
	"strings"
)

// ShippingAddress is the structured form of an order's shipping
// address. New orders store it as JSON; legacy rows hold a
// colon-delimited plain-text format that is parsed defensively.
type ShippingAddress struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	Upazila      string `json:"upazila"`
	District     string `json:"district"`
	Division     string `json:"division"`
	FullAddress  string `json:"full_address,omitempty"`
}

var legacyAddressLabels = regexp.MustCompile(`Name:|Phone:|Email:|Address:|Upazila:|District:|Division:`)

// ParseShippingAddress resolves the dual address encoding: structured
// JSON first, then the legacy delimited text as a best-effort
// fallback. It never fails; missing fields default to "N/A".
func ParseShippingAddress(raw string) ShippingAddress {
	shipping := ShippingAddress{
		FullName:    "N/A",
		Phone:       "N/A",
		Email:       "N/A",
		Upazila:     "N/A",
		District:    "N/A",
		Division:    "N/A",
		FullAddress: "Address not available",
	}

	var parsed ShippingAddress
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		shipping.FullName = orDefault(parsed.FullName, "N/A")
		shipping.Phone = orDefault(parsed.Phone, "N/A")
		shipping.Email = orDefault(parsed.Email, "N/A")
		shipping.AddressLine1 = parsed.AddressLine1
		shipping.AddressLine2 = parsed.AddressLine2
		shipping.Upazila = orDefault(parsed.Upazila, "N/A")
		shipping.District = orDefault(parsed.District, "N/A")
		shipping.Division = orDefault(parsed.Division, "N/A")
		shipping.FullAddress = joinAddressLines(parsed.AddressLine1, parsed.AddressLine2)
	} else {
		parts := splitLegacyAddress(raw)
		if len(parts) >= 7 {
			shipping.FullName = parts[0]
			shipping.Phone = parts[1]
			shipping.Email = parts[2]
			shipping.FullAddress = parts[3]
			shipping.Upazila = parts[4]
			shipping.District = parts[5]
			shipping.Division = parts[6]
		} else {
			shipping.FullAddress = raw
		}
	}

	if shipping.FullAddress == "" {
		shipping.FullAddress = "Address details incomplete"
	}
	return shipping
}

func splitLegacyAddress(raw string) []string {
	var parts []string
	for _, part := range legacyAddressLabels.Split(raw, -1) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

func joinAddressLines(line1, line2 string) string {
	if line2 != "" {
		return line1 + ", " + line2
	}
	return line1
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
