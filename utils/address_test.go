package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vantelle/vantelle-api/utils"
)

func TestParseShippingAddressJSON(t *testing.T) {
	raw := `{"full_name":"Ayesha Rahman","phone":"01712345678","email":"ayesha@example.com",` +
		`"address_line1":"House 12, Road 5","address_line2":"Dhanmondi","upazila":"",` +
		`"district":"Dhaka","division":"Dhaka"}`

	shipping := utils.ParseShippingAddress(raw)

	assert.Equal(t, "Ayesha Rahman", shipping.FullName)
	assert.Equal(t, "01712345678", shipping.Phone)
	assert.Equal(t, "ayesha@example.com", shipping.Email)
	assert.Equal(t, "Dhaka", shipping.District)
	assert.Equal(t, "Dhaka", shipping.Division)
	assert.Equal(t, "N/A", shipping.Upazila)
	assert.Equal(t, "House 12, Road 5, Dhanmondi", shipping.FullAddress)
}

func TestParseShippingAddressJSONMissingFields(t *testing.T) {
	shipping := utils.ParseShippingAddress(`{"full_name":"Karim"}`)

	assert.Equal(t, "Karim", shipping.FullName)
	assert.Equal(t, "N/A", shipping.Phone)
	assert.Equal(t, "N/A", shipping.Email)
	assert.Equal(t, "N/A", shipping.District)
	assert.Equal(t, "Address details incomplete", shipping.FullAddress)
}

func TestParseShippingAddressLegacyText(t *testing.T) {
	raw := "Name: Karim Uddin Phone: 01898765432 Email: karim@example.com " +
		"Address: 45 Station Road Upazila: Sadar District: Chittagong Division: Chittagong"

	shipping := utils.ParseShippingAddress(raw)

	assert.Equal(t, "Karim Uddin", shipping.FullName)
	assert.Equal(t, "01898765432", shipping.Phone)
	assert.Equal(t, "karim@example.com", shipping.Email)
	assert.Equal(t, "45 Station Road", shipping.FullAddress)
	assert.Equal(t, "Sadar", shipping.Upazila)
	assert.Equal(t, "Chittagong", shipping.District)
	assert.Equal(t, "Chittagong", shipping.Division)
}

func TestParseShippingAddressUnstructuredText(t *testing.T) {
	shipping := utils.ParseShippingAddress("somewhere near the old market")

	assert.Equal(t, "N/A", shipping.FullName)
	assert.Equal(t, "N/A", shipping.District)
	assert.Equal(t, "somewhere near the old market", shipping.FullAddress)
}

func TestParseShippingAddressEmpty(t *testing.T) {
	shipping := utils.ParseShippingAddress("")

	assert.Equal(t, "N/A", shipping.FullName)
	assert.Equal(t, "Address details incomplete", shipping.FullAddress)
}
