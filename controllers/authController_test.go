package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantelle/vantelle-api/initializers"
	"github.com/vantelle/vantelle-api/models"
	"golang.org/x/crypto/bcrypt"
)

func registrationFields() map[string]string {
	return map[string]string{
		"full_name":     "Ayesha Rahman",
		"username":      "ayesha",
		"email":         "ayesha@example.com",
		"phone":         "01712345678",
		"password":      "password1",
		"gender":        "female",
		"division":      "Dhaka",
		"district":      "Dhaka",
		"upazila":       "Dhanmondi",
		"address_line1": "House 12, Road 5",
		"postal_code":   "1209",
	}
}

func TestRegister(t *testing.T) {
	server := setupServer(t)

	t.Run("creates the user and a default address together", func(t *testing.T) {
		w := doMultipart(t, server, http.MethodPost, "/register", "", registrationFields())
		require.Equal(t, http.StatusCreated, w.Code)

		var user models.User
		require.NoError(t, initializers.DB.Where("email = ?", "ayesha@example.com").First(&user).Error)
		assert.Equal(t, "active", user.Status)
		assert.Equal(t, "customer", user.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password1")))

		var address models.Address
		require.NoError(t, initializers.DB.Where("user_id = ?", user.ID).First(&address).Error)
		assert.True(t, address.IsDefault)
		assert.Equal(t, "Bangladesh", address.Country)
		assert.Equal(t, "Dhaka", address.Division)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		fields := registrationFields()
		delete(fields, "password")
		fields["email"] = "other@example.com"
		fields["phone"] = "01800000000"

		w := doMultipart(t, server, http.MethodPost, "/register", "", fields)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		w := doMultipart(t, server, http.MethodPost, "/register", "", registrationFields())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("registrations without usernames do not collide", func(t *testing.T) {
		first := registrationFields()
		delete(first, "username")
		first["email"] = "karim@example.com"
		first["phone"] = "01911111111"
		w := doMultipart(t, server, http.MethodPost, "/register", "", first)
		require.Equal(t, http.StatusCreated, w.Code)

		second := registrationFields()
		delete(second, "username")
		second["email"] = "rahim@example.com"
		second["phone"] = "01922222222"
		w = doMultipart(t, server, http.MethodPost, "/register", "", second)
		require.Equal(t, http.StatusCreated, w.Code)

		var user models.User
		require.NoError(t, initializers.DB.Where("email = ?", "rahim@example.com").First(&user).Error)
		assert.Nil(t, user.Username)
	})
}

func TestLogin(t *testing.T) {
	server := setupServer(t)
	createUser(t, "active@example.com", "01711111111", "password1", "active")
	createUser(t, "blocked@example.com", "01722222222", "password1", "suspended")

	t.Run("requires identifier and password", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/auth/login", "", map[string]any{
			"identifier": "active@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/auth/login", "", map[string]any{
			"identifier": "nobody@example.com", "password": "password1",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects correct password for non-active account", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/auth/login", "", map[string]any{
			"identifier": "blocked@example.com", "password": "password1",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rejects wrong password for active account", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/auth/login", "", map[string]any{
			"identifier": "active@example.com", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("issues a token when status and password check pass", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/auth/login", "", map[string]any{
			"identifier": "active@example.com", "password": "password1",
		})
		require.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.NotEmpty(t, body["token"])
		assert.Equal(t, "active@example.com", body["user"].(map[string]any)["email"])
	})

	t.Run("accepts phone as identifier", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/auth/login", "", map[string]any{
			"identifier": "01711111111", "password": "password1",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	server := setupServer(t)
	user := createUser(t, "ayesha@example.com", "01712345678", "password1", "active")
	token := tokenFor(t, user)

	t.Run("old password mismatch aborts the whole update", func(t *testing.T) {
		w := doMultipart(t, server, http.MethodPut, "/profile", token, map[string]string{
			"full_name":    "Changed Name",
			"email":        "ayesha@example.com",
			"phone":        "01712345678",
			"old_password": "wrong",
			"new_password": "password2",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var unchanged models.User
		require.NoError(t, initializers.DB.First(&unchanged, user.ID).Error)
		assert.Equal(t, "Test User", unchanged.FullName)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(unchanged.PasswordHash), []byte("password1")))
	})

	t.Run("updates contact fields and upserts the address", func(t *testing.T) {
		w := doMultipart(t, server, http.MethodPut, "/profile", token, map[string]string{
			"full_name":     "Ayesha R.",
			"email":         "ayesha@example.com",
			"phone":         "01712345678",
			"gender":        "female",
			"division":      "Dhaka",
			"district":      "Dhaka",
			"address_line1": "House 34",
			"postal_code":   "1209",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var updated models.User
		require.NoError(t, initializers.DB.First(&updated, user.ID).Error)
		assert.Equal(t, "Ayesha R.", updated.FullName)

		var address models.Address
		require.NoError(t, initializers.DB.Where("user_id = ?", user.ID).First(&address).Error)
		assert.Equal(t, "House 34", address.AddressLine1)
	})

	t.Run("changes the password when the old one matches", func(t *testing.T) {
		w := doMultipart(t, server, http.MethodPut, "/profile", token, map[string]string{
			"full_name":    "Ayesha R.",
			"email":        "ayesha@example.com",
			"phone":        "01712345678",
			"old_password": "password1",
			"new_password": "password2",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Password updated successfully! Redirecting...", parseBody(t, w)["message"])

		var updated models.User
		require.NoError(t, initializers.DB.First(&updated, user.ID).Error)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("password2")))
	})

	t.Run("rejects unauthenticated requests", func(t *testing.T) {
		w := doMultipart(t, server, http.MethodPut, "/profile", "", map[string]string{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
