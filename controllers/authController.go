package controllers

import (
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vantelle/vantelle-api/initializers"
	"github.com/vantelle/vantelle-api/middlewares"
	"github.com/vantelle/vantelle-api/models"
	"github.com/vantelle/vantelle-api/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "User with this email, username or phone already exists"
	msgFailedToHashPassword  = "failed to hash password"
	msgMissingCredentials    = "Email/Mobile and password are required."
	msgUserNotFound          = "User not found."
	msgAccountNotActive      = "Account is not active."
	msgInvalidPassword       = "Invalid password."
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgUserRegistered        = "User registered successfully"
	msgOldPasswordMismatch   = "Old password didn't match"
	msgProfileUpdated        = "Profile updated successfully!"
	msgPasswordUpdated       = "Password updated successfully! Redirecting..."
	msgUnauthenticated       = "User not found in context"
	msgFailedToUpdateProfile = "Unable to update profile"
	msgFailedToRegisterUser  = "Unable to register user"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"success": false, "message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func findUserByIdentifier(identifier string) (models.User, error) {
	var user models.User
	result := initializers.DB.Preload("Addresses").
		Where("email = ? OR phone = ?", identifier, identifier).
		Order("id asc").
		First(&user)
	return user, result.Error
}

func readProfileImage(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Register handles user sign up. The user row and its default address
// are created together; uniqueness of email/username/phone is left to
// the database constraints.
func Register(ctx *gin.Context) {
	fullName := ctx.PostForm("full_name")
	email := ctx.PostForm("email")
	phone := ctx.PostForm("phone")
	password := ctx.PostForm("password")

	if fullName == "" || email == "" || phone == "" || password == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	var profileImage []byte
	if file, err := ctx.FormFile("profile_image"); err == nil {
		profileImage, err = readProfileImage(file)
		if err != nil {
			log.Println("Profile image read error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}
	}

	// An absent username stays NULL so the unique index does not
	// collide on the empty string.
	var username *string
	if v := ctx.PostForm("username"); v != "" {
		username = &v
	}

	user := models.User{
		FullName:     fullName,
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: hashedPassword,
		Gender:       ctx.PostForm("gender"),
		ProfileImage: profileImage,
		Status:       "active",
		Role:         "customer",
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		log.Println("User creation error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	address := models.Address{
		AddressID:    utils.GenerateAddressID(user.ID),
		UserID:       user.ID,
		AddressLine1: ctx.PostForm("address_line1"),
		AddressLine2: ctx.PostForm("address_line2"),
		Division:     ctx.PostForm("division"),
		District:     ctx.PostForm("district"),
		Upazila:      ctx.PostForm("upazila"),
		PostalCode:   ctx.PostForm("postal_code"),
		Country:      "Bangladesh",
		IsDefault:    true,
	}
	if err := tx.Create(&address).Error; err != nil {
		tx.Rollback()
		log.Println("Address creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToRegisterUser)
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Registration commit error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToRegisterUser)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserRegistered})
}

// Login authenticates by email or phone and issues a signed,
// time-limited identity token.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgMissingCredentials)
		return
	}

	user, err := findUserByIdentifier(loginData.Identifier)
	if err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	if user.Status != "active" {
		sendErrorResponse(ctx, http.StatusForbidden, msgAccountNotActive)
		return
	}

	if err := comparePasswords(user.PasswordHash, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidPassword)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"token": tokenString,
		"user": gin.H{
			"user_id":       user.ID,
			"full_name":     user.FullName,
			"email":         user.Email,
			"phone":         user.Phone,
			"gender":        user.Gender,
			"role":          user.Role,
			"profile_image": user.ProfileImage,
			"addresses":     user.Addresses,
		},
	})
}

// UpdateProfile changes contact fields, optionally the password
// (after verifying the old one) and upserts the user's address, all
// in one transaction.
func UpdateProfile(ctx *gin.Context) {
	userID, ok := middlewares.GetUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	oldPassword := ctx.PostForm("old_password")
	newPassword := ctx.PostForm("new_password")

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		tx.Rollback()
		sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
		return
	}

	passwordChanged := false
	if oldPassword != "" && newPassword != "" {
		if err := comparePasswords(user.PasswordHash, oldPassword); err != nil {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusBadRequest, msgOldPasswordMismatch)
			return
		}

		hashedPassword, err := hashPassword(newPassword)
		if err != nil {
			tx.Rollback()
			log.Println("Password hashing error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
			return
		}

		if err := tx.Model(&user).Update("password_hash", hashedPassword).Error; err != nil {
			tx.Rollback()
			log.Println("Password update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToUpdateProfile)
			return
		}
		passwordChanged = true
	}

	profileImage := user.ProfileImage
	if file, err := ctx.FormFile("profile_image"); err == nil {
		if data, err := readProfileImage(file); err == nil {
			profileImage = data
		} else {
			log.Println("Profile image read error:", err)
		}
	}

	updates := map[string]any{
		"full_name":     ctx.PostForm("full_name"),
		"email":         ctx.PostForm("email"),
		"phone":         ctx.PostForm("phone"),
		"gender":        ctx.PostForm("gender"),
		"profile_image": profileImage,
	}
	if err := tx.Model(&user).Updates(updates).Error; err != nil {
		tx.Rollback()
		log.Println("Profile update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToUpdateProfile)
		return
	}

	addressUpdates := map[string]any{
		"division":      ctx.PostForm("division"),
		"district":      ctx.PostForm("district"),
		"upazila":       ctx.PostForm("upazila"),
		"address_line1": ctx.PostForm("address_line1"),
		"address_line2": ctx.PostForm("address_line2"),
		"postal_code":   ctx.PostForm("postal_code"),
	}

	var address models.Address
	if err := tx.Where("user_id = ?", userID).First(&address).Error; err == nil {
		if err := tx.Model(&address).Updates(addressUpdates).Error; err != nil {
			tx.Rollback()
			log.Println("Address update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToUpdateProfile)
			return
		}
	} else {
		address = models.Address{
			AddressID:    utils.GenerateAddressID(userID),
			UserID:       userID,
			AddressLine1: ctx.PostForm("address_line1"),
			AddressLine2: ctx.PostForm("address_line2"),
			Division:     ctx.PostForm("division"),
			District:     ctx.PostForm("district"),
			Upazila:      ctx.PostForm("upazila"),
			PostalCode:   ctx.PostForm("postal_code"),
			Country:      "Bangladesh",
			IsDefault:    true,
		}
		if err := tx.Create(&address).Error; err != nil {
			tx.Rollback()
			log.Println("Address creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToUpdateProfile)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Profile update commit error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToUpdateProfile)
		return
	}

	message := msgProfileUpdated
	if passwordChanged {
		message = msgPasswordUpdated
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
}
