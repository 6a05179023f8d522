package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vantelle/vantelle-api/initializers"
	"github.com/vantelle/vantelle-api/models"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// productView flattens a product with its variant aggregation:
// total inventory, distinct size options and a comma-joined list of
// distinct colors.
type productView struct {
	ID           uint                      `json:"id"`
	Title        string                    `json:"title"`
	Description  string                    `json:"description"`
	Price        float64                   `json:"price"`
	Discount     float64                   `json:"discount"`
	DiscountType string                    `json:"discount_type"`
	Category     string                    `json:"category"`
	Gender       string                    `json:"gender"`
	Season       string                    `json:"season"`
	Status       string                    `json:"status"`
	IsFeatured   bool                      `json:"is_featured"`
	Inventory    int                       `json:"inventory"`
	SizeOptions  []string                  `json:"size_options"`
	Color        string                    `json:"color"`
	Images       []models.ProductImage     `json:"images"`
	Variants     []models.InventoryVariant `json:"variants"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}

func buildProductView(product models.Product) productView {
	view := productView{
		ID:           product.ID,
		Title:        product.Title,
		Description:  product.Description,
		Price:        product.Price,
		Discount:     product.Discount,
		DiscountType: product.DiscountType,
		Category:     product.Category,
		Gender:       product.Gender,
		Season:       product.Season,
		Status:       product.Status,
		IsFeatured:   product.IsFeatured,
		SizeOptions:  []string{},
		Images:       product.Images,
		Variants:     product.Variants,
	}
	view.CreatedAt = product.CreatedAt
	view.UpdatedAt = product.UpdatedAt

	seenSizes := map[string]bool{}
	seenColors := map[string]bool{}
	var colors []string
	for _, variant := range product.Variants {
		view.Inventory += variant.Inventory
		if variant.Size != "" && !seenSizes[variant.Size] {
			seenSizes[variant.Size] = true
			view.SizeOptions = append(view.SizeOptions, variant.Size)
		}
		if variant.Color != "" && !seenColors[variant.Color] {
			seenColors[variant.Color] = true
			colors = append(colors, variant.Color)
		}
	}
	view.Color = strings.Join(colors, ",")
	return view
}

// GetFeaturedProducts returns up to 10 featured products with their
// main images, newest first.
func GetFeaturedProducts(ctx *gin.Context) {
	var products []models.Product
	result := initializers.DB.
		Where("is_featured = ?", true).
		Preload("Images", "is_main = ?", true).
		Order("created_at desc").
		Limit(10).
		Find(&products)
	if result.Error != nil {
		log.Println("Featured products fetch error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	data := make([]gin.H, 0, len(products))
	for _, product := range products {
		data = append(data, gin.H{
			"id":     product.ID,
			"title":  product.Title,
			"price":  product.Price,
			"images": product.Images,
		})
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": data})
}

func GetProducts(ctx *gin.Context) {
	var products []models.Product

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	query := initializers.DB.Preload("Images").Preload("Variants")

	if search := ctx.Query("search"); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	result := query.Order("created_at desc, id asc").Limit(limit).Offset(offset).Find(&products)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Product{})
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("title LIKE ?", "%"+search+"%")
	}
	countQuery.Count(&count)

	data := make([]productView, 0, len(products))
	for _, product := range products {
		data = append(data, buildProductView(product))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetProduct(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	result := initializers.DB.Preload("Images").Preload("Variants").First(&product, productID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, msgProductNotFound, nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": buildProductView(product)})
}

// GetProductImages returns all images for a product, main image
// first, oldest first after that.
func GetProductImages(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var images []models.ProductImage
	result := initializers.DB.
		Where("product_id = ?", productID).
		Order("is_main desc, created_at asc").
		Find(&images)
	if result.Error != nil {
		log.Println("Product images fetch error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": images})
}

// Admin handlers

func CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if product.Status == "" {
		product.Status = models.ProductStatusActive
	}
	if product.DiscountType == "" {
		product.DiscountType = models.DiscountNone
	}

	if err := initializers.DB.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// CreateProductInventory registers stock for one (size, color)
// variant of a product.
func CreateProductInventory(ctx *gin.Context) {
	var variant models.InventoryVariant
	if err := ctx.ShouldBindJSON(&variant); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, variant.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, msgProductNotFound, nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
		}
		return
	}

	if err := initializers.DB.Create(&variant).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product inventory", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Product inventory added successfully"})
}

// UploadProductImages stores image payloads for a product. The first
// uploaded image of a product becomes its main image unless one
// already exists.
func UploadProductImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	productIDStr := ctx.PostForm("productId")
	if productIDStr == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing productId", nil)
		return
	}

	productID, err := strconv.Atoi(productIDStr)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid productId", err)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, msgProductNotFound, nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
		}
		return
	}

	var existingImages int64
	initializers.DB.Model(&models.ProductImage{}).Where("product_id = ?", productID).Count(&existingImages)

	var savedCount int
	var failedUploads []string

	for i, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		data, readErr := io.ReadAll(f)
		f.Close()
		if readErr != nil {
			log.Printf("Error reading file %s: %v", file.Filename, readErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		productImage := models.ProductImage{
			ProductID: uint(productID),
			ImageData: data,
			IsMain:    existingImages == 0 && i == 0,
		}
		if err := initializers.DB.Create(&productImage).Error; err != nil {
			log.Printf("Error saving image to database: %v", err)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}
		savedCount++
	}

	response := gin.H{
		"message": "Files processed",
		"saved":   savedCount,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}
