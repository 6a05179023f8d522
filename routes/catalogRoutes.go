package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vantelle/vantelle-api/controllers"
	"github.com/vantelle/vantelle-api/middlewares"
)

func CatalogRoutes(server *gin.Engine) {
	catalog := server.Group("/catalog")
	{
		catalog.GET("/featured", controllers.GetFeaturedProducts)
		catalog.GET("", controllers.GetProducts)
		catalog.GET("/:id", controllers.GetProduct)
		catalog.GET("/:id/images", controllers.GetProductImages)
	}

	admin := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/product", controllers.CreateProduct)
		admin.POST("/product-inventory", controllers.CreateProductInventory)
		admin.POST("/product-images", controllers.UploadProductImages)
	}
}
