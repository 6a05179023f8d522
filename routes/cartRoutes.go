package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vantelle/vantelle-api/controllers"
	"github.com/vantelle/vantelle-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.POST("/add", controllers.AddToCart)
		cart.PATCH("/update", controllers.UpdateCartQuantity)
		cart.DELETE("/:cart_id", controllers.RemoveCartItem)
		cart.GET("", controllers.GetCart)
	}
	server.GET("/checkout", middlewares.RequireAuth(), controllers.GetCheckout)
}
