package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vantelle/vantelle-api/controllers"
	"github.com/vantelle/vantelle-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.POST("/place", controllers.PlaceOrder)
		orders.GET("/details/:order_id", controllers.GetOrderDetails)
		orders.GET("/allOrders", controllers.GetAllOrders)
		orders.PATCH("/cancel/:order_id", controllers.CancelOrder)
	}
}
