package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vantelle/vantelle-api/controllers"
	"github.com/vantelle/vantelle-api/middlewares"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
	}
	server.POST("/register", controllers.Register)
	server.PUT("/profile", middlewares.RequireAuth(), controllers.UpdateProfile)
}
