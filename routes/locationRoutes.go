package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vantelle/vantelle-api/controllers"
)

func LocationRoutes(server *gin.Engine) {
	locations := server.Group("/locations")
	{
		locations.GET("/divisions", controllers.GetDivisions)
		locations.GET("/districts/:division", controllers.GetDistricts)
		locations.GET("/upazilas/:division", controllers.GetUpazilas)
	}
}
