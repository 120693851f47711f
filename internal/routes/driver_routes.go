package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_console/internal/controllers"
	"fleet_console/internal/middleware"
)

func DriverRoutes(r *gin.Engine, deps Deps) {
	driver := controllers.NewDriverController()

	r.GET("/driver", middleware.RequireRole(deps.Store, "driver"), driver.Show)
}
