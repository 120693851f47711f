package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_console/internal/controllers"
	"fleet_console/internal/middleware"
)

func AdminRoutes(r *gin.Engine, deps Deps) {
	dash := controllers.NewDashboardController(deps.Registry)

	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(deps.Store, "admin"))
	{
		admin.GET("", dash.Show)
		admin.POST("/drivers", dash.CreateDriver)
		admin.POST("/vehicles", dash.CreateVehicle)
		admin.POST("/routes", dash.CreateRoute)
		admin.POST("/trips", dash.CreateTrip)
		admin.POST("/assign", dash.AssignDriver)
	}
}
