package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_console/internal/controllers"
	"fleet_console/internal/middleware"
)

func VehicleRoutes(r *gin.Engine, deps Deps) {
	vehicles := controllers.NewVehicleController(deps.Registry)

	edit := r.Group("/vehicles/edit")
	edit.Use(middleware.RequireRole(deps.Store, "admin"))
	{
		edit.GET("/:id", vehicles.ShowEdit)
		edit.POST("/:id", vehicles.SubmitEdit)
		edit.POST("/:id/unassign", vehicles.UnassignDriver)
	}
}
