package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_console/internal/controllers"
)

func AuthRoutes(r *gin.Engine, deps Deps) {
	auth := controllers.NewAuthController(deps.API, deps.Store, deps.Registry)

	r.GET("/", auth.ShowLogin)
	r.POST("/login", auth.Login)
	r.POST("/logout", auth.Logout)
}
