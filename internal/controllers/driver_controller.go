package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_console/internal/middleware"
)

// DriverController serves the driver-facing landing page.
type DriverController struct{}

func NewDriverController() *DriverController {
	return &DriverController{}
}

func (d *DriverController) Show(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	c.HTML(http.StatusOK, "driver.html", gin.H{"User": sess.User})
}
