package routes

import (
	"html/template"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"fleet_console/internal/api"
	"fleet_console/internal/console"
	"fleet_console/internal/session"
	"fleet_console/web"
)

// Deps carries the shared dependencies route registration wires into the
// controllers.
type Deps struct {
	Store    session.Store
	API      *api.Client // unauthenticated client, used by login
	Registry *console.Registry
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()

	// Recovery middleware
	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(ginlogger.SetLogger())

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	AuthRoutes(r, deps)
	AdminRoutes(r, deps)
	VehicleRoutes(r, deps)
	DriverRoutes(r, deps)

	return r
}
