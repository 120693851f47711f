package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"fleet_console/internal/console"
	"fleet_console/internal/middleware"
	"fleet_console/internal/models"
)

// DashboardController binds the tabbed admin dashboard to its per-session
// shell: tab selection and the create/assign form posts.
type DashboardController struct {
	registry *console.Registry
}

func NewDashboardController(registry *console.Registry) *DashboardController {
	return &DashboardController{registry: registry}
}

func (d *DashboardController) shell(c *gin.Context) *console.Shell {
	return d.registry.Shell(middleware.CurrentSession(c))
}

// Show renders the dashboard. A tab query switches tabs (clearing the
// banner); updated=1 is the success flag carried back from the vehicle
// editor.
func (d *DashboardController) Show(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	sh := d.shell(c)
	sh.EnsureLoaded(c.Request.Context())

	if tab := c.Query("tab"); tab != "" {
		sh.SelectTab(tab)
	}
	if c.Query("updated") == "1" {
		sh.SetMessage("Vehicle updated successfully!")
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":  sess.User,
		"State": sh.State(),
	})
}

func (d *DashboardController) CreateDriver(c *gin.Context) {
	sh := d.shell(c)
	sh.SetDriverForm(models.DriverDraft{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	})
	sh.CreateDriver(c.Request.Context())
	c.Redirect(http.StatusFound, "/admin")
}

func (d *DashboardController) CreateVehicle(c *gin.Context) {
	sh := d.shell(c)
	sh.SetVehicleForm(models.VehicleDraft{
		PlateNumber: c.PostForm("plateNumber"),
		Make:        c.PostForm("make"),
		Model:       c.PostForm("model"),
		Year:        cast.ToInt(c.PostForm("year")),
		Capacity:    cast.ToInt(c.PostForm("capacity")),
		FuelType:    c.DefaultPostForm("fuelType", models.FuelPetrol),
	})
	sh.CreateVehicle(c.Request.Context())
	c.Redirect(http.StatusFound, "/admin")
}

func (d *DashboardController) CreateRoute(c *gin.Context) {
	sh := d.shell(c)
	sh.SetRouteForm(models.RouteDraft{
		Name:              c.PostForm("name"),
		StartLocation:     c.PostForm("startLocation"),
		EndLocation:       c.PostForm("endLocation"),
		Distance:          cast.ToFloat64(c.PostForm("distance")),
		EstimatedDuration: cast.ToFloat64(c.PostForm("estimatedDuration")),
		Stops:             parseStops(c.PostForm("stops")),
	})
	sh.CreateRoute(c.Request.Context())
	c.Redirect(http.StatusFound, "/admin")
}

func (d *DashboardController) CreateTrip(c *gin.Context) {
	sh := d.shell(c)
	sh.SetTripForm(models.TripDraft{
		DriverID:           c.PostForm("driverId"),
		VehicleID:          c.PostForm("vehicleId"),
		RouteID:            c.PostForm("routeId"),
		ScheduledStartTime: c.PostForm("scheduledStartTime"),
		ScheduledEndTime:   c.PostForm("scheduledEndTime"),
		PassengerCount:     cast.ToInt(c.PostForm("passengerCount")),
	})
	sh.CreateTrip(c.Request.Context())
	c.Redirect(http.StatusFound, "/admin")
}

func (d *DashboardController) AssignDriver(c *gin.Context) {
	sh := d.shell(c)
	draft := console.AssignDraft{VehicleID: c.PostForm("vehicleId")}
	if v := c.PostForm("driverId"); v != "" && v != "none" {
		draft.DriverID = &v
	}
	sh.SetAssignForm(draft)
	sh.AssignDriver(c.Request.Context())
	c.Redirect(http.StatusFound, "/admin")
}

// parseStops reads the optional stops field: one stop per line (or
// semicolon-separated), "Name" or "Name @ lat,lng".
func parseStops(raw string) []models.Stop {
	var stops []models.Stop
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == ';' || r == '\n' }) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		stop := models.Stop{Name: part, Seq: len(stops) + 1}
		if at := strings.LastIndex(part, "@"); at >= 0 {
			coords := strings.SplitN(part[at+1:], ",", 2)
			if len(coords) == 2 {
				stop.Name = strings.TrimSpace(part[:at])
				stop.Lat = cast.ToFloat64(strings.TrimSpace(coords[0]))
				stop.Lng = cast.ToFloat64(strings.TrimSpace(coords[1]))
			}
		}
		stops = append(stops, stop)
	}
	return stops
}
