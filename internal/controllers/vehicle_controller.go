package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_console/internal/console"
	"fleet_console/internal/middleware"
)

// VehicleController serves the single-vehicle editor: fetch-by-id, the
// validated update form, and the unassign-driver action.
type VehicleController struct {
	registry *console.Registry
}

func NewVehicleController(registry *console.Registry) *VehicleController {
	return &VehicleController{registry: registry}
}

func (v *VehicleController) flow(c *gin.Context) *console.UpdateVehicleFlow {
	sh := v.registry.Shell(middleware.CurrentSession(c))
	return sh.EditVehicle(c.Param("id"))
}

// ShowEdit re-fetches the vehicle on every visit; only form posts reuse the
// flow's in-memory state.
func (v *VehicleController) ShowEdit(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	flow := v.flow(c)
	flow.Load(c.Request.Context(), sess.User.Role)
	renderEditor(c, flow.View())
}

// editableFields in form order; posted values run through the editor's
// change handler so field errors clear the way they do on edit.
var editableFields = []string{"plateNumber", "make", "model", "year", "capacity", "fuelType", "status"}

func (v *VehicleController) SubmitEdit(c *gin.Context) {
	flow := v.flow(c)
	for _, field := range editableFields {
		if value, ok := c.GetPostForm(field); ok {
			flow.Change(field, value)
		}
	}
	flow.Submit(c.Request.Context())
	renderEditor(c, flow.View())
}

func (v *VehicleController) UnassignDriver(c *gin.Context) {
	flow := v.flow(c)
	confirmed := c.PostForm("confirm") == "yes"
	flow.Unassign(c.Request.Context(), func(driverName, plate string) bool {
		return confirmed
	})
	renderEditor(c, flow.View())
}

func renderEditor(c *gin.Context, view console.FlowView) {
	status := http.StatusOK
	if view.Phase == console.PhaseNotFound {
		status = http.StatusNotFound
	}
	c.HTML(status, "vehicle_edit.html", gin.H{
		"View":          view,
		"RedirectDelay": int(view.RedirectAfter.Seconds()),
	})
}
