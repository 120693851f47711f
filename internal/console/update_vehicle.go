package console

import (
	"context"
	"sync"
	"time"

	logrus "github.com/sirupsen/logrus"

	"fleet_console/internal/api"
	"fleet_console/internal/logger"
	"fleet_console/internal/models"
)

// Vehicle editor phases.
const (
	PhaseLoading  = "loading"
	PhaseFailed   = "failed"
	PhaseNotFound = "not_found"
	PhaseReady    = "ready"
)

const (
	// Only the editor's fetch/update calls carry an explicit deadline; list
	// and create calls rely on the transport default.
	requestTimeout = 10 * time.Second
	redirectDelay  = 2 * time.Second
)

// FlowView is the renderable state of one vehicle editor.
type FlowView struct {
	VehicleID   string
	Phase       string
	Vehicle     *models.Vehicle
	Form        models.VehicleUpdate
	FieldErrors map[string]string
	Message     string
	Error       string
	Submitting  bool
	Unassigning bool

	// Redirect, when set, asks the view to navigate there after RedirectAfter.
	Redirect      string
	RedirectAfter time.Duration
}

// UpdateVehicleFlow is the single-record editor for one vehicle, keyed by the
// id taken from navigation. Submit and unassign carry independent busy flags.
type UpdateVehicleFlow struct {
	mu   sync.Mutex
	api  *api.Client
	log  *logrus.Entry
	view FlowView
}

func NewUpdateVehicleFlow(client *api.Client, vehicleID string) *UpdateVehicleFlow {
	return &UpdateVehicleFlow{
		api: client,
		log: logger.Component("vehicle-editor").WithField("vehicle_id", vehicleID),
		view: FlowView{
			VehicleID:   vehicleID,
			Phase:       PhaseLoading,
			FieldErrors: make(map[string]string),
		},
	}
}

// EditVehicle returns the session's editor for the given vehicle, creating it
// on first use.
func (s *Shell) EditVehicle(vehicleID string) *UpdateVehicleFlow {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, ok := s.flows[vehicleID]
	if !ok {
		flow = NewUpdateVehicleFlow(s.api, vehicleID)
		s.flows[vehicleID] = flow
	}
	return flow
}

// View returns a render snapshot.
func (f *UpdateVehicleFlow) View() FlowView {
	f.mu.Lock()
	defer f.mu.Unlock()
	view := f.view
	view.FieldErrors = make(map[string]string, len(f.view.FieldErrors))
	for field, msg := range f.view.FieldErrors {
		view.FieldErrors[field] = msg
	}
	if f.view.Vehicle != nil {
		vehicle := *f.view.Vehicle
		view.Vehicle = &vehicle
	}
	return view
}

// Load verifies the session role and fetches the vehicle. It runs on every
// editor visit and starts from a clean slate: phase, banners, field errors
// and any scheduled redirect from an earlier visit are discarded before the
// fetch, so a past failure or a completed update never outlives navigation.
// Failures are classified by cause; a 404 lands in the not-found phase rather
// than the error phase.
func (f *UpdateVehicleFlow) Load(ctx context.Context, role string) {
	f.mu.Lock()
	f.view.Phase = PhaseLoading
	f.view.Message = ""
	f.view.Error = ""
	f.view.Redirect = ""
	f.view.RedirectAfter = 0
	f.view.FieldErrors = make(map[string]string)
	f.mu.Unlock()

	if role != "admin" {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.view.Phase = PhaseFailed
		f.view.Error = "Unauthorized access. Admin privileges required."
		f.view.Redirect = "/"
		f.view.RedirectAfter = redirectDelay
		return
	}

	fctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	vehicle, err := f.api.GetVehicle(fctx, f.view.VehicleID)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.log.WithError(err).Error("fetching vehicle")
		switch {
		case api.IsTimeout(err):
			f.view.Phase = PhaseFailed
			f.view.Error = "Request timed out. Please check your connection."
		case api.IsNotFound(err):
			f.view.Phase = PhaseNotFound
		case api.IsUnauthorized(err):
			f.view.Phase = PhaseFailed
			f.view.Error = "Session expired. Please log in again."
			f.view.Redirect = "/"
			f.view.RedirectAfter = redirectDelay
		case api.IsForbidden(err):
			f.view.Phase = PhaseFailed
			f.view.Error = "Access denied. Admin privileges required."
		case api.Message(err) != "":
			f.view.Phase = PhaseFailed
			f.view.Error = api.Message(err)
		default:
			f.view.Phase = PhaseFailed
			f.view.Error = "Unable to connect to server. Please check if the backend is running."
		}
		return
	}

	f.view.Vehicle = &vehicle
	f.view.Form = models.VehicleUpdate{
		PlateNumber: vehicle.PlateNumber,
		Make:        vehicle.Make,
		Model:       vehicle.Model,
		Year:        vehicle.Year,
		Capacity:    vehicle.Capacity,
		FuelType:    vehicle.FuelType,
		Status:      vehicle.Status,
	}
	if f.view.Form.FuelType == "" {
		f.view.Form.FuelType = models.FuelPetrol
	}
	if f.view.Form.Status == "" {
		f.view.Form.Status = models.StatusActive
	}
	f.view.Phase = PhaseReady
}

// Change merges one edited field into the form, clearing that field's
// validation error and the banner. Unknown fields are ignored.
func (f *UpdateVehicleFlow) Change(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.view.Form.Set(field, value) {
		return
	}
	delete(f.view.FieldErrors, field)
	f.view.Message = ""
	f.view.Error = ""
}

// Submit validates and issues the update. Validation is all-or-nothing: any
// failing rule blocks the request. On success the submitted fields are merged
// into the loaded vehicle optimistically and a redirect back to the dashboard
// is scheduled, carrying the success flag.
func (f *UpdateVehicleFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.view.Phase != PhaseReady {
		f.mu.Unlock()
		return nil
	}
	if f.view.Submitting {
		f.mu.Unlock()
		return ErrBusy
	}
	if errs := ValidateVehicleUpdate(f.view.Form); len(errs) > 0 {
		f.view.FieldErrors = errs
		f.view.Error = "Please fix the validation errors below."
		f.view.Message = ""
		f.mu.Unlock()
		return nil
	}
	f.view.Submitting = true
	f.view.Message = ""
	f.view.Error = ""
	form := f.view.Form
	f.mu.Unlock()

	fctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	msg, err := f.api.UpdateVehicle(fctx, f.view.VehicleID, form)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.view.Submitting = false
	if err != nil {
		f.log.WithError(err).Error("updating vehicle")
		switch {
		case api.IsTimeout(err):
			f.view.Error = "Request timed out. Please try again."
		case api.IsNotFound(err):
			f.view.Error = "Vehicle not found or API endpoint not available. Please check if the backend is running."
		case api.IsUnauthorized(err):
			f.view.Error = "Session expired. Please log in again."
			f.view.Redirect = "/"
			f.view.RedirectAfter = redirectDelay
		case api.IsForbidden(err):
			f.view.Error = "Access denied. Admin privileges required."
		case api.Message(err) != "":
			f.view.Error = api.Message(err)
		default:
			f.view.Error = "Unable to connect to server. Please check if the backend is running on the correct port."
		}
		return err
	}

	if msg == "" {
		msg = "Vehicle updated successfully!"
	}
	f.view.Message = msg
	if f.view.Vehicle != nil {
		f.view.Vehicle.PlateNumber = form.PlateNumber
		f.view.Vehicle.Make = form.Make
		f.view.Vehicle.Model = form.Model
		f.view.Vehicle.Year = form.Year
		f.view.Vehicle.Capacity = form.Capacity
		f.view.Vehicle.FuelType = form.FuelType
		f.view.Vehicle.Status = form.Status
	}
	f.view.Redirect = "/admin?updated=1"
	f.view.RedirectAfter = redirectDelay
	return nil
}

// Unassign removes the vehicle's assigned driver. It requires an assigned
// driver and an explicit confirmation; confirm receives the driver name and
// plate for the prompt.
func (f *UpdateVehicleFlow) Unassign(ctx context.Context, confirm func(driverName, plate string) bool) error {
	f.mu.Lock()
	if f.view.Vehicle == nil || f.view.Vehicle.AssignedDriver == nil {
		f.view.Error = "No driver assigned to this vehicle."
		f.view.Message = ""
		f.mu.Unlock()
		return nil
	}
	if f.view.Unassigning {
		f.mu.Unlock()
		return ErrBusy
	}
	driverName := f.view.Vehicle.AssignedDriver.Name
	plate := f.view.Vehicle.PlateNumber
	f.mu.Unlock()

	if confirm != nil && !confirm(driverName, plate) {
		return nil
	}

	f.mu.Lock()
	f.view.Unassigning = true
	f.view.Message = ""
	f.view.Error = ""
	f.mu.Unlock()

	fctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	msg, err := f.api.AssignDriver(fctx, f.view.VehicleID, nil)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.view.Unassigning = false
	if err != nil {
		f.log.WithError(err).Error("unassigning driver")
		switch {
		case api.IsNotFound(err):
			f.view.Error = "Assignment endpoint not found. Please check backend configuration."
		case api.Message(err) != "":
			f.view.Error = api.Message(err)
		default:
			f.view.Error = "Error unassigning driver."
		}
		return err
	}

	if msg == "" {
		msg = "Driver unassigned successfully!"
	}
	f.view.Message = msg
	if f.view.Vehicle != nil {
		f.view.Vehicle.AssignedDriver = nil
	}
	return nil
}
