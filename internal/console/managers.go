package console

import (
	"context"

	"fleet_console/internal/models"
)

// Entity managers: each pairs a draft form with a create flow. Every flow is
// the same cycle — clear banner, call the API, on success set the message,
// reset the draft and re-fetch exactly the affected collection; on failure
// set the error and keep the draft so the admin can correct and resubmit.

const (
	actionCreateDriver  = "create-driver"
	actionCreateVehicle = "create-vehicle"
	actionCreateRoute   = "create-route"
	actionCreateTrip    = "create-trip"
	actionAssignDriver  = "assign-driver"
)

func (s *Shell) SetDriverForm(draft models.DriverDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.DriverForm = draft
}

func (s *Shell) SetVehicleForm(draft models.VehicleDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.VehicleForm = draft
}

func (s *Shell) SetRouteForm(draft models.RouteDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.RouteForm = draft
}

func (s *Shell) SetTripForm(draft models.TripDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.TripForm = draft
}

func (s *Shell) SetAssignForm(draft AssignDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AssignForm = draft
}

func (s *Shell) CreateDriver(ctx context.Context) error {
	if !s.begin(actionCreateDriver) {
		return ErrBusy
	}
	defer s.end(actionCreateDriver)
	s.clearBanner()

	s.mu.Lock()
	draft := s.state.DriverForm
	s.mu.Unlock()

	msg, err := s.api.CreateDriver(ctx, draft)
	if err != nil {
		s.fail(err, "Error creating driver")
		return err
	}
	s.succeed(msg, "Driver created successfully")
	s.mu.Lock()
	s.state.DriverForm = models.DriverDraft{}
	s.mu.Unlock()
	s.fetchDrivers(ctx)
	return nil
}

func (s *Shell) CreateVehicle(ctx context.Context) error {
	if !s.begin(actionCreateVehicle) {
		return ErrBusy
	}
	defer s.end(actionCreateVehicle)
	s.clearBanner()

	s.mu.Lock()
	draft := s.state.VehicleForm
	s.mu.Unlock()

	msg, err := s.api.CreateVehicle(ctx, draft)
	if err != nil {
		s.fail(err, "Error creating vehicle")
		return err
	}
	s.succeed(msg, "Vehicle created successfully")
	s.mu.Lock()
	s.state.VehicleForm = models.VehicleDraft{FuelType: models.FuelPetrol}
	s.mu.Unlock()
	s.fetchVehicles(ctx)
	return nil
}

func (s *Shell) CreateRoute(ctx context.Context) error {
	if !s.begin(actionCreateRoute) {
		return ErrBusy
	}
	defer s.end(actionCreateRoute)
	s.clearBanner()

	s.mu.Lock()
	draft := s.state.RouteForm
	s.mu.Unlock()

	msg, err := s.api.CreateRoute(ctx, draft)
	if err != nil {
		s.fail(err, "Error creating route")
		return err
	}
	s.succeed(msg, "Route created successfully")
	s.mu.Lock()
	s.state.RouteForm = models.RouteDraft{}
	s.mu.Unlock()
	s.fetchRoutes(ctx)
	return nil
}

func (s *Shell) CreateTrip(ctx context.Context) error {
	if !s.begin(actionCreateTrip) {
		return ErrBusy
	}
	defer s.end(actionCreateTrip)
	s.clearBanner()

	s.mu.Lock()
	draft := s.state.TripForm
	s.mu.Unlock()

	msg, err := s.api.CreateTrip(ctx, draft)
	if err != nil {
		s.fail(err, "Error creating trip")
		return err
	}
	s.succeed(msg, "Trip scheduled successfully")
	s.mu.Lock()
	s.state.TripForm = models.TripDraft{}
	s.mu.Unlock()
	s.fetchTrips(ctx)
	return nil
}

// AssignDriver submits the assignment form. A vehicle selection is required
// and checked before any network call; the driver side is optional, with nil
// meaning unassign.
func (s *Shell) AssignDriver(ctx context.Context) error {
	s.clearBanner()

	s.mu.Lock()
	form := s.state.AssignForm
	s.mu.Unlock()

	if form.VehicleID == "" {
		s.mu.Lock()
		s.state.Error = "Please select a vehicle."
		s.mu.Unlock()
		return nil
	}

	if !s.begin(actionAssignDriver) {
		return ErrBusy
	}
	defer s.end(actionAssignDriver)

	msg, err := s.api.AssignDriver(ctx, form.VehicleID, form.DriverID)
	if err != nil {
		s.fail(err, "Error assigning driver")
		return err
	}
	s.succeed(msg, "Driver assignment updated")
	s.mu.Lock()
	s.state.AssignForm = AssignDraft{}
	s.mu.Unlock()
	s.fetchVehicles(ctx)
	return nil
}
