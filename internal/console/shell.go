package console

import (
	"context"
	"errors"
	"sync"

	logrus "github.com/sirupsen/logrus"

	"fleet_console/internal/api"
	"fleet_console/internal/logger"
	"fleet_console/internal/models"
)

// Dashboard tabs.
const (
	TabDrivers  = "drivers"
	TabVehicles = "vehicles"
	TabRoutes   = "routes"
	TabTrips    = "trips"
)

// ErrBusy is returned when a submit action is already in flight; overlapping
// identical submissions are rejected rather than queued.
var ErrBusy = errors.New("console: action already in flight")

// AssignDraft is the vehicle-assignment form. A nil DriverID is the explicit
// "None" choice and unassigns.
type AssignDraft struct {
	VehicleID string
	DriverID  *string
}

// State is the renderable dashboard state: the four collections, the active
// tab, the banner, and the uncommitted drafts.
type State struct {
	ActiveTab string
	Message   string
	Error     string

	Drivers  []models.Driver
	Vehicles []models.Vehicle
	Routes   []models.Route
	Trips    []models.Trip

	DriverForm  models.DriverDraft
	VehicleForm models.VehicleDraft
	RouteForm   models.RouteDraft
	TripForm    models.TripDraft
	AssignForm  AssignDraft
}

// Shell owns the dashboard for one admin session. It is the only component
// that mutates the shared collections; managers feed it drafts and it runs
// the call → message → refetch cycle.
type Shell struct {
	mu    sync.Mutex
	api   *api.Client
	log   *logrus.Entry
	busy  map[string]bool
	once  sync.Once
	state State

	flows map[string]*UpdateVehicleFlow
}

func NewShell(client *api.Client) *Shell {
	return &Shell{
		api:   client,
		log:   logger.Component("console"),
		busy:  make(map[string]bool),
		flows: make(map[string]*UpdateVehicleFlow),
		state: State{ActiveTab: TabDrivers},
	}
}

// State returns a render snapshot. Slices are shared and must be treated as
// read-only by the caller.
func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SelectTab switches the active tab and clears the banner. Unknown tab names
// are ignored.
func (s *Shell) SelectTab(tab string) {
	switch tab {
	case TabDrivers, TabVehicles, TabRoutes, TabTrips:
	default:
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveTab = tab
	s.state.Message = ""
	s.state.Error = ""
}

// SetMessage sets the success banner, clearing any error. Used for messages
// carried across navigation, like the vehicle editor's success flag.
func (s *Shell) SetMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Message = msg
	s.state.Error = ""
}

// EnsureLoaded runs the initial FetchAll exactly once per shell.
func (s *Shell) EnsureLoaded(ctx context.Context) {
	s.once.Do(func() { s.FetchAll(ctx) })
}

// FetchAll fetches the four collections in parallel. Each goroutine writes
// only its own slot; one failure sets the shared error banner but never
// blocks the others.
func (s *Shell) FetchAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, fetch := range []func(context.Context){
		s.fetchDrivers,
		s.fetchVehicles,
		s.fetchRoutes,
		s.fetchTrips,
	} {
		wg.Add(1)
		go func(f func(context.Context)) {
			defer wg.Done()
			f(ctx)
		}(fetch)
	}
	wg.Wait()
}

func (s *Shell) fetchDrivers(ctx context.Context) {
	drivers, err := s.api.ListDrivers(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.WithError(err).Error("fetching drivers")
		s.state.Error = errorMessage(err, "Error fetching drivers")
		return
	}
	s.state.Drivers = drivers
}

func (s *Shell) fetchVehicles(ctx context.Context) {
	vehicles, err := s.api.ListVehicles(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.WithError(err).Error("fetching vehicles")
		s.state.Error = errorMessage(err, "Error fetching vehicles")
		return
	}
	s.state.Vehicles = vehicles
}

func (s *Shell) fetchRoutes(ctx context.Context) {
	routes, err := s.api.ListRoutes(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.WithError(err).Error("fetching routes")
		s.state.Error = errorMessage(err, "Error fetching routes")
		return
	}
	s.state.Routes = routes
}

func (s *Shell) fetchTrips(ctx context.Context) {
	trips, err := s.api.ListTrips(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.WithError(err).Error("fetching trips")
		s.state.Error = errorMessage(err, "Error fetching trips")
		return
	}
	s.state.Trips = trips
}

// begin marks an action in flight; it reports false when one already is.
func (s *Shell) begin(action string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[action] {
		return false
	}
	s.busy[action] = true
	return true
}

func (s *Shell) end(action string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, action)
}

func (s *Shell) clearBanner() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Message = ""
	s.state.Error = ""
}

// fail sets the error banner from the server msg or the action fallback.
func (s *Shell) fail(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = errorMessage(err, fallback)
	s.state.Message = ""
}

// succeed sets the success banner from the server msg or the fallback.
func (s *Shell) succeed(msg, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg == "" {
		msg = fallback
	}
	s.state.Message = msg
	s.state.Error = ""
}

func errorMessage(err error, fallback string) string {
	if msg := api.Message(err); msg != "" {
		return msg
	}
	return fallback
}
