package console

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet_console/internal/api"
	"fleet_console/internal/models"
)

// fakeBackend routes "METHOD /path" keys to handlers and lets individual
// tests override the defaults.
type fakeBackend struct {
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{handlers: make(map[string]http.HandlerFunc)}
	b.set("GET /drivers", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"drivers":[{"_id":"d1","name":"Jane","email":"jane@fleet.io","role":"driver"}]}`))
	})
	b.set("GET /vehicles", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"v1","plateNumber":"KAA-001","make":"Toyota","model":"Hiace","year":2020,"capacity":14,"status":"active"}]`))
	})
	b.set("GET /routes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"r1","name":"CBD Express","startLocation":"Town","endLocation":"Airport","distance":18,"estimatedDuration":0.75}]`))
	})
	b.set("GET /trips", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"t1","driverId":"d1","vehicleId":"v1","routeId":"r1","status":"scheduled"}]`))
	})
	return b
}

func (b *fakeBackend) set(pattern string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[pattern] = h
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	h, ok := b.handlers[r.Method+" "+r.URL.Path]
	b.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

// newTestShell wires a shell against the fake backend and tears the server
// down with the test.
func newTestShell(t *testing.T, backend *fakeBackend) *Shell {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	return NewShell(api.NewClient(srv.URL, nil))
}

func TestShell_FetchAll(t *testing.T) {
	s := newTestShell(t, newFakeBackend())
	s.FetchAll(context.Background())

	state := s.State()
	assert.Empty(t, state.Error)
	require.Len(t, state.Drivers, 1)
	require.Len(t, state.Vehicles, 1)
	require.Len(t, state.Routes, 1)
	require.Len(t, state.Trips, 1)
	assert.Equal(t, "Jane", state.Drivers[0].Name)
	assert.Equal(t, "KAA-001", state.Vehicles[0].PlateNumber)
}

func TestShell_FetchAll_PartialFailure(t *testing.T) {
	backend := newFakeBackend()
	backend.set("GET /routes", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	s := newTestShell(t, backend)
	s.FetchAll(context.Background())

	state := s.State()
	assert.Equal(t, "Error fetching routes", state.Error)
	// The other collections still loaded.
	assert.Len(t, state.Drivers, 1)
	assert.Len(t, state.Vehicles, 1)
	assert.Len(t, state.Trips, 1)
	assert.Empty(t, state.Routes)
}

func TestShell_EnsureLoaded_Once(t *testing.T) {
	var calls int32
	backend := newFakeBackend()
	backend.set("GET /drivers", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"drivers":[]}`))
	})
	s := newTestShell(t, backend)

	s.EnsureLoaded(context.Background())
	s.EnsureLoaded(context.Background())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestShell_SelectTab(t *testing.T) {
	s := NewShell(api.NewClient("http://unused", nil))
	assert.Equal(t, TabDrivers, s.State().ActiveTab)

	s.SetMessage("Vehicle updated successfully!")
	s.SelectTab(TabRoutes)

	state := s.State()
	assert.Equal(t, TabRoutes, state.ActiveTab)
	assert.Empty(t, state.Message, "switching tabs clears the banner")

	s.SelectTab("bogus")
	assert.Equal(t, TabRoutes, s.State().ActiveTab, "unknown tab names are ignored")
}

func TestShell_CreateDriver(t *testing.T) {
	t.Run("success resets draft and refetches", func(t *testing.T) {
		var created atomic.Bool
		backend := newFakeBackend()
		backend.set("POST /drivers", func(w http.ResponseWriter, r *http.Request) {
			created.Store(true)
			w.Write([]byte(`{"msg":"Driver created"}`))
		})
		backend.set("GET /drivers", func(w http.ResponseWriter, r *http.Request) {
			if created.Load() {
				w.Write([]byte(`{"drivers":[{"_id":"d1","name":"Jane","email":"jane@fleet.io"},{"_id":"d2","name":"Omar","email":"omar@fleet.io"}]}`))
				return
			}
			w.Write([]byte(`{"drivers":[{"_id":"d1","name":"Jane","email":"jane@fleet.io"}]}`))
		})

		s := newTestShell(t, backend)
		s.SetDriverForm(models.DriverDraft{Name: "Omar", Email: "omar@fleet.io", Password: "pw"})
		require.NoError(t, s.CreateDriver(context.Background()))

		state := s.State()
		assert.Equal(t, "Driver created", state.Message)
		assert.Empty(t, state.Error)
		assert.Equal(t, models.DriverDraft{}, state.DriverForm)
		require.Len(t, state.Drivers, 2)
		assert.Equal(t, "omar@fleet.io", state.Drivers[1].Email)
	})

	t.Run("failure keeps draft", func(t *testing.T) {
		backend := newFakeBackend()
		backend.set("POST /drivers", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"msg":"Email already exists"}`))
		})

		s := newTestShell(t, backend)
		draft := models.DriverDraft{Name: "Omar", Email: "omar@fleet.io", Password: "pw"}
		s.SetDriverForm(draft)
		require.Error(t, s.CreateDriver(context.Background()))

		state := s.State()
		assert.Equal(t, "Email already exists", state.Error)
		assert.Empty(t, state.Message)
		assert.Equal(t, draft, state.DriverForm, "draft survives a failed submit")
	})

	t.Run("failure without server msg uses fallback", func(t *testing.T) {
		backend := newFakeBackend()
		backend.set("POST /drivers", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		s := newTestShell(t, backend)
		require.Error(t, s.CreateDriver(context.Background()))
		assert.Equal(t, "Error creating driver", s.State().Error)
	})
}

func TestShell_CreateVehicle_ResetSeedsFuelDefault(t *testing.T) {
	backend := newFakeBackend()
	backend.set("POST /vehicles", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"msg":"Vehicle created"}`))
	})

	s := newTestShell(t, backend)
	s.SetVehicleForm(models.VehicleDraft{PlateNumber: "KBB-002", Make: "Nissan", Model: "Caravan", Year: 2021, Capacity: 14, FuelType: models.FuelDiesel})
	require.NoError(t, s.CreateVehicle(context.Background()))

	state := s.State()
	assert.Equal(t, "Vehicle created", state.Message)
	assert.Equal(t, models.FuelPetrol, state.VehicleForm.FuelType, "reset draft returns to the petrol default")
	assert.Empty(t, state.VehicleForm.PlateNumber)
}

func TestShell_AssignDriver(t *testing.T) {
	t.Run("requires a vehicle before calling out", func(t *testing.T) {
		var assignCalls int32
		backend := newFakeBackend()
		backend.set("PUT /vehicles/assign-driver", func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&assignCalls, 1)
			w.Write([]byte(`{}`))
		})

		s := newTestShell(t, backend)
		driverID := "d1"
		s.SetAssignForm(AssignDraft{DriverID: &driverID})
		require.NoError(t, s.AssignDriver(context.Background()))

		assert.Equal(t, "Please select a vehicle.", s.State().Error)
		assert.Equal(t, int32(0), atomic.LoadInt32(&assignCalls))
	})

	t.Run("success refetches vehicles", func(t *testing.T) {
		var assigned atomic.Bool
		backend := newFakeBackend()
		backend.set("PUT /vehicles/assign-driver", func(w http.ResponseWriter, r *http.Request) {
			assigned.Store(true)
			w.Write([]byte(`{"msg":"Driver assigned successfully"}`))
		})
		backend.set("GET /vehicles", func(w http.ResponseWriter, r *http.Request) {
			if assigned.Load() {
				w.Write([]byte(`[{"_id":"v1","plateNumber":"KAA-001","assignedDriver":{"_id":"d1","name":"Jane","email":"jane@fleet.io"}}]`))
				return
			}
			w.Write([]byte(`[{"_id":"v1","plateNumber":"KAA-001"}]`))
		})

		s := newTestShell(t, backend)
		driverID := "d1"
		s.SetAssignForm(AssignDraft{VehicleID: "v1", DriverID: &driverID})
		require.NoError(t, s.AssignDriver(context.Background()))

		state := s.State()
		assert.Equal(t, "Driver assigned successfully", state.Message)
		assert.Equal(t, AssignDraft{}, state.AssignForm)
		require.Len(t, state.Vehicles, 1)
		require.NotNil(t, state.Vehicles[0].AssignedDriver)
		assert.Equal(t, "Jane", state.Vehicles[0].AssignedDriver.Name)
	})
}

func TestShell_BusyGuard(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	backend := newFakeBackend()
	backend.set("POST /drivers", func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		w.Write([]byte(`{}`))
	})

	s := newTestShell(t, backend)
	done := make(chan error, 1)
	go func() { done <- s.CreateDriver(context.Background()) }()

	<-entered
	assert.ErrorIs(t, s.CreateDriver(context.Background()), ErrBusy)

	close(release)
	require.NoError(t, <-done)
}
