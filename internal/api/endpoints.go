package api

import (
	"context"
	"net/url"

	"fleet_console/internal/models"
)

// Response shapes are fixed per endpoint and parsed here, at the client
// boundary; call sites never inspect raw JSON.

type msgResponse struct {
	Msg string `json:"msg"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login authenticates against the backend and returns the user plus the
// bearer token the session store should persist.
func (c *Client) Login(ctx context.Context, email, password string) (models.User, string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}
	var out loginResponse
	if err := c.Post(ctx, "/auth/login", body, &out); err != nil {
		return models.User{}, "", err
	}
	return out.User, out.Token, nil
}

// ListDrivers fetches all drivers. The backend wraps this collection in a
// {drivers: [...]} envelope, unlike the other three.
func (c *Client) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	var out struct {
		Drivers []models.Driver `json:"drivers"`
	}
	if err := c.Get(ctx, "/drivers", &out); err != nil {
		return nil, err
	}
	return out.Drivers, nil
}

func (c *Client) CreateDriver(ctx context.Context, draft models.DriverDraft) (string, error) {
	var out msgResponse
	if err := c.Post(ctx, "/drivers", draft, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}

func (c *Client) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var out []models.Vehicle
	if err := c.Get(ctx, "/vehicles", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateVehicle(ctx context.Context, draft models.VehicleDraft) (string, error) {
	var out msgResponse
	if err := c.Post(ctx, "/vehicles", draft, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}

func (c *Client) GetVehicle(ctx context.Context, id string) (models.Vehicle, error) {
	var out models.Vehicle
	if err := c.Get(ctx, "/vehicles/"+url.PathEscape(id), &out); err != nil {
		return models.Vehicle{}, err
	}
	return out, nil
}

func (c *Client) UpdateVehicle(ctx context.Context, id string, update models.VehicleUpdate) (string, error) {
	var out msgResponse
	if err := c.Put(ctx, "/vehicles/"+url.PathEscape(id), update, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}

// AssignDriver links a driver to a vehicle; a nil driverID unassigns
// (serialized as an explicit JSON null).
func (c *Client) AssignDriver(ctx context.Context, vehicleID string, driverID *string) (string, error) {
	body := struct {
		VehicleID string  `json:"vehicleId"`
		DriverID  *string `json:"driverId"`
	}{vehicleID, driverID}
	var out msgResponse
	if err := c.Put(ctx, "/vehicles/assign-driver", body, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}

func (c *Client) ListRoutes(ctx context.Context) ([]models.Route, error) {
	var out []models.Route
	if err := c.Get(ctx, "/routes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateRoute(ctx context.Context, draft models.RouteDraft) (string, error) {
	var out msgResponse
	if err := c.Post(ctx, "/routes", draft, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}

func (c *Client) ListTrips(ctx context.Context) ([]models.Trip, error) {
	var out []models.Trip
	if err := c.Get(ctx, "/trips", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTrip(ctx context.Context, draft models.TripDraft) (string, error) {
	var out msgResponse
	if err := c.Post(ctx, "/trips", draft, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}
