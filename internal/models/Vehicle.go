// internal/models/Vehicle.go
package models

import (
	"time"

	"github.com/spf13/cast"
)

// Fuel types and statuses accepted by the backend.
const (
	FuelPetrol   = "petrol"
	FuelDiesel   = "diesel"
	FuelElectric = "electric"
	FuelHybrid   = "hybrid"

	StatusActive      = "active"
	StatusMaintenance = "maintenance"
	StatusInactive    = "inactive"
)

// DriverRef is the resolved driver a vehicle carries. It is a lookup, not an
// embedding: the vehicle never owns the driver record.
type DriverRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Vehicle struct {
	ID          string `json:"_id"`
	PlateNumber string `json:"plateNumber"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	Capacity    int    `json:"capacity"`
	FuelType    string `json:"fuelType"`
	Status      string `json:"status"`

	// At most one assigned driver at a time; nil when unassigned.
	AssignedDriver *DriverRef `json:"assignedDriver,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VehicleDraft is the creation form payload. Status is assigned by the backend.
type VehicleDraft struct {
	PlateNumber string `json:"plateNumber"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	Capacity    int    `json:"capacity"`
	FuelType    string `json:"fuelType"`
}

// VehicleUpdate is the editable field set the vehicle editor submits. The
// validate tags encode the editor's pre-submit rules; platenumber and
// vehicleyear are custom rules registered by the console package.
type VehicleUpdate struct {
	PlateNumber string `json:"plateNumber" validate:"required,platenumber"`
	Make        string `json:"make" validate:"required,min=2"`
	Model       string `json:"model" validate:"required,min=2"`
	Year        int    `json:"year" validate:"required,vehicleyear"`
	Capacity    int    `json:"capacity" validate:"required,gte=1,lte=100"`
	FuelType    string `json:"fuelType" validate:"omitempty,oneof=petrol diesel electric hybrid"`
	Status      string `json:"status" validate:"omitempty,oneof=active maintenance inactive"`
}

// Set assigns one field by its form name, coercing numeric values. It
// reports false for unknown field names.
func (u *VehicleUpdate) Set(field, value string) bool {
	switch field {
	case "plateNumber":
		u.PlateNumber = value
	case "make":
		u.Make = value
	case "model":
		u.Model = value
	case "year":
		u.Year = cast.ToInt(value)
	case "capacity":
		u.Capacity = cast.ToInt(value)
	case "fuelType":
		u.FuelType = value
	case "status":
		u.Status = value
	default:
		return false
	}
	return true
}
