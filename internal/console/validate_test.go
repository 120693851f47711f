package console

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fleet_console/internal/models"
)

func validUpdate() models.VehicleUpdate {
	return models.VehicleUpdate{
		PlateNumber: "KAA-001",
		Make:        "Toyota",
		Model:       "Hiace",
		Year:        2020,
		Capacity:    14,
		FuelType:    models.FuelDiesel,
		Status:      models.StatusActive,
	}
}

func TestValidateVehicleUpdate(t *testing.T) {
	maxYear := time.Now().Year() + 1

	tests := []struct {
		name    string
		mutate  func(*models.VehicleUpdate)
		field   string
		message string
	}{
		{"valid form", func(u *models.VehicleUpdate) {}, "", ""},
		{"plate with spaces and dash", func(u *models.VehicleUpdate) { u.PlateNumber = "KAA 001-A" }, "", ""},
		{"next model year", func(u *models.VehicleUpdate) { u.Year = maxYear }, "", ""},
		{"capacity bounds", func(u *models.VehicleUpdate) { u.Capacity = 100 }, "", ""},

		{"missing plate", func(u *models.VehicleUpdate) { u.PlateNumber = "" }, "plateNumber", "Plate number is required"},
		{"plate too short", func(u *models.VehicleUpdate) { u.PlateNumber = "AB" }, "plateNumber", "Invalid plate number format"},
		{"plate too long", func(u *models.VehicleUpdate) { u.PlateNumber = "ABCDEFGH12345678" }, "plateNumber", "Invalid plate number format"},
		{"plate bad characters", func(u *models.VehicleUpdate) { u.PlateNumber = "KAA_001!" }, "plateNumber", "Invalid plate number format"},

		{"missing make", func(u *models.VehicleUpdate) { u.Make = "" }, "make", "Make is required"},
		{"make too short", func(u *models.VehicleUpdate) { u.Make = "T" }, "make", "Make must be at least 2 characters"},
		{"missing model", func(u *models.VehicleUpdate) { u.Model = "" }, "model", "Model is required"},
		{"model too short", func(u *models.VehicleUpdate) { u.Model = "H" }, "model", "Model must be at least 2 characters"},

		{"year too old", func(u *models.VehicleUpdate) { u.Year = 1899 }, "year", fmt.Sprintf("Year must be between 1900 and %d", maxYear)},
		{"year too new", func(u *models.VehicleUpdate) { u.Year = maxYear + 1 }, "year", fmt.Sprintf("Year must be between 1900 and %d", maxYear)},

		{"capacity zero", func(u *models.VehicleUpdate) { u.Capacity = 0 }, "capacity", "Capacity must be between 1 and 100"},
		{"capacity too large", func(u *models.VehicleUpdate) { u.Capacity = 101 }, "capacity", "Capacity must be between 1 and 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validUpdate()
			tt.mutate(&form)
			errs := ValidateVehicleUpdate(form)
			if tt.field == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestValidateVehicleUpdate_CollectsAllErrors(t *testing.T) {
	errs := ValidateVehicleUpdate(models.VehicleUpdate{})
	assert.Contains(t, errs, "plateNumber")
	assert.Contains(t, errs, "make")
	assert.Contains(t, errs, "model")
	assert.Contains(t, errs, "year")
	assert.Contains(t, errs, "capacity")
}
