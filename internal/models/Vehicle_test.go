package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleUpdate_Set(t *testing.T) {
	var u VehicleUpdate

	assert.True(t, u.Set("plateNumber", "KAA-001"))
	assert.True(t, u.Set("make", "Toyota"))
	assert.True(t, u.Set("model", "Hiace"))
	assert.True(t, u.Set("year", "2020"))
	assert.True(t, u.Set("capacity", "14"))
	assert.True(t, u.Set("fuelType", FuelDiesel))
	assert.True(t, u.Set("status", StatusMaintenance))

	assert.Equal(t, VehicleUpdate{
		PlateNumber: "KAA-001",
		Make:        "Toyota",
		Model:       "Hiace",
		Year:        2020,
		Capacity:    14,
		FuelType:    FuelDiesel,
		Status:      StatusMaintenance,
	}, u)

	t.Run("unknown field", func(t *testing.T) {
		assert.False(t, u.Set("color", "red"))
	})

	t.Run("non-numeric year coerces to zero", func(t *testing.T) {
		assert.True(t, u.Set("year", "abc"))
		assert.Zero(t, u.Year)
	})
}

func TestVehicle_Decode(t *testing.T) {
	payload := `{
		"_id": "v1",
		"plateNumber": "KAA-001",
		"make": "Toyota",
		"model": "Hiace",
		"year": 2020,
		"capacity": 14,
		"fuelType": "diesel",
		"status": "active",
		"assignedDriver": {"_id": "d1", "name": "Jane", "email": "jane@fleet.io"},
		"createdAt": "2026-01-15T10:00:00Z",
		"updatedAt": "2026-02-01T12:30:00Z"
	}`

	var v Vehicle
	require.NoError(t, json.Unmarshal([]byte(payload), &v))
	assert.Equal(t, "v1", v.ID)
	require.NotNil(t, v.AssignedDriver)
	assert.Equal(t, "Jane", v.AssignedDriver.Name)
	assert.Equal(t, 2026, v.CreatedAt.Year())

	t.Run("unassigned", func(t *testing.T) {
		var v Vehicle
		require.NoError(t, json.Unmarshal([]byte(`{"_id":"v2","plateNumber":"KBB-002"}`), &v))
		assert.Nil(t, v.AssignedDriver)
	})
}
