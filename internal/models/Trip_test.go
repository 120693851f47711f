package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_UnmarshalJSON(t *testing.T) {
	t.Run("bare id string", func(t *testing.T) {
		var r Ref
		require.NoError(t, json.Unmarshal([]byte(`"d1"`), &r))
		assert.Equal(t, "d1", r.ID)
		assert.Empty(t, r.Name)
		assert.Equal(t, "d1", r.Display())
	})

	t.Run("resolved record", func(t *testing.T) {
		var r Ref
		require.NoError(t, json.Unmarshal([]byte(`{"_id":"d1","name":"Jane"}`), &r))
		assert.Equal(t, "d1", r.ID)
		assert.Equal(t, "Jane", r.Display())
	})

	t.Run("resolved vehicle falls back to plate", func(t *testing.T) {
		var r Ref
		require.NoError(t, json.Unmarshal([]byte(`{"_id":"v1","plateNumber":"KAA-001"}`), &r))
		assert.Equal(t, "KAA-001", r.Display())
	})

	t.Run("marshals to the bare id", func(t *testing.T) {
		data, err := json.Marshal(Ref{ID: "d1", Name: "Jane"})
		require.NoError(t, err)
		assert.Equal(t, `"d1"`, string(data))
	})
}

func TestTrip_Decode(t *testing.T) {
	payload := `{
		"_id": "t1",
		"driverId": {"_id": "d1", "name": "Jane"},
		"vehicleId": "v1",
		"routeId": {"_id": "r1", "name": "CBD Express"},
		"scheduledStartTime": "2026-09-01T08:00",
		"scheduledEndTime": "2026-09-01T09:00",
		"passengerCount": 12,
		"status": "accepted"
	}`

	var trip Trip
	require.NoError(t, json.Unmarshal([]byte(payload), &trip))
	assert.Equal(t, "Jane", trip.Driver.Display())
	assert.Equal(t, "v1", trip.Vehicle.Display())
	assert.Equal(t, "CBD Express", trip.Route.Display())
	assert.Equal(t, 12, trip.PassengerCount)
}

func TestTrip_StatusClass(t *testing.T) {
	tests := []struct {
		status string
		class  string
	}{
		{TripScheduled, TripScheduled},
		{TripAccepted, TripAccepted},
		{TripInProgress, TripInProgress},
		{TripCompleted, TripCompleted},
		{TripRejected, TripRejected},
		{"weird", TripScheduled},
		{"", TripScheduled},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.class, Trip{Status: tt.status}.StatusClass())
	}
}
