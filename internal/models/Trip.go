// internal/models/Trip.go
package models

import "encoding/json"

// Trip statuses. New trips start out "scheduled".
const (
	TripScheduled  = "scheduled"
	TripAccepted   = "accepted"
	TripInProgress = "in_progress"
	TripCompleted  = "completed"
	TripRejected   = "rejected"
)

// Ref is a weak reference to another record. The backend returns it either as
// the bare id string or as the resolved record; both shapes decode here.
// Marshaling always emits the bare id.
type Ref struct {
	ID   string
	Name string
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Name = ""
		return nil
	}

	var obj struct {
		ID          string `json:"_id"`
		Name        string `json:"name"`
		PlateNumber string `json:"plateNumber"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.ID = obj.ID
	r.Name = obj.Name
	if r.Name == "" {
		r.Name = obj.PlateNumber
	}
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// Display returns the resolved name when the backend populated the reference,
// falling back to the raw id.
func (r Ref) Display() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

type Trip struct {
	ID                 string `json:"_id"`
	Driver             Ref    `json:"driverId"`
	Vehicle            Ref    `json:"vehicleId"`
	Route              Ref    `json:"routeId"`
	ScheduledStartTime string `json:"scheduledStartTime"`
	ScheduledEndTime   string `json:"scheduledEndTime"`
	PassengerCount     int    `json:"passengerCount"`
	Status             string `json:"status"`
}

// StatusClass maps the trip status onto one of the five display categories.
// Unknown statuses fall back to the scheduled treatment.
func (t Trip) StatusClass() string {
	switch t.Status {
	case TripAccepted, TripInProgress, TripCompleted, TripRejected:
		return t.Status
	default:
		return TripScheduled
	}
}

// TripDraft is the scheduling form. Times are datetime-local strings passed
// through verbatim; passenger count is optional.
type TripDraft struct {
	DriverID           string `json:"driverId"`
	VehicleID          string `json:"vehicleId"`
	RouteID            string `json:"routeId"`
	ScheduledStartTime string `json:"scheduledStartTime"`
	ScheduledEndTime   string `json:"scheduledEndTime"`
	PassengerCount     int    `json:"passengerCount,omitempty"`
}
