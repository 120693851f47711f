// internal/models/Driver.go
package models

import "time"

type Driver struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"` // unique, enforced by the backend
	Role      string    `json:"role"`  // always "driver"
	CreatedAt time.Time `json:"createdAt"`
}

// DriverDraft is the uncommitted creation form. The backend assigns the id;
// the password is write-only and never echoed back.
type DriverDraft struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
