package models

// User is the authenticated account the backend returns at login.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // "admin", "driver"
}
