package model

import "time"

// RoleAdmin is the only role in the system; it is assigned at creation
// and never changed.
const RoleAdmin = "admin"

// Admin represents a privileged account able to manage contact messages
type Admin struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
