package model

import "github.com/google/uuid"

// Role is the portal a profile belongs to.
type Role string

const (
	RoleDonor    Role = "donor"
	RoleHospital Role = "hospital"
	RoleNGO      Role = "ngo"
	RoleAdmin    Role = "admin"
)

// Profile is the authenticated user a session is bound to.
type Profile struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     Role      `json:"role"`
}

// Hospital is the hospital record owned by a hospital profile.
type Hospital struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Verified bool      `json:"verified"`
}
