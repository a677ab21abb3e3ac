package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Capabilities is the advisory permission set derived from a session. Route
// middleware remains the actual enforcement point; this only drives what the
// dashboard offers.
type Capabilities struct {
	CanManageAllShipments bool `json:"can_manage_all_shipments"`
	CanViewAllShipments   bool `json:"can_view_all_shipments"`
}
