// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core account entity. It holds credentials and the role used for
// authorization decisions; everything shipping-related lives on Profile.
type User struct {
	ID             int64     `json:"id"`       // Storage-assigned identifier.
	Username       string    `json:"username"` // Login identifier, unique.
	HashedPassword string    `json:"-"`        // bcrypt hash, never serialized.
	Role           Role      `json:"role"`     // Authorization role.
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
