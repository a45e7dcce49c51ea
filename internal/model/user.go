package model

import "time"

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Capability names a gated operation class. Authorization checks go through
// capabilities instead of comparing role strings in handlers.
type Capability string

const (
	CapManageCatalog Capability = "catalog:write"
	CapAdjustStock   Capability = "stock:adjust"
	CapCreateSale    Capability = "sale:create"
	CapArchiveSale   Capability = "sale:archive"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapManageCatalog: true,
		CapAdjustStock:   true,
		CapCreateSale:    true,
		CapArchiveSale:   true,
	},
	RoleStaff: {
		CapCreateSale: true,
	},
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Can reports whether the role grants the capability.
func (r Role) Can(cap Capability) bool {
	return roleCapabilities[r][cap]
}

// User represents the user model stored in the database
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"type:varchar(80);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'staff'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
