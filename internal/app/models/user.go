package models

import (
	"time"
)

// User defines the account model based on the 'users' table.
// Every admitted student owns exactly one user row; staff accounts share the table.
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                // Unique identifier for the account
	Username    string     `json:"username" db:"username" example:"alice1234"`            // Unique login name
	Email       string     `json:"email" db:"email" example:"alice@example.com"`          // Account email address (unique)
	Password    string     `json:"-" db:"password"`                                       // Hashed password (excluded from JSON)
	Role        RoleType   `json:"role" db:"role" example:"STUDENT"`                      // Account role
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`                // Whether the account is active
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`                             // Timestamp when the account was created
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`                             // Timestamp when the account was last updated
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`              // Timestamp of the last login (nullable)
}
