// internal/core/domain/user.go
package domain

import (
	"net/mail"
	"time"
)

// UserRole represents the access level of a user account.
type UserRole string

// Role constants
const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleClerk   UserRole = "clerk"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleClerk:
		return true
	}
	return false
}

// User represents an application user account. Updates are expressed as
// copy-with derivations; shared instances are never mutated in place.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	Role         UserRole   `json:"role"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the user has been soft deleted.
func (u User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// WithProfile derives a copy with updated profile fields.
func (u User) WithProfile(email, fullName string) User {
	u.Email = email
	u.FullName = fullName
	u.UpdatedAt = time.Now()
	return u
}

// WithRole derives a copy with a changed role.
func (u User) WithRole(role UserRole) User {
	u.Role = role
	u.UpdatedAt = time.Now()
	return u
}

// WithPasswordHash derives a copy with a replaced credential hash.
func (u User) WithPasswordHash(hash string) User {
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	return u
}

// AsDeleted derives a soft-deleted copy.
func (u User) AsDeleted(at time.Time) User {
	u.DeletedAt = &at
	u.UpdatedAt = at
	return u
}

// AsRestored derives a copy with the soft-delete mark cleared.
func (u User) AsRestored() User {
	u.DeletedAt = nil
	u.UpdatedAt = time.Now()
	return u
}

// Validate returns the list of violated rules, empty when the user is valid.
func (u User) Validate() []string {
	var violations []string
	if u.Username == "" {
		violations = append(violations, "username is required")
	}
	if u.Email == "" {
		violations = append(violations, "email is required")
	} else if _, err := mail.ParseAddress(u.Email); err != nil {
		violations = append(violations, "email is not a valid address")
	}
	if u.FullName == "" {
		violations = append(violations, "full_name is required")
	}
	if !ValidRole(u.Role) {
		violations = append(violations, "role must be one of admin, manager, clerk")
	}
	return violations
}
