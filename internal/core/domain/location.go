// internal/core/domain/location.go
package domain

import "time"

// Location represents a physical stock-keeping site (warehouse, storefront).
type Location struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the location has been soft deleted.
func (l Location) IsDeleted() bool {
	return l.DeletedAt != nil
}

// WithDetails derives a copy with updated address and notes.
func (l Location) WithDetails(address, notes string) Location {
	l.Address = address
	l.Notes = notes
	l.UpdatedAt = time.Now()
	return l
}

// AsDeleted derives a soft-deleted copy.
func (l Location) AsDeleted(at time.Time) Location {
	l.DeletedAt = &at
	l.UpdatedAt = at
	return l
}

// AsRestored derives a copy with the soft-delete mark cleared.
func (l Location) AsRestored() Location {
	l.DeletedAt = nil
	l.UpdatedAt = time.Now()
	return l
}

// Validate returns the list of violated rules.
func (l Location) Validate() []string {
	var violations []string
	if l.Name == "" {
		violations = append(violations, "name is required")
	}
	return violations
}
