// internal/core/domain/category.go
package domain

import "time"

// Category groups products in the catalog.
type Category struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the category has been soft deleted.
func (c Category) IsDeleted() bool {
	return c.DeletedAt != nil
}

// WithDetails derives a copy with updated name and description.
func (c Category) WithDetails(name, description string) Category {
	c.Name = name
	c.Description = description
	c.UpdatedAt = time.Now()
	return c
}

// AsDeleted derives a soft-deleted copy.
func (c Category) AsDeleted(at time.Time) Category {
	c.DeletedAt = &at
	c.UpdatedAt = at
	return c
}

// AsRestored derives a copy with the soft-delete mark cleared.
func (c Category) AsRestored() Category {
	c.DeletedAt = nil
	c.UpdatedAt = time.Now()
	return c
}

// Validate returns the list of violated rules.
func (c Category) Validate() []string {
	var violations []string
	if c.Name == "" {
		violations = append(violations, "name is required")
	}
	return violations
}
