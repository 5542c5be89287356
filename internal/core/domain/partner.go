// internal/core/domain/partner.go
package domain

import (
	"net/mail"
	"time"
)

// Supplier represents a purchasing counterparty.
type Supplier struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	ContactName string     `json:"contact_name,omitempty"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the supplier has been soft deleted.
func (s Supplier) IsDeleted() bool {
	return s.DeletedAt != nil
}

// WithContact derives a copy with updated contact details.
func (s Supplier) WithContact(contactName, email, phone, address string) Supplier {
	s.ContactName = contactName
	s.Email = email
	s.Phone = phone
	s.Address = address
	s.UpdatedAt = time.Now()
	return s
}

// AsDeleted derives a soft-deleted copy.
func (s Supplier) AsDeleted(at time.Time) Supplier {
	s.DeletedAt = &at
	s.UpdatedAt = at
	return s
}

// AsRestored derives a copy with the soft-delete mark cleared.
func (s Supplier) AsRestored() Supplier {
	s.DeletedAt = nil
	s.UpdatedAt = time.Now()
	return s
}

// Validate returns the list of violated rules.
func (s Supplier) Validate() []string {
	var violations []string
	if s.Name == "" {
		violations = append(violations, "name is required")
	}
	if s.Email != "" {
		if _, err := mail.ParseAddress(s.Email); err != nil {
			violations = append(violations, "email is not a valid address")
		}
	}
	return violations
}

// Customer represents a sales counterparty.
type Customer struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the customer has been soft deleted.
func (c Customer) IsDeleted() bool {
	return c.DeletedAt != nil
}

// WithContact derives a copy with updated contact details.
func (c Customer) WithContact(email, phone, address string) Customer {
	c.Email = email
	c.Phone = phone
	c.Address = address
	c.UpdatedAt = time.Now()
	return c
}

// AsDeleted derives a soft-deleted copy.
func (c Customer) AsDeleted(at time.Time) Customer {
	c.DeletedAt = &at
	c.UpdatedAt = at
	return c
}

// AsRestored derives a copy with the soft-delete mark cleared.
func (c Customer) AsRestored() Customer {
	c.DeletedAt = nil
	c.UpdatedAt = time.Now()
	return c
}

// Validate returns the list of violated rules.
func (c Customer) Validate() []string {
	var violations []string
	if c.Name == "" {
		violations = append(violations, "name is required")
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			violations = append(violations, "email is not a valid address")
		}
	}
	return violations
}
