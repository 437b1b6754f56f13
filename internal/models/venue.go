package models

import (
	"strings"
	"time"
)

// Venue represents a concert venue
type Venue struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Address     string    `json:"address" db:"address"`
	City        string    `json:"city" db:"city"`
	State       string    `json:"state" db:"state"`
	PostalCode  string    `json:"postal_code" db:"postal_code"`
	Country     string    `json:"country" db:"country"`
	Capacity    int       `json:"capacity" db:"capacity"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// VenueCreateRequest represents the data needed to create a new venue
type VenueCreateRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
	Capacity    int    `json:"capacity"`
	PhoneNumber string `json:"phone_number"`
}

// VenueUpdateRequest represents the data that can be updated for a venue
type VenueUpdateRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
	Capacity    int    `json:"capacity"`
	PhoneNumber string `json:"phone_number"`
	IsActive    bool   `json:"is_active"`
}

// Validate validates venue creation data
func (req *VenueCreateRequest) Validate() error {
	return validateVenueFields(req.Name, req.Address, req.City, req.State, req.Capacity)
}

// Validate validates venue update data
func (req *VenueUpdateRequest) Validate() error {
	return validateVenueFields(req.Name, req.Address, req.City, req.State, req.Capacity)
}

func validateVenueFields(name, address, city, state string, capacity int) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name", "venue name is required")
	}

	if len(name) > 200 {
		return NewValidationError("name", "venue name must be less than 200 characters")
	}

	if strings.TrimSpace(address) == "" {
		return NewValidationError("address", "venue address is required")
	}

	if strings.TrimSpace(city) == "" {
		return NewValidationError("city", "venue city is required")
	}

	if strings.TrimSpace(state) == "" {
		return NewValidationError("state", "venue state is required")
	}

	if capacity <= 0 {
		return NewValidationError("capacity", "venue capacity must be positive")
	}

	return nil
}
