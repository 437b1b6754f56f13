package models

import (
	"strings"
	"time"
)

// Concert represents a ticketed event tied to one venue
type Concert struct {
	ID               int        `json:"id" db:"id"`
	Title            string     `json:"title" db:"title"`
	Description      string     `json:"description" db:"description"`
	Artist           string     `json:"artist" db:"artist"`
	Genre            string     `json:"genre" db:"genre"`
	EventDate        time.Time  `json:"event_date" db:"event_date"`
	BasePrice        int        `json:"base_price" db:"base_price"` // Price in cents
	AvailableTickets int        `json:"available_tickets" db:"available_tickets"`
	TotalTickets     int        `json:"total_tickets" db:"total_tickets"`
	IsActive         bool       `json:"is_active" db:"is_active"`
	VenueID          int        `json:"venue_id" db:"venue_id"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty" db:"updated_at"`

	// Related data, populated by query-time joins
	Venue *Venue `json:"venue,omitempty"`
}

// ConcertCreateRequest represents the data needed to create a new concert
type ConcertCreateRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Artist       string    `json:"artist"`
	Genre        string    `json:"genre"`
	EventDate    time.Time `json:"event_date"`
	BasePrice    int       `json:"base_price"`
	TotalTickets int       `json:"total_tickets"`
	VenueID      int       `json:"venue_id"`
	IsActive     bool      `json:"is_active"`
}

// ConcertUpdateRequest represents the data that can be updated for a concert
type ConcertUpdateRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Artist       string    `json:"artist"`
	Genre        string    `json:"genre"`
	EventDate    time.Time `json:"event_date"`
	BasePrice    int       `json:"base_price"`
	TotalTickets int       `json:"total_tickets"`
	VenueID      int       `json:"venue_id"`
	IsActive     bool      `json:"is_active"`
}

// Validate validates concert creation data
func (req *ConcertCreateRequest) Validate() error {
	return validateConcertFields(req.Title, req.Artist, req.Genre, req.EventDate, req.BasePrice, req.TotalTickets, req.VenueID)
}

// Validate validates concert update data
func (req *ConcertUpdateRequest) Validate() error {
	return validateConcertFields(req.Title, req.Artist, req.Genre, req.EventDate, req.BasePrice, req.TotalTickets, req.VenueID)
}

func validateConcertFields(title, artist, genre string, eventDate time.Time, basePrice, totalTickets, venueID int) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "concert title is required")
	}

	if len(title) > 200 {
		return NewValidationError("title", "concert title must be less than 200 characters")
	}

	if strings.TrimSpace(artist) == "" {
		return NewValidationError("artist", "concert artist is required")
	}

	if strings.TrimSpace(genre) == "" {
		return NewValidationError("genre", "concert genre is required")
	}

	if eventDate.IsZero() {
		return NewValidationError("event_date", "concert event date is required")
	}

	if basePrice <= 0 {
		return NewValidationError("base_price", "base price must be positive")
	}

	// Maximum base price of $10,000 (1,000,000 cents)
	if basePrice > 1000000 {
		return NewValidationError("base_price", "base price cannot exceed $10,000")
	}

	if totalTickets < 0 {
		return NewValidationError("total_tickets", "total tickets cannot be negative")
	}

	if venueID <= 0 {
		return NewValidationError("venue_id", "venue is required")
	}

	return nil
}

// HasAvailability returns true if at least quantity tickets remain
func (c *Concert) HasAvailability(quantity int) bool {
	return c.AvailableTickets >= quantity
}

// IsSoldOut returns true if no tickets remain
func (c *Concert) IsSoldOut() bool {
	return c.AvailableTickets <= 0
}

// BasePriceInCurrency returns the base price in the main currency as a float
func (c *Concert) BasePriceInCurrency() float64 {
	return float64(c.BasePrice) / 100.0
}
