package models

import (
	"errors"
	"time"
)

// MaxCartItemQuantity caps the units of one (concert, ticket type) line.
const MaxCartItemQuantity = 10

// Cart represents a user's shopping cart. Each user owns exactly one cart,
// created lazily on first access.
type Cart struct {
	ID        int        `json:"id" db:"id"`
	UserID    int        `json:"user_id" db:"user_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// CartItem represents one line in a cart: a quantity of one ticket type for
// one concert, with the per-ticket price snapshotted at add time.
type CartItem struct {
	ID             int        `json:"id" db:"id"`
	CartID         int        `json:"cart_id" db:"cart_id"`
	ConcertID      int        `json:"concert_id" db:"concert_id"`
	TicketType     TicketType `json:"ticket_type" db:"ticket_type"`
	Quantity       int        `json:"quantity" db:"quantity"`
	PricePerTicket int        `json:"price_per_ticket" db:"price_per_ticket"` // in cents
	AddedAt        time.Time  `json:"added_at" db:"added_at"`
}

// Subtotal returns the line total in cents
func (ci *CartItem) Subtotal() int {
	return ci.Quantity * ci.PricePerTicket
}

// CartItemDetail is a cart line joined with its concert and venue for display
type CartItemDetail struct {
	CartItem
	ConcertTitle string    `json:"concert_title"`
	Artist       string    `json:"artist"`
	EventDate    time.Time `json:"event_date"`
	VenueName    string    `json:"venue_name"`
}

// CartSummary aggregates a cart's lines for display and checkout
type CartSummary struct {
	TotalItems  int              `json:"total_items"`
	TotalAmount int              `json:"total_amount"` // in cents
	Items       []CartItemDetail `json:"items"`
}

// ValidateQuantity validates a cart line quantity
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return errors.New("quantity must be at least 1")
	}

	if quantity > MaxCartItemQuantity {
		return errors.New("quantity cannot exceed 10 tickets per line")
	}

	return nil
}
