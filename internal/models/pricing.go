package models

import "errors"

// TicketType is a pricing tier over a concert's base price.
type TicketType string

const (
	TicketGeneral TicketType = "General"
	TicketVIP     TicketType = "VIP"
	TicketVVIP    TicketType = "VVIP"
)

// ValidTicketType reports whether t is a known pricing tier.
func ValidTicketType(t TicketType) bool {
	switch t {
	case TicketGeneral, TicketVIP, TicketVVIP:
		return true
	}
	return false
}

// TicketPrice derives the per-ticket price in cents from a concert's base
// price and a ticket type. This is the single source of truth for tier
// pricing: General x1, VIP x2, VVIP x3.5 (exact in cents via base*7/2;
// an odd base price rounds the half cent down).
func TicketPrice(basePrice int, ticketType TicketType) int {
	switch ticketType {
	case TicketVIP:
		return basePrice * 2
	case TicketVVIP:
		return basePrice * 7 / 2
	default:
		return basePrice
	}
}

// validateTicketType validates a pricing tier
func validateTicketType(t TicketType) error {
	if !ValidTicketType(t) {
		return errors.New("ticket type must be General, VIP or VVIP")
	}
	return nil
}
