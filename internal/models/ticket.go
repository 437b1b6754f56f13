package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TicketStatus represents the status of an individual ticket
type TicketStatus string

const (
	TicketSold      TicketStatus = "sold"
	TicketUsed      TicketStatus = "used"
	TicketCancelled TicketStatus = "cancelled"
)

// Ticket represents one individually numbered unit of admission. An order
// for quantity N of one cart line yields N ticket rows.
type Ticket struct {
	ID           int          `json:"id" db:"id"`
	TicketNumber string       `json:"ticket_number" db:"ticket_number"`
	OrderID      int          `json:"order_id" db:"order_id"`
	ConcertID    int          `json:"concert_id" db:"concert_id"`
	TicketType   TicketType   `json:"ticket_type" db:"ticket_type"`
	Price        int          `json:"price" db:"price"` // in cents
	Status       TicketStatus `json:"status" db:"status"`
	QRCode       string       `json:"qr_code" db:"qr_code"`
	PurchaseDate time.Time    `json:"purchase_date" db:"purchase_date"`

	// Related data, populated by query-time joins
	Concert *Concert `json:"concert,omitempty"`
}

// TicketDetail is a ticket joined with its concert and venue for display
type TicketDetail struct {
	Ticket
	ConcertTitle string    `json:"concert_title"`
	Artist       string    `json:"artist"`
	EventDate    time.Time `json:"event_date"`
	VenueName    string    `json:"venue_name"`
	OrderNumber  string    `json:"order_number"`
}

// GenerateTicketNumber generates a unique ticket number
// (format: TKT-YYYYMMDD-XXXXXXXX)
func GenerateTicketNumber() string {
	dateStr := time.Now().Format("20060102")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("TKT-%s-%s", dateStr, suffix)
}

// GenerateQRPayload builds the QR payload for a ticket, encoding the order
// number and the ticket's 1-based sequence index within the order.
func GenerateQRPayload(orderNumber string, sequence int) string {
	return fmt.Sprintf("QR-%s-%03d", orderNumber, sequence)
}
