package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"concert-ticketing-platform/internal/models"
)

// TicketRepository handles ticket data operations
type TicketRepository struct {
	db *sql.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

const ticketDetailColumns = `t.id, t.ticket_number, t.order_id, t.concert_id, t.ticket_type, t.price, t.status, t.qr_code, t.purchase_date,
		c.title, c.artist, c.event_date, v.name, o.order_number`

func scanTicketDetail(row interface{ Scan(...interface{}) error }) (*models.TicketDetail, error) {
	ticket := &models.TicketDetail{}
	err := row.Scan(
		&ticket.ID,
		&ticket.TicketNumber,
		&ticket.OrderID,
		&ticket.ConcertID,
		&ticket.TicketType,
		&ticket.Price,
		&ticket.Status,
		&ticket.QRCode,
		&ticket.PurchaseDate,
		&ticket.ConcertTitle,
		&ticket.Artist,
		&ticket.EventDate,
		&ticket.VenueName,
		&ticket.OrderNumber,
	)
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// GetByOrder returns an order's tickets joined with concert and venue details
func (r *TicketRepository) GetByOrder(orderID int) ([]*models.TicketDetail, error) {
	query := `
		SELECT ` + ticketDetailColumns + `
		FROM tickets t
		JOIN concerts c ON c.id = t.concert_id
		JOIN venues v ON v.id = c.venue_id
		JOIN orders o ON o.id = t.order_id
		WHERE t.order_id = $1
		ORDER BY t.id ASC`

	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*models.TicketDetail
	for rows.Next() {
		ticket, err := scanTicketDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}

// ListByUser returns a user's tickets across all orders, newest first
func (r *TicketRepository) ListByUser(userID int) ([]*models.TicketDetail, error) {
	query := `
		SELECT ` + ticketDetailColumns + `
		FROM tickets t
		JOIN concerts c ON c.id = t.concert_id
		JOIN venues v ON v.id = c.venue_id
		JOIN orders o ON o.id = t.order_id
		WHERE o.user_id = $1
		ORDER BY t.purchase_date DESC, t.id DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*models.TicketDetail
	for rows.Next() {
		ticket, err := scanTicketDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}

// GetByIDForUser retrieves a ticket by ID, enforcing order ownership
func (r *TicketRepository) GetByIDForUser(id, userID int) (*models.TicketDetail, error) {
	query := `
		SELECT ` + ticketDetailColumns + `
		FROM tickets t
		JOIN concerts c ON c.id = t.concert_id
		JOIN venues v ON v.id = c.venue_id
		JOIN orders o ON o.id = t.order_id
		WHERE t.id = $1 AND o.user_id = $2`

	ticket, err := scanTicketDetail(r.db.QueryRow(query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return ticket, nil
}
