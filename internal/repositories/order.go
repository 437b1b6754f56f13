package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"concert-ticketing-platform/internal/models"
)

// OrderRepository handles order data operations
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// OrderCreateData carries the snapshot fields for a new order. OrderNumber
// is supplied by the caller because ticket QR payloads encode it; on a
// collision the create fails with ErrDuplicateEntry so the caller can retry
// with a fresh number.
type OrderCreateData struct {
	OrderNumber string
	UserID      int
	Checkout    models.CheckoutRequest
	TotalAmount int // in cents
	Quantity    int
}

// TicketSpec describes one ticket row to issue with an order
type TicketSpec struct {
	ConcertID    int
	TicketType   models.TicketType
	Price        int // in cents
	TicketNumber string
	QRCode       string
}

const orderColumns = `id, order_number, user_id, customer_name, customer_email, customer_phone,
		billing_address, city, state, postal_code, total_amount, quantity,
		payment_status, payment_method, transaction_id, payment_date, order_date`

func scanOrder(row interface{ Scan(...interface{}) error }) (*models.Order, error) {
	order := &models.Order{}
	var transactionID sql.NullString
	var paymentDate sql.NullTime

	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.UserID,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.BillingAddress,
		&order.City,
		&order.State,
		&order.PostalCode,
		&order.TotalAmount,
		&order.Quantity,
		&order.PaymentStatus,
		&order.PaymentMethod,
		&transactionID,
		&paymentDate,
		&order.OrderDate,
	)
	if err != nil {
		return nil, err
	}

	order.TransactionID = transactionID.String
	if paymentDate.Valid {
		order.PaymentDate = &paymentDate.Time
	}

	return order, nil
}

// CreateWithTickets performs the checkout persistence as one transaction:
// insert the order in pending status, issue every ticket row, conditionally
// decrement each concert's availability, and clear the cart's items. The
// decrement is guarded by available_tickets >= quantity so two checkouts
// racing on the same concert cannot oversell; the losing transaction rolls
// back with ErrInsufficientInventory.
func (r *OrderRepository) CreateWithTickets(cartID int, data OrderCreateData, tickets []TicketSpec) (*models.Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM orders WHERE order_number = $1)", data.OrderNumber).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check order number uniqueness: %w", err)
	}
	if exists {
		return nil, models.ErrDuplicateEntry
	}

	insertOrder := `
		INSERT INTO orders (order_number, user_id, customer_name, customer_email, customer_phone,
			billing_address, city, state, postal_code, total_amount, quantity, payment_status, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + orderColumns

	co := data.Checkout
	order, err := scanOrder(tx.QueryRow(
		insertOrder,
		data.OrderNumber,
		data.UserID,
		co.CustomerName,
		co.CustomerEmail,
		co.CustomerPhone,
		co.BillingAddress,
		co.City,
		co.State,
		co.PostalCode,
		data.TotalAmount,
		data.Quantity,
		models.PaymentPending,
		co.PaymentMethod,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	insertTicket := `
		INSERT INTO tickets (ticket_number, order_id, concert_id, ticket_type, price, status, qr_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	decrements := make(map[int]int)
	for _, spec := range tickets {
		if _, err := tx.Exec(insertTicket, spec.TicketNumber, order.ID, spec.ConcertID, spec.TicketType, spec.Price, models.TicketSold, spec.QRCode); err != nil {
			return nil, fmt.Errorf("failed to create ticket %s: %w", spec.TicketNumber, err)
		}
		decrements[spec.ConcertID]++
	}

	// Guarded decrement: refuse the whole checkout when any concert lacks
	// availability rather than overselling.
	decrementQuery := `
		UPDATE concerts
		SET available_tickets = available_tickets - $2, updated_at = $3
		WHERE id = $1 AND available_tickets >= $2`

	now := time.Now()
	for concertID, quantity := range decrements {
		result, err := tx.Exec(decrementQuery, concertID, quantity, now)
		if err != nil {
			return nil, fmt.Errorf("failed to decrement inventory for concert %d: %w", concertID, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to check inventory decrement: %w", err)
		}
		if affected == 0 {
			return nil, models.ErrInsufficientInventory
		}
	}

	if _, err := tx.Exec("DELETE FROM cart_items WHERE cart_id = $1", cartID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit checkout: %w", err)
	}

	return order, nil
}

// MarkCompleted settles an order after successful payment
func (r *OrderRepository) MarkCompleted(orderID int, transactionID string, settledAt time.Time) error {
	query := `
		UPDATE orders
		SET payment_status = $2, transaction_id = $3, payment_date = $4
		WHERE id = $1 AND payment_status = $5`

	result, err := r.db.Exec(query, orderID, models.PaymentCompleted, transactionID, settledAt, models.PaymentPending)
	if err != nil {
		return fmt.Errorf("failed to mark order completed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check order completion: %w", err)
	}
	if affected == 0 {
		return models.ErrOrderNotFound
	}

	return nil
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(id int) (*models.Order, error) {
	order, err := scanOrder(r.db.QueryRow("SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

// GetByIDForUser retrieves an order by ID, enforcing ownership. Orders that
// belong to another user surface as not found.
func (r *OrderRepository) GetByIDForUser(id, userID int) (*models.Order, error) {
	order, err := scanOrder(r.db.QueryRow("SELECT "+orderColumns+" FROM orders WHERE id = $1 AND user_id = $2", id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

// ListByUser returns a user's orders, newest first
func (r *OrderRepository) ListByUser(userID int) ([]*models.Order, error) {
	rows, err := r.db.Query("SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY order_date DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}
