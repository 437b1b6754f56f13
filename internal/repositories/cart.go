package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"concert-ticketing-platform/internal/models"
)

// CartRepository handles cart and cart item data operations
type CartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

// GetOrCreate returns the user's cart, creating an empty one on first
// access. The unique constraint on user_id makes this idempotent under
// concurrent requests.
func (r *CartRepository) GetOrCreate(userID int) (*models.Cart, error) {
	cart, err := r.getByUser(userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	query := `
		INSERT INTO carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING`

	if _, err := r.db.Exec(query, userID); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	cart, err = r.getByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart after create: %w", err)
	}

	return cart, nil
}

func (r *CartRepository) getByUser(userID int) (*models.Cart, error) {
	cart := &models.Cart{}
	var updatedAt sql.NullTime
	err := r.db.QueryRow("SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1", userID).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		cart.UpdatedAt = &updatedAt.Time
	}
	return cart, nil
}

// Touch bumps the cart's updated_at timestamp
func (r *CartRepository) Touch(cartID int) error {
	if _, err := r.db.Exec("UPDATE carts SET updated_at = $2 WHERE id = $1", cartID, time.Now()); err != nil {
		return fmt.Errorf("failed to touch cart: %w", err)
	}
	return nil
}

// FindItem looks up a cart line by its (concert, ticket type) key
func (r *CartRepository) FindItem(cartID, concertID int, ticketType models.TicketType) (*models.CartItem, error) {
	query := `
		SELECT id, cart_id, concert_id, ticket_type, quantity, price_per_ticket, added_at
		FROM cart_items
		WHERE cart_id = $1 AND concert_id = $2 AND ticket_type = $3`

	item := &models.CartItem{}
	err := r.db.QueryRow(query, cartID, concertID, ticketType).Scan(
		&item.ID,
		&item.CartID,
		&item.ConcertID,
		&item.TicketType,
		&item.Quantity,
		&item.PricePerTicket,
		&item.AddedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to find cart item: %w", err)
	}

	return item, nil
}

// GetItemForUser looks up a cart line and enforces cart ownership. Items in
// another user's cart surface as not found.
func (r *CartRepository) GetItemForUser(itemID, userID int) (*models.CartItem, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.concert_id, ci.ticket_type, ci.quantity, ci.price_per_ticket, ci.added_at
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		WHERE ci.id = $1 AND c.user_id = $2`

	item := &models.CartItem{}
	err := r.db.QueryRow(query, itemID, userID).Scan(
		&item.ID,
		&item.CartID,
		&item.ConcertID,
		&item.TicketType,
		&item.Quantity,
		&item.PricePerTicket,
		&item.AddedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	return item, nil
}

// InsertItem adds a new line to a cart
func (r *CartRepository) InsertItem(cartID, concertID int, ticketType models.TicketType, quantity, pricePerTicket int) (*models.CartItem, error) {
	query := `
		INSERT INTO cart_items (cart_id, concert_id, ticket_type, quantity, price_per_ticket)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, cart_id, concert_id, ticket_type, quantity, price_per_ticket, added_at`

	item := &models.CartItem{}
	err := r.db.QueryRow(query, cartID, concertID, ticketType, quantity, pricePerTicket).Scan(
		&item.ID,
		&item.CartID,
		&item.ConcertID,
		&item.TicketType,
		&item.Quantity,
		&item.PricePerTicket,
		&item.AddedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cart item: %w", err)
	}

	return item, nil
}

// UpdateItem sets a line's quantity and price snapshot
func (r *CartRepository) UpdateItem(itemID, quantity, pricePerTicket int) error {
	result, err := r.db.Exec("UPDATE cart_items SET quantity = $2, price_per_ticket = $3 WHERE id = $1", itemID, quantity, pricePerTicket)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check cart item update: %w", err)
	}
	if affected == 0 {
		return models.ErrCartItemNotFound
	}

	return nil
}

// DeleteItem removes a line from a cart
func (r *CartRepository) DeleteItem(itemID int) error {
	result, err := r.db.Exec("DELETE FROM cart_items WHERE id = $1", itemID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check cart item deletion: %w", err)
	}
	if affected == 0 {
		return models.ErrCartItemNotFound
	}

	return nil
}

// GetItems returns a cart's lines joined with concert and venue details
func (r *CartRepository) GetItems(cartID int) ([]models.CartItemDetail, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.concert_id, ci.ticket_type, ci.quantity, ci.price_per_ticket, ci.added_at,
		       c.title, c.artist, c.event_date, v.name
		FROM cart_items ci
		JOIN concerts c ON c.id = ci.concert_id
		JOIN venues v ON v.id = c.venue_id
		WHERE ci.cart_id = $1
		ORDER BY ci.added_at ASC`

	rows, err := r.db.Query(query, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	defer rows.Close()

	var items []models.CartItemDetail
	for rows.Next() {
		var item models.CartItemDetail
		err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ConcertID,
			&item.TicketType,
			&item.Quantity,
			&item.PricePerTicket,
			&item.AddedAt,
			&item.ConcertTitle,
			&item.Artist,
			&item.EventDate,
			&item.VenueName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// GetSummary aggregates a cart's lines into totals for display and checkout
func (r *CartRepository) GetSummary(cartID int) (*models.CartSummary, error) {
	items, err := r.GetItems(cartID)
	if err != nil {
		return nil, err
	}

	summary := &models.CartSummary{Items: items}
	for _, item := range items {
		summary.TotalItems += item.Quantity
		summary.TotalAmount += item.Subtotal()
	}

	return summary, nil
}
