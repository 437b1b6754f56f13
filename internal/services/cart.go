package services

import (
	"errors"
	"fmt"

	"concert-ticketing-platform/internal/models"
)

// CartStore is the cart service's persistence interface
type CartStore interface {
	GetOrCreate(userID int) (*models.Cart, error)
	Touch(cartID int) error
	FindItem(cartID, concertID int, ticketType models.TicketType) (*models.CartItem, error)
	GetItemForUser(itemID, userID int) (*models.CartItem, error)
	InsertItem(cartID, concertID int, ticketType models.TicketType, quantity, pricePerTicket int) (*models.CartItem, error)
	UpdateItem(itemID, quantity, pricePerTicket int) error
	DeleteItem(itemID int) error
	GetSummary(cartID int) (*models.CartSummary, error)
}

// ConcertReader provides the live concert lookups the cart needs
type ConcertReader interface {
	GetByID(id int) (*models.Concert, error)
}

// CartService handles shopping cart business logic
type CartService struct {
	carts    CartStore
	concerts ConcertReader
}

// NewCartService creates a new cart service
func NewCartService(carts CartStore, concerts ConcertReader) *CartService {
	return &CartService{carts: carts, concerts: concerts}
}

// GetCart returns the user's cart summary, creating the cart on first access
func (s *CartService) GetCart(userID int) (*models.CartSummary, error) {
	cart, err := s.carts.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	return s.carts.GetSummary(cart.ID)
}

// AddItem adds tickets to the user's cart. The per-ticket price is
// snapshotted from the concert's current base price; when a line for the
// same (concert, ticket type) already exists the quantities are summed and
// the snapshot refreshed.
func (s *CartService) AddItem(userID int, req *models.AddToCartRequest) (*models.CartSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	concert, err := s.concerts.GetByID(req.ConcertID)
	if err != nil {
		return nil, err
	}

	if !concert.IsActive {
		return nil, models.ErrConcertNotFound
	}

	cart, err := s.carts.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	price := models.TicketPrice(concert.BasePrice, req.TicketType)

	existing, err := s.carts.FindItem(cart.ID, req.ConcertID, req.TicketType)
	switch {
	case err == nil:
		merged := existing.Quantity + req.Quantity
		if err := models.ValidateQuantity(merged); err != nil {
			return nil, models.NewValidationError("quantity", err.Error())
		}
		if !concert.HasAvailability(merged) {
			return nil, models.ErrInsufficientInventory
		}
		if err := s.carts.UpdateItem(existing.ID, merged, price); err != nil {
			return nil, fmt.Errorf("failed to merge cart line: %w", err)
		}
	case errors.Is(err, models.ErrCartItemNotFound):
		if !concert.HasAvailability(req.Quantity) {
			return nil, models.ErrInsufficientInventory
		}
		if _, err := s.carts.InsertItem(cart.ID, req.ConcertID, req.TicketType, req.Quantity, price); err != nil {
			return nil, fmt.Errorf("failed to add cart line: %w", err)
		}
	default:
		return nil, err
	}

	if err := s.carts.Touch(cart.ID); err != nil {
		return nil, err
	}

	return s.carts.GetSummary(cart.ID)
}

// UpdateQuantity changes a cart line's quantity, checked against the
// concert's live availability. The price snapshot is left as-is.
func (s *CartService) UpdateQuantity(userID, itemID, quantity int) (*models.CartSummary, error) {
	if err := models.ValidateQuantity(quantity); err != nil {
		return nil, models.NewValidationError("quantity", err.Error())
	}

	item, err := s.carts.GetItemForUser(itemID, userID)
	if err != nil {
		return nil, err
	}

	concert, err := s.concerts.GetByID(item.ConcertID)
	if err != nil {
		return nil, err
	}

	if !concert.HasAvailability(quantity) {
		return nil, models.ErrInsufficientInventory
	}

	if err := s.carts.UpdateItem(item.ID, quantity, item.PricePerTicket); err != nil {
		return nil, err
	}

	if err := s.carts.Touch(item.CartID); err != nil {
		return nil, err
	}

	return s.carts.GetSummary(item.CartID)
}

// RemoveItem deletes a cart line
func (s *CartService) RemoveItem(userID, itemID int) (*models.CartSummary, error) {
	item, err := s.carts.GetItemForUser(itemID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.carts.DeleteItem(item.ID); err != nil {
		return nil, err
	}

	if err := s.carts.Touch(item.CartID); err != nil {
		return nil, err
	}

	return s.carts.GetSummary(item.CartID)
}
