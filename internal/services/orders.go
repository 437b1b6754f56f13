package services

import (
	"time"

	"concert-ticketing-platform/internal/models"
)

// TicketStore is the order service's ticket persistence interface
type TicketStore interface {
	GetByOrder(orderID int) ([]*models.TicketDetail, error)
	ListByUser(userID int) ([]*models.TicketDetail, error)
	GetByIDForUser(id, userID int) (*models.TicketDetail, error)
}

// OrderReader provides the order lookups the formatter needs
type OrderReader interface {
	GetByIDForUser(id, userID int) (*models.Order, error)
	ListByUser(userID int) ([]*models.Order, error)
}

// OrderConfirmation is the confirmation view of a completed checkout
type OrderConfirmation struct {
	OrderNumber   string               `json:"order_number"`
	TotalAmount   int                  `json:"total_amount"` // in cents
	OrderDate     time.Time            `json:"order_date"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	Items         []OrderItemGroup     `json:"items"`
}

// OrderItemGroup summarizes an order's tickets for one concert and tier
type OrderItemGroup struct {
	ConcertTitle  string            `json:"concert_title"`
	Artist        string            `json:"artist"`
	EventDate     time.Time         `json:"event_date"`
	VenueName     string            `json:"venue_name"`
	TicketType    models.TicketType `json:"ticket_type"`
	Quantity      int               `json:"quantity"`
	Price         int               `json:"price"` // summed ticket prices in cents
	TicketNumbers []string          `json:"ticket_numbers"`
}

// OrderService formats orders and tickets for customer-facing views
type OrderService struct {
	orders  OrderReader
	tickets TicketStore
}

// NewOrderService creates a new order service
func NewOrderService(orders OrderReader, tickets TicketStore) *OrderService {
	return &OrderService{orders: orders, tickets: tickets}
}

// Confirmation loads an order and groups its tickets by concert and tier.
// Pure read; re-summing the group prices reproduces the order total.
func (s *OrderService) Confirmation(userID, orderID int) (*OrderConfirmation, error) {
	order, err := s.orders.GetByIDForUser(orderID, userID)
	if err != nil {
		return nil, err
	}

	tickets, err := s.tickets.GetByOrder(order.ID)
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		concertID  int
		ticketType models.TicketType
	}

	groups := make(map[groupKey]*OrderItemGroup)
	var keys []groupKey // preserve first-seen order

	for _, ticket := range tickets {
		key := groupKey{ticket.ConcertID, ticket.TicketType}
		group, ok := groups[key]
		if !ok {
			group = &OrderItemGroup{
				ConcertTitle: ticket.ConcertTitle,
				Artist:       ticket.Artist,
				EventDate:    ticket.EventDate,
				VenueName:    ticket.VenueName,
				TicketType:   ticket.TicketType,
			}
			groups[key] = group
			keys = append(keys, key)
		}
		group.Quantity++
		group.Price += ticket.Price
		group.TicketNumbers = append(group.TicketNumbers, ticket.TicketNumber)
	}

	confirmation := &OrderConfirmation{
		OrderNumber:   order.OrderNumber,
		TotalAmount:   order.TotalAmount,
		OrderDate:     order.OrderDate,
		PaymentStatus: order.PaymentStatus,
		Items:         make([]OrderItemGroup, 0, len(keys)),
	}
	for _, key := range keys {
		confirmation.Items = append(confirmation.Items, *groups[key])
	}

	return confirmation, nil
}

// ListOrders returns the user's orders, newest first
func (s *OrderService) ListOrders(userID int) ([]*models.Order, error) {
	return s.orders.ListByUser(userID)
}

// GetOrder returns one of the user's orders
func (s *OrderService) GetOrder(userID, orderID int) (*models.Order, error) {
	return s.orders.GetByIDForUser(orderID, userID)
}

// ListTickets returns the user's tickets across all orders
func (s *OrderService) ListTickets(userID int) ([]*models.TicketDetail, error) {
	return s.tickets.ListByUser(userID)
}

// GetTicket returns one of the user's tickets
func (s *OrderService) GetTicket(userID, ticketID int) (*models.TicketDetail, error) {
	return s.tickets.GetByIDForUser(ticketID, userID)
}
