package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"concert-ticketing-platform/internal/config"
	"concert-ticketing-platform/internal/models"
	"concert-ticketing-platform/internal/repositories"
)

// OrderStore is the checkout's order persistence interface
type OrderStore interface {
	CreateWithTickets(cartID int, data repositories.OrderCreateData, tickets []repositories.TicketSpec) (*models.Order, error)
	MarkCompleted(orderID int, transactionID string, settledAt time.Time) error
	GetByID(id int) (*models.Order, error)
}

// OrderEventPublisher announces completed orders to downstream consumers
type OrderEventPublisher interface {
	PublishOrderCompleted(ctx context.Context, order *models.Order) error
}

// CacheInvalidator drops cached catalog reads after inventory changes
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// CheckoutService orchestrates the checkout workflow: validate the request,
// load the cart, create the order with its tickets, decrement inventory and
// clear the cart in one transaction, then collect payment.
type CheckoutService struct {
	carts     CartStore
	orders    OrderStore
	concerts  ConcertReader
	payments  PaymentService
	publisher OrderEventPublisher
	cache     CacheInvalidator
	cfg       config.CheckoutConfig
}

// NewCheckoutService creates a new checkout service. publisher and cache
// may be nil.
func NewCheckoutService(
	carts CartStore,
	orders OrderStore,
	concerts ConcertReader,
	payments PaymentService,
	publisher OrderEventPublisher,
	cache CacheInvalidator,
	cfg config.CheckoutConfig,
) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		orders:    orders,
		concerts:  concerts,
		payments:  payments,
		publisher: publisher,
		cache:     cache,
		cfg:       cfg,
	}
}

// Checkout places an order from the user's cart. On success the cart is
// empty, the order is settled and every ticket is issued. A payment
// failure returns ErrPaymentFailed with the order left in pending status
// for reconciliation; the tickets and inventory decrement stand.
func (s *CheckoutService) Checkout(ctx context.Context, userID int, req *models.CheckoutRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cart, err := s.carts.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	summary, err := s.carts.GetSummary(cart.ID)
	if err != nil {
		return nil, err
	}

	if len(summary.Items) == 0 {
		return nil, models.ErrEmptyCart
	}

	// The price snapshot captured at add-to-cart time is charged unless
	// revalidation is switched on, in which case prices are re-derived
	// from the current base price first.
	if s.cfg.RevalidatePrices {
		if err := s.revalidatePrices(summary); err != nil {
			return nil, err
		}
	}

	totalAmount := 0
	totalQuantity := 0
	for _, item := range summary.Items {
		totalAmount += item.Subtotal()
		totalQuantity += item.Quantity
	}

	order, err := s.createOrder(cart.ID, userID, req, summary, totalAmount, totalQuantity)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	result, err := s.payments.Process(ctx, order, req.PaymentMethod)
	if err != nil {
		log.Printf("Checkout: payment failed for order %s: %v", order.OrderNumber, err)
		return order, models.ErrPaymentFailed
	}

	if err := s.orders.MarkCompleted(order.ID, result.TransactionID, result.SettledAt); err != nil {
		return order, fmt.Errorf("failed to settle order %s: %w", order.OrderNumber, err)
	}

	order.PaymentStatus = models.PaymentCompleted
	order.TransactionID = result.TransactionID
	order.PaymentDate = &result.SettledAt

	if s.publisher != nil {
		if err := s.publisher.PublishOrderCompleted(ctx, order); err != nil {
			// Best effort: the order is settled regardless.
			log.Printf("Checkout: failed to publish completion event for order %s: %v", order.OrderNumber, err)
		}
	}

	return order, nil
}

// createOrder runs the transactional part of checkout, retrying with a
// fresh order number on the (unlikely) collision.
func (s *CheckoutService) createOrder(cartID, userID int, req *models.CheckoutRequest, summary *models.CartSummary, totalAmount, totalQuantity int) (*models.Order, error) {
	for attempt := 0; attempt < 3; attempt++ {
		orderNumber := models.GenerateOrderNumber()

		specs := make([]repositories.TicketSpec, 0, totalQuantity)
		sequence := 1
		for _, item := range summary.Items {
			for i := 0; i < item.Quantity; i++ {
				specs = append(specs, repositories.TicketSpec{
					ConcertID:    item.ConcertID,
					TicketType:   item.TicketType,
					Price:        item.PricePerTicket,
					TicketNumber: models.GenerateTicketNumber(),
					QRCode:       models.GenerateQRPayload(orderNumber, sequence),
				})
				sequence++
			}
		}

		order, err := s.orders.CreateWithTickets(cartID, repositories.OrderCreateData{
			OrderNumber: orderNumber,
			UserID:      userID,
			Checkout:    *req,
			TotalAmount: totalAmount,
			Quantity:    totalQuantity,
		}, specs)
		if errors.Is(err, models.ErrDuplicateEntry) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return order, nil
	}

	return nil, fmt.Errorf("failed to generate a unique order number")
}

// revalidatePrices refreshes every line's snapshot from the concert's
// current base price before totals are computed.
func (s *CheckoutService) revalidatePrices(summary *models.CartSummary) error {
	for i := range summary.Items {
		concert, err := s.concerts.GetByID(summary.Items[i].ConcertID)
		if err != nil {
			return err
		}
		summary.Items[i].PricePerTicket = models.TicketPrice(concert.BasePrice, summary.Items[i].TicketType)
	}
	return nil
}
