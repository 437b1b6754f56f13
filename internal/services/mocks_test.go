package services

import (
	"context"
	"errors"
	"time"

	"concert-ticketing-platform/internal/models"
	"concert-ticketing-platform/internal/repositories"
)

// mockConcertStore serves concerts from memory
type mockConcertStore struct {
	concerts map[int]*models.Concert
}

func newMockConcertStore(concerts ...*models.Concert) *mockConcertStore {
	store := &mockConcertStore{concerts: make(map[int]*models.Concert)}
	for _, c := range concerts {
		store.concerts[c.ID] = c
	}
	return store
}

func (m *mockConcertStore) GetByID(id int) (*models.Concert, error) {
	concert, ok := m.concerts[id]
	if !ok {
		return nil, models.ErrConcertNotFound
	}
	return concert, nil
}

func (m *mockConcertStore) List(filters repositories.ConcertFilters) ([]*models.Concert, error) {
	var out []*models.Concert
	for _, c := range m.concerts {
		if filters.ActiveOnly && !c.IsActive {
			continue
		}
		if filters.Genre != "" && c.Genre != filters.Genre {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *mockConcertStore) ListGenres() ([]string, error) {
	seen := make(map[string]bool)
	var genres []string
	for _, c := range m.concerts {
		if !seen[c.Genre] {
			seen[c.Genre] = true
			genres = append(genres, c.Genre)
		}
	}
	return genres, nil
}

// mockCartStore keeps cart lines in memory
type mockCartStore struct {
	cart   models.Cart
	items  []models.CartItemDetail
	nextID int
}

func newMockCartStore(userID int) *mockCartStore {
	return &mockCartStore{
		cart:   models.Cart{ID: 1, UserID: userID, CreatedAt: time.Now()},
		nextID: 1,
	}
}

func (m *mockCartStore) GetOrCreate(userID int) (*models.Cart, error) {
	return &m.cart, nil
}

func (m *mockCartStore) Touch(cartID int) error {
	now := time.Now()
	m.cart.UpdatedAt = &now
	return nil
}

func (m *mockCartStore) FindItem(cartID, concertID int, ticketType models.TicketType) (*models.CartItem, error) {
	for i := range m.items {
		if m.items[i].ConcertID == concertID && m.items[i].TicketType == ticketType {
			item := m.items[i].CartItem
			return &item, nil
		}
	}
	return nil, models.ErrCartItemNotFound
}

func (m *mockCartStore) GetItemForUser(itemID, userID int) (*models.CartItem, error) {
	if userID != m.cart.UserID {
		return nil, models.ErrCartItemNotFound
	}
	for i := range m.items {
		if m.items[i].ID == itemID {
			item := m.items[i].CartItem
			return &item, nil
		}
	}
	return nil, models.ErrCartItemNotFound
}

func (m *mockCartStore) InsertItem(cartID, concertID int, ticketType models.TicketType, quantity, pricePerTicket int) (*models.CartItem, error) {
	item := models.CartItem{
		ID:             m.nextID,
		CartID:         cartID,
		ConcertID:      concertID,
		TicketType:     ticketType,
		Quantity:       quantity,
		PricePerTicket: pricePerTicket,
		AddedAt:        time.Now(),
	}
	m.nextID++
	m.items = append(m.items, models.CartItemDetail{CartItem: item})
	return &item, nil
}

func (m *mockCartStore) UpdateItem(itemID, quantity, pricePerTicket int) error {
	for i := range m.items {
		if m.items[i].ID == itemID {
			m.items[i].Quantity = quantity
			m.items[i].PricePerTicket = pricePerTicket
			return nil
		}
	}
	return models.ErrCartItemNotFound
}

func (m *mockCartStore) DeleteItem(itemID int) error {
	for i := range m.items {
		if m.items[i].ID == itemID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return models.ErrCartItemNotFound
}

func (m *mockCartStore) GetSummary(cartID int) (*models.CartSummary, error) {
	summary := &models.CartSummary{Items: append([]models.CartItemDetail(nil), m.items...)}
	for _, item := range m.items {
		summary.TotalItems += item.Quantity
		summary.TotalAmount += item.Subtotal()
	}
	return summary, nil
}

// mockOrderStore mimics the transactional checkout persistence against the
// same in-memory concert and cart stores
type mockOrderStore struct {
	concerts *mockConcertStore
	carts    *mockCartStore

	orders      map[int]*models.Order
	tickets     map[int][]repositories.TicketSpec
	nextID      int
	usedNumbers map[string]bool
}

func newMockOrderStore(concerts *mockConcertStore, carts *mockCartStore) *mockOrderStore {
	return &mockOrderStore{
		concerts:    concerts,
		carts:       carts,
		orders:      make(map[int]*models.Order),
		tickets:     make(map[int][]repositories.TicketSpec),
		nextID:      1,
		usedNumbers: make(map[string]bool),
	}
}

func (m *mockOrderStore) CreateWithTickets(cartID int, data repositories.OrderCreateData, tickets []repositories.TicketSpec) (*models.Order, error) {
	if m.usedNumbers[data.OrderNumber] {
		return nil, models.ErrDuplicateEntry
	}

	// Guarded decrement per concert, all or nothing
	decrements := make(map[int]int)
	for _, spec := range tickets {
		decrements[spec.ConcertID]++
	}
	for concertID, qty := range decrements {
		concert, ok := m.concerts.concerts[concertID]
		if !ok || concert.AvailableTickets < qty {
			return nil, models.ErrInsufficientInventory
		}
	}
	for concertID, qty := range decrements {
		m.concerts.concerts[concertID].AvailableTickets -= qty
	}

	order := &models.Order{
		ID:             m.nextID,
		OrderNumber:    data.OrderNumber,
		UserID:         data.UserID,
		CustomerName:   data.Checkout.CustomerName,
		CustomerEmail:  data.Checkout.CustomerEmail,
		CustomerPhone:  data.Checkout.CustomerPhone,
		BillingAddress: data.Checkout.BillingAddress,
		City:           data.Checkout.City,
		State:          data.Checkout.State,
		PostalCode:     data.Checkout.PostalCode,
		TotalAmount:    data.TotalAmount,
		Quantity:       data.Quantity,
		PaymentStatus:  models.PaymentPending,
		PaymentMethod:  data.Checkout.PaymentMethod,
		OrderDate:      time.Now(),
	}
	m.nextID++
	m.usedNumbers[data.OrderNumber] = true
	m.orders[order.ID] = order
	m.tickets[order.ID] = tickets

	// Clear the cart within the same "transaction"
	m.carts.items = nil

	return order, nil
}

func (m *mockOrderStore) MarkCompleted(orderID int, transactionID string, settledAt time.Time) error {
	order, ok := m.orders[orderID]
	if !ok || order.PaymentStatus != models.PaymentPending {
		return models.ErrOrderNotFound
	}
	order.PaymentStatus = models.PaymentCompleted
	order.TransactionID = transactionID
	order.PaymentDate = &settledAt
	return nil
}

func (m *mockOrderStore) GetByID(id int) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	return order, nil
}

// failingPaymentService always declines
type failingPaymentService struct{}

func (failingPaymentService) Process(ctx context.Context, order *models.Order, paymentMethod string) (*PaymentResult, error) {
	return nil, errors.New("card declined")
}

// mockOrderReader serves orders by id for one user
type mockOrderReader struct {
	userID int
	orders map[int]*models.Order
}

func (m *mockOrderReader) GetByIDForUser(id, userID int) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok || userID != m.userID {
		return nil, models.ErrOrderNotFound
	}
	return order, nil
}

func (m *mockOrderReader) ListByUser(userID int) ([]*models.Order, error) {
	var out []*models.Order
	if userID != m.userID {
		return out, nil
	}
	for _, order := range m.orders {
		out = append(out, order)
	}
	return out, nil
}

// mockTicketStore serves ticket details by order
type mockTicketStore struct {
	byOrder map[int][]*models.TicketDetail
}

func (m *mockTicketStore) GetByOrder(orderID int) ([]*models.TicketDetail, error) {
	return m.byOrder[orderID], nil
}

func (m *mockTicketStore) ListByUser(userID int) ([]*models.TicketDetail, error) {
	var out []*models.TicketDetail
	for _, tickets := range m.byOrder {
		out = append(out, tickets...)
	}
	return out, nil
}

func (m *mockTicketStore) GetByIDForUser(id, userID int) (*models.TicketDetail, error) {
	for _, tickets := range m.byOrder {
		for _, ticket := range tickets {
			if ticket.ID == id {
				return ticket, nil
			}
		}
	}
	return nil, models.ErrTicketNotFound
}
