package services

import (
	"errors"
	"testing"
	"time"

	"concert-ticketing-platform/internal/models"
)

func ticketDetail(id, concertID int, title string, ticketType models.TicketType, price int, number string) *models.TicketDetail {
	return &models.TicketDetail{
		Ticket: models.Ticket{
			ID:           id,
			TicketNumber: number,
			OrderID:      1,
			ConcertID:    concertID,
			TicketType:   ticketType,
			Price:        price,
			Status:       models.TicketSold,
		},
		ConcertTitle: title,
		Artist:       "The Thunderbolts",
		VenueName:    "Axiata Arena",
		OrderNumber:  "ORD-20240101123045-123456",
	}
}

func TestOrderService_Confirmation(t *testing.T) {
	order := &models.Order{
		ID:            1,
		OrderNumber:   "ORD-20240101123045-123456",
		UserID:        7,
		TotalAmount:   35600,
		Quantity:      3,
		PaymentStatus: models.PaymentCompleted,
		OrderDate:     time.Now(),
	}

	orders := &mockOrderReader{userID: 7, orders: map[int]*models.Order{1: order}}
	tickets := &mockTicketStore{byOrder: map[int][]*models.TicketDetail{
		1: {
			ticketDetail(1, 1, "Rock Legends Live", models.TicketGeneral, 8900, "TKT-20240101-AAAA0001"),
			ticketDetail(2, 1, "Rock Legends Live", models.TicketGeneral, 8900, "TKT-20240101-AAAA0002"),
			ticketDetail(3, 1, "Rock Legends Live", models.TicketVIP, 17800, "TKT-20240101-AAAA0003"),
		},
	}}

	svc := NewOrderService(orders, tickets)

	confirmation, err := svc.Confirmation(7, 1)
	if err != nil {
		t.Fatalf("Confirmation() error = %v", err)
	}

	if confirmation.OrderNumber != order.OrderNumber {
		t.Errorf("OrderNumber = %q, want %q", confirmation.OrderNumber, order.OrderNumber)
	}
	if len(confirmation.Items) != 2 {
		t.Fatalf("grouped into %d items, want 2 (General and VIP)", len(confirmation.Items))
	}

	general := confirmation.Items[0]
	if general.TicketType != models.TicketGeneral || general.Quantity != 2 || general.Price != 17800 {
		t.Errorf("General group = {%s qty=%d price=%d}, want {General qty=2 price=17800}",
			general.TicketType, general.Quantity, general.Price)
	}
	if len(general.TicketNumbers) != 2 {
		t.Errorf("General group lists %d ticket numbers, want 2", len(general.TicketNumbers))
	}

	vip := confirmation.Items[1]
	if vip.TicketType != models.TicketVIP || vip.Quantity != 1 || vip.Price != 17800 {
		t.Errorf("VIP group = {%s qty=%d price=%d}, want {VIP qty=1 price=17800}",
			vip.TicketType, vip.Quantity, vip.Price)
	}

	// Re-summing the groups reproduces the order total
	sum := 0
	for _, group := range confirmation.Items {
		sum += group.Price
	}
	if sum != confirmation.TotalAmount {
		t.Errorf("sum of group prices = %d, want order total %d", sum, confirmation.TotalAmount)
	}
}

func TestOrderService_Confirmation_WrongUser(t *testing.T) {
	order := &models.Order{ID: 1, UserID: 7, PaymentStatus: models.PaymentCompleted}
	orders := &mockOrderReader{userID: 7, orders: map[int]*models.Order{1: order}}
	svc := NewOrderService(orders, &mockTicketStore{})

	_, err := svc.Confirmation(99, 1)
	if !errors.Is(err, models.ErrOrderNotFound) {
		t.Errorf("Confirmation() error = %v, want ErrOrderNotFound", err)
	}
}
