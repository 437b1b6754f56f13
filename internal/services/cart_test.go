package services

import (
	"errors"
	"testing"
	"time"

	"concert-ticketing-platform/internal/models"
)

func testConcert(id, basePrice, available int) *models.Concert {
	return &models.Concert{
		ID:               id,
		Title:            "Rock Legends Live",
		Artist:           "The Thunderbolts",
		Genre:            "Rock",
		EventDate:        time.Now().AddDate(0, 1, 0),
		BasePrice:        basePrice,
		AvailableTickets: available,
		TotalTickets:     available,
		IsActive:         true,
		VenueID:          1,
	}
}

func TestCartService_AddItem(t *testing.T) {
	t.Run("adds a new line with the snapshot price", func(t *testing.T) {
		concerts := newMockConcertStore(testConcert(1, 8900, 100))
		carts := newMockCartStore(7)
		svc := NewCartService(carts, concerts)

		summary, err := svc.AddItem(7, &models.AddToCartRequest{
			ConcertID: 1, TicketType: models.TicketVIP, Quantity: 2,
		})
		if err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}

		if len(summary.Items) != 1 {
			t.Fatalf("cart has %d lines, want 1", len(summary.Items))
		}
		if summary.Items[0].PricePerTicket != 17800 {
			t.Errorf("VIP price = %d, want 17800", summary.Items[0].PricePerTicket)
		}
		if summary.TotalAmount != 35600 {
			t.Errorf("TotalAmount = %d, want 35600", summary.TotalAmount)
		}
	})

	t.Run("merges quantities and refreshes the price snapshot", func(t *testing.T) {
		concert := testConcert(1, 8900, 100)
		concerts := newMockConcertStore(concert)
		carts := newMockCartStore(7)
		svc := NewCartService(carts, concerts)

		if _, err := svc.AddItem(7, &models.AddToCartRequest{
			ConcertID: 1, TicketType: models.TicketGeneral, Quantity: 2,
		}); err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}

		// Base price changes between the two adds
		concert.BasePrice = 9900

		summary, err := svc.AddItem(7, &models.AddToCartRequest{
			ConcertID: 1, TicketType: models.TicketGeneral, Quantity: 3,
		})
		if err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}

		if len(summary.Items) != 1 {
			t.Fatalf("cart has %d lines after merge, want 1", len(summary.Items))
		}
		if summary.Items[0].Quantity != 5 {
			t.Errorf("merged quantity = %d, want 5", summary.Items[0].Quantity)
		}
		if summary.Items[0].PricePerTicket != 9900 {
			t.Errorf("merged price = %d, want refreshed 9900", summary.Items[0].PricePerTicket)
		}
	})

	t.Run("rejects a merge past the line cap", func(t *testing.T) {
		concerts := newMockConcertStore(testConcert(1, 8900, 100))
		carts := newMockCartStore(7)
		svc := NewCartService(carts, concerts)

		if _, err := svc.AddItem(7, &models.AddToCartRequest{
			ConcertID: 1, TicketType: models.TicketGeneral, Quantity: 8,
		}); err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}

		_, err := svc.AddItem(7, &models.AddToCartRequest{
			ConcertID: 1, TicketType: models.TicketGeneral, Quantity: 3,
		})
		if !models.IsValidationError(err) {
			t.Errorf("AddItem() error = %v, want validation error", err)
		}

		// Original line untouched
		summary, _ := svc.GetCart(7)
		if summary.Items[0].Quantity != 8 {
			t.Errorf("quantity after rejected merge = %d, want 8", summary.Items[0].Quantity)
		}
	})

	t.Run("rejects insufficient availability and leaves the cart unchanged", func(t *testing.T) {
		concerts := newMockConcertStore(testConcert(1, 8900, 3))
		carts := newMockCartStore(7)
		svc := NewCartService(carts, concerts)

		_, err := svc.AddItem(7, &models.AddToCartRequest{
			ConcertID: 1, TicketType: models.TicketGeneral, Quantity: 4,
		})
		if !errors.Is(err, models.ErrInsufficientInventory) {
			t.Errorf("AddItem() error = %v, want ErrInsufficientInventory", err)
		}

		summary, _ := svc.GetCart(7)
		if len(summary.Items) != 0 {
			t.Errorf("cart has %d lines, want 0", len(summary.Items))
		}
	})

	t.Run("rejects an inactive concert", func(t *testing.T) {
		concert := testConcert(1, 8900, 100)
		concert.IsActive = false
		svc := NewCartService(newMockCartStore(7), newMockConcertStore(concert))

		_, err := svc.AddItem(7, &models.AddToCartRequest{
			ConcertID: 1, TicketType: models.TicketGeneral, Quantity: 1,
		})
		if !errors.Is(err, models.ErrConcertNotFound) {
			t.Errorf("AddItem() error = %v, want ErrConcertNotFound", err)
		}
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	t.Run("keeps the price snapshot", func(t *testing.T) {
		concert := testConcert(1, 8900, 100)
		concerts := newMockConcertStore(concert)
		carts := newMockCartStore(7)
		svc := NewCartService(carts, concerts)

		summary, err := svc.AddItem(7, &models.AddToCartRequest{
			ConcertID: 1, TicketType: models.TicketGeneral, Quantity: 2,
		})
		if err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}
		itemID := summary.Items[0].ID

		// Base price changes after the line was added
		concert.BasePrice = 12000

		summary, err = svc.UpdateQuantity(7, itemID, 5)
		if err != nil {
			t.Fatalf("UpdateQuantity() error = %v", err)
		}

		if summary.Items[0].Quantity != 5 {
			t.Errorf("quantity = %d, want 5", summary.Items[0].Quantity)
		}
		if summary.Items[0].PricePerTicket != 8900 {
			t.Errorf("price = %d, want snapshot 8900 despite base price change", summary.Items[0].PricePerTicket)
		}
	})

	t.Run("checks live availability", func(t *testing.T) {
		concerts := newMockConcertStore(testConcert(1, 8900, 4))
		carts := newMockCartStore(7)
		svc := NewCartService(carts, concerts)

		summary, err := svc.AddItem(7, &models.AddToCartRequest{
			ConcertID: 1, TicketType: models.TicketGeneral, Quantity: 2,
		})
		if err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}

		_, err = svc.UpdateQuantity(7, summary.Items[0].ID, 5)
		if !errors.Is(err, models.ErrInsufficientInventory) {
			t.Errorf("UpdateQuantity() error = %v, want ErrInsufficientInventory", err)
		}
	})

	t.Run("rejects another user's line", func(t *testing.T) {
		concerts := newMockConcertStore(testConcert(1, 8900, 100))
		carts := newMockCartStore(7)
		svc := NewCartService(carts, concerts)

		summary, err := svc.AddItem(7, &models.AddToCartRequest{
			ConcertID: 1, TicketType: models.TicketGeneral, Quantity: 2,
		})
		if err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}

		_, err = svc.UpdateQuantity(99, summary.Items[0].ID, 3)
		if !errors.Is(err, models.ErrCartItemNotFound) {
			t.Errorf("UpdateQuantity() error = %v, want ErrCartItemNotFound", err)
		}
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	concerts := newMockConcertStore(testConcert(1, 8900, 100))
	carts := newMockCartStore(7)
	svc := NewCartService(carts, concerts)

	summary, err := svc.AddItem(7, &models.AddToCartRequest{
		ConcertID: 1, TicketType: models.TicketVVIP, Quantity: 1,
	})
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	summary, err = svc.RemoveItem(7, summary.Items[0].ID)
	if err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}

	if len(summary.Items) != 0 || summary.TotalAmount != 0 {
		t.Errorf("cart not empty after remove: %d lines, total %d", len(summary.Items), summary.TotalAmount)
	}
}
