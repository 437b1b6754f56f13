package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"concert-ticketing-platform/internal/models"
)

func TestMockPaymentService_Process(t *testing.T) {
	svc := NewMockPaymentService(0)
	order := &models.Order{OrderNumber: "ORD-20240101123045-123456", TotalAmount: 35600}

	result, err := svc.Process(context.Background(), order, "credit_card")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	format := regexp.MustCompile(`^TXN\d{14}\d{5}$`)
	if !format.MatchString(result.TransactionID) {
		t.Errorf("TransactionID %q does not match TXN<timestamp><5 digits>", result.TransactionID)
	}
	if result.SettledAt.IsZero() {
		t.Error("SettledAt is zero")
	}
}

func TestMockPaymentService_Process_CancelledContext(t *testing.T) {
	svc := NewMockPaymentService(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Process(ctx, &models.Order{}, "credit_card")
	if err == nil {
		t.Error("Process() with cancelled context = nil, want error")
	}
}
