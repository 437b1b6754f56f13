package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"concert-ticketing-platform/internal/models"
)

// PaymentResult is the gateway's settlement response
type PaymentResult struct {
	TransactionID string
	SettledAt     time.Time
}

// PaymentService collects payment for an order. Implementations wrap real
// gateways (FPX, card processors, eWallets); any returned error means the
// payment did not settle and the order stays pending.
type PaymentService interface {
	Process(ctx context.Context, order *models.Order, paymentMethod string) (*PaymentResult, error)
}

// MockPaymentService simulates a payment gateway: it waits a configurable
// delay and then settles successfully.
type MockPaymentService struct {
	delay time.Duration
}

// NewMockPaymentService creates a new mock payment service
func NewMockPaymentService(delay time.Duration) *MockPaymentService {
	log.Println("Payment service: using mock gateway (no real gateway credentials provided)")
	return &MockPaymentService{delay: delay}
}

// Process simulates collecting payment for an order
func (s *MockPaymentService) Process(ctx context.Context, order *models.Order, paymentMethod string) (*PaymentResult, error) {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, fmt.Errorf("payment interrupted: %w", ctx.Err())
	}

	log.Printf("Mock payment: settled %s for order %s via %s",
		fmt.Sprintf("%.2f", order.TotalAmountInCurrency()), order.OrderNumber, paymentMethod)

	return &PaymentResult{
		TransactionID: generateTransactionID(),
		SettledAt:     time.Now(),
	}, nil
}

// generateTransactionID builds a gateway-style transaction reference
// (format: TXN<yyyyMMddHHmmss><5 digits>)
func generateTransactionID() string {
	timestamp := time.Now().Format("20060102150405")

	max := big.NewInt(100000)
	randomNum, err := rand.Int(rand.Reader, max)
	if err != nil {
		return fmt.Sprintf("TXN%s%05d", timestamp, time.Now().UnixNano()%100000)
	}

	return fmt.Sprintf("TXN%s%05d", timestamp, randomNum.Int64())
}
