package models

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"time"
)

// PaymentStatus represents the payment status of an order
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Order represents a finalized purchase transaction. Customer and billing
// fields are snapshotted from the checkout request; the order itself is
// immutable after creation except for payment status transitions.
type Order struct {
	ID             int           `json:"id" db:"id"`
	OrderNumber    string        `json:"order_number" db:"order_number"`
	UserID         int           `json:"user_id" db:"user_id"`
	CustomerName   string        `json:"customer_name" db:"customer_name"`
	CustomerEmail  string        `json:"customer_email" db:"customer_email"`
	CustomerPhone  string        `json:"customer_phone" db:"customer_phone"`
	BillingAddress string        `json:"billing_address" db:"billing_address"`
	City           string        `json:"city" db:"city"`
	State          string        `json:"state" db:"state"`
	PostalCode     string        `json:"postal_code" db:"postal_code"`
	TotalAmount    int           `json:"total_amount" db:"total_amount"` // in cents
	Quantity       int           `json:"quantity" db:"quantity"`
	PaymentStatus  PaymentStatus `json:"payment_status" db:"payment_status"`
	PaymentMethod  string        `json:"payment_method" db:"payment_method"`
	TransactionID  string        `json:"transaction_id,omitempty" db:"transaction_id"`
	PaymentDate    *time.Time    `json:"payment_date,omitempty" db:"payment_date"`
	OrderDate      time.Time     `json:"order_date" db:"order_date"`
}

// Order number format: ORD-YYYYMMDDHHMMSS-XXXXXX
var orderNumberRegex = regexp.MustCompile(`^ORD-\d{14}-\d{6}$`)

// GenerateOrderNumber generates a unique order number. Collisions are
// possible in theory (same second, same random suffix) so callers must
// re-check uniqueness when persisting.
func GenerateOrderNumber() string {
	now := time.Now()
	timestamp := now.Format("20060102150405")

	max := big.NewInt(1000000)
	randomNum, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fallback to timestamp-based generation if crypto/rand fails
		return fmt.Sprintf("ORD-%s-%06d", timestamp, now.UnixNano()%1000000)
	}

	return fmt.Sprintf("ORD-%s-%06d", timestamp, randomNum.Int64())
}

// ValidateOrderNumber validates an order number format
func ValidateOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errors.New("order number is required")
	}

	if !orderNumberRegex.MatchString(orderNumber) {
		return errors.New("order number format is invalid")
	}

	return nil
}

// ValidatePaymentStatus validates a payment status
func ValidatePaymentStatus(status PaymentStatus) error {
	switch status {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return nil
	default:
		return errors.New("invalid payment status")
	}
}

// IsPending returns true if payment has not settled
func (o *Order) IsPending() bool {
	return o.PaymentStatus == PaymentPending
}

// IsCompleted returns true if payment settled successfully
func (o *Order) IsCompleted() bool {
	return o.PaymentStatus == PaymentCompleted
}

// TotalAmountInCurrency returns the total amount in the main currency as a float
func (o *Order) TotalAmountInCurrency() float64 {
	return float64(o.TotalAmount) / 100.0
}

// StatusDisplayName returns a human-readable payment status
func (o *Order) StatusDisplayName() string {
	switch o.PaymentStatus {
	case PaymentPending:
		return "Pending Payment"
	case PaymentCompleted:
		return "Completed"
	case PaymentFailed:
		return "Failed"
	case PaymentRefunded:
		return "Refunded"
	default:
		return string(o.PaymentStatus)
	}
}
