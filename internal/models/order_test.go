package models

import (
	"strings"
	"testing"
)

func TestGenerateOrderNumber(t *testing.T) {
	orderNumber := GenerateOrderNumber()

	if err := ValidateOrderNumber(orderNumber); err != nil {
		t.Errorf("generated order number %q failed validation: %v", orderNumber, err)
	}

	if !strings.HasPrefix(orderNumber, "ORD-") {
		t.Errorf("order number %q missing ORD- prefix", orderNumber)
	}
}

func TestValidateOrderNumber(t *testing.T) {
	tests := []struct {
		name        string
		orderNumber string
		wantErr     bool
	}{
		{
			name:        "valid order number",
			orderNumber: "ORD-20240101123045-123456",
			wantErr:     false,
		},
		{
			name:        "empty order number",
			orderNumber: "",
			wantErr:     true,
		},
		{
			name:        "missing prefix",
			orderNumber: "20240101123045-123456",
			wantErr:     true,
		},
		{
			name:        "short timestamp",
			orderNumber: "ORD-20240101-123456",
			wantErr:     true,
		},
		{
			name:        "short suffix",
			orderNumber: "ORD-20240101123045-1234",
			wantErr:     true,
		},
		{
			name:        "letters in suffix",
			orderNumber: "ORD-20240101123045-12345A",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrderNumber(tt.orderNumber)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOrderNumber(%q) error = %v, wantErr %v", tt.orderNumber, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePaymentStatus(t *testing.T) {
	for _, status := range []PaymentStatus{PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded} {
		if err := ValidatePaymentStatus(status); err != nil {
			t.Errorf("ValidatePaymentStatus(%s) = %v, want nil", status, err)
		}
	}

	if err := ValidatePaymentStatus("settled"); err == nil {
		t.Error("ValidatePaymentStatus(settled) = nil, want error")
	}
}

func TestOrder_StatusHelpers(t *testing.T) {
	pending := Order{PaymentStatus: PaymentPending}
	if !pending.IsPending() || pending.IsCompleted() {
		t.Error("pending order should be pending and not completed")
	}

	completed := Order{PaymentStatus: PaymentCompleted}
	if completed.IsPending() || !completed.IsCompleted() {
		t.Error("completed order should be completed and not pending")
	}
}

func TestOrder_TotalAmountInCurrency(t *testing.T) {
	order := Order{TotalAmount: 35600}
	if got := order.TotalAmountInCurrency(); got != 356.00 {
		t.Errorf("TotalAmountInCurrency() = %v, want 356.00", got)
	}
}
