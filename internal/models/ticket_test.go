package models

import (
	"regexp"
	"testing"
)

func TestGenerateTicketNumber(t *testing.T) {
	format := regexp.MustCompile(`^TKT-\d{8}-[0-9A-F]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := GenerateTicketNumber()
		if !format.MatchString(number) {
			t.Fatalf("ticket number %q does not match TKT-YYYYMMDD-XXXXXXXX", number)
		}
		if seen[number] {
			t.Fatalf("duplicate ticket number generated: %q", number)
		}
		seen[number] = true
	}
}

func TestGenerateQRPayload(t *testing.T) {
	tests := []struct {
		name        string
		orderNumber string
		sequence    int
		want        string
	}{
		{
			name:        "first ticket",
			orderNumber: "ORD-20240101123045-123456",
			sequence:    1,
			want:        "QR-ORD-20240101123045-123456-001",
		},
		{
			name:        "double digit sequence",
			orderNumber: "ORD-20240101123045-123456",
			sequence:    12,
			want:        "QR-ORD-20240101123045-123456-012",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateQRPayload(tt.orderNumber, tt.sequence)
			if got != tt.want {
				t.Errorf("GenerateQRPayload(%q, %d) = %q, want %q", tt.orderNumber, tt.sequence, got, tt.want)
			}
		})
	}
}
