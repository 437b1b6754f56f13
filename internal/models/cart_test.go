package models

import "testing"

func TestValidateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantErr  bool
	}{
		{name: "minimum quantity", quantity: 1, wantErr: false},
		{name: "maximum quantity", quantity: 10, wantErr: false},
		{name: "zero quantity", quantity: 0, wantErr: true},
		{name: "negative quantity", quantity: -1, wantErr: true},
		{name: "over the cap", quantity: 11, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuantity(tt.quantity)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateQuantity(%d) error = %v, wantErr %v", tt.quantity, err, tt.wantErr)
			}
		})
	}
}

func TestCartItem_Subtotal(t *testing.T) {
	item := CartItem{Quantity: 3, PricePerTicket: 8900}
	if got := item.Subtotal(); got != 26700 {
		t.Errorf("Subtotal() = %d, want 26700", got)
	}
}
