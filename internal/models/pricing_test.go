package models

import "testing"

func TestTicketPrice(t *testing.T) {
	tests := []struct {
		name       string
		basePrice  int
		ticketType TicketType
		want       int
	}{
		{
			name:       "general is base price",
			basePrice:  8900,
			ticketType: TicketGeneral,
			want:       8900,
		},
		{
			name:       "vip doubles base price",
			basePrice:  8900,
			ticketType: TicketVIP,
			want:       17800,
		},
		{
			name:       "vvip is 3.5x base price",
			basePrice:  8900,
			ticketType: TicketVVIP,
			want:       31150,
		},
		{
			name:       "vvip rounds half cent down on odd base",
			basePrice:  101,
			ticketType: TicketVVIP,
			want:       353, // 101 * 3.5 = 353.5
		},
		{
			name:       "unknown type falls back to base price",
			basePrice:  5000,
			ticketType: TicketType("Balcony"),
			want:       5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TicketPrice(tt.basePrice, tt.ticketType)
			if got != tt.want {
				t.Errorf("TicketPrice(%d, %s) = %d, want %d", tt.basePrice, tt.ticketType, got, tt.want)
			}
		})
	}
}

func TestValidTicketType(t *testing.T) {
	valid := []TicketType{TicketGeneral, TicketVIP, TicketVVIP}
	for _, tt := range valid {
		if !ValidTicketType(tt) {
			t.Errorf("ValidTicketType(%s) = false, want true", tt)
		}
	}

	invalid := []TicketType{"", "general", "Vip", "Balcony"}
	for _, tt := range invalid {
		if ValidTicketType(tt) {
			t.Errorf("ValidTicketType(%s) = true, want false", tt)
		}
	}
}
