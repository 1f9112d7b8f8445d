package words

import "testing"

func TestInWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Taka Only"},
		{10, "Ten Taka Only"},
		{15.5, "Fifteen Taka and Fifty Paisa Only"},
		{105, "One Hundred Five Taka Only"},
		{1250.5, "One Thousand Two Hundred Fifty Taka and Fifty Paisa Only"},
		{100000, "One Lakh Taka Only"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Taka Only"},
		{0.25, "Zero Taka and Twenty Five Paisa Only"},
	}

	for _, tt := range tests {
		if got := InWords(tt.amount); got != tt.want {
			t.Errorf("InWords(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
