package currency

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "R$ 0,00"},
		{4.5, "R$ 4,50"},
		{9.99, "R$ 9,99"},
		{1234.5, "R$ 1.234,50"},
		{999.999, "R$ 1.000,00"},
		{1000000, "R$ 1.000.000,00"},
		{-4.5, "R$ -4,50"},
	}

	for _, tt := range tests {
		if got := FormatBRL(tt.value); got != tt.expected {
			t.Errorf("FormatBRL(%v): expected %q, got %q", tt.value, tt.expected, got)
		}
	}
}

func TestFormatBRLDecimal(t *testing.T) {
	v := decimal.NewFromFloat(1234.56)
	if got := FormatBRLDecimal(v); got != "R$ 1.234,56" {
		t.Errorf("Expected R$ 1.234,56, got %q", got)
	}
}
