// Package currency formats monetary amounts the way the storefront
// displays them: "R$ 1.234,56" (dot for thousands, comma for decimals).
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders value with the Brazilian grouping used by the
// catalog and cart templates.
func FormatBRL(value float64) string {
	s := fmt.Sprintf("%.2f", value)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return "R$ " + sign + b.String() + "," + fracPart
}

// FormatBRLDecimal is FormatBRL for the fixed-point order amounts.
func FormatBRLDecimal(value decimal.Decimal) string {
	f, _ := value.Float64()
	return FormatBRL(f)
}
