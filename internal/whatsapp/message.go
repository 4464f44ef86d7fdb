// Package whatsapp builds the pre-filled order summary and the wa.me
// deep link handed to the buyer at the end of checkout. The operator
// receives the order as a plain WhatsApp message; there is no API
// integration behind it.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/adega-tatuape/adega-storefront-service/internal/models"
)

const (
	header    = "🍷 *PEDIDO ADEGA RÁDIO TATUAPÉ FM* 🍷\n\n"
	separator = "------------------------------"
)

// BuildOrderMessage renders the deterministic multi-line order summary:
// fixed header, customer block, one block per cart line, grand total
// and the PIX payment instructions. Amounts inside the message use two
// decimal places with a dot ("R$ 4.50"); the Brazilian comma format is
// a template-only concern.
func BuildOrderMessage(customer models.Customer, lines []models.CartLine, pixKey string, placedAt time.Time) string {
	var b strings.Builder

	b.WriteString(header)
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", customer.Name)
	fmt.Fprintf(&b, "📞 *Telefone:* %s\n", customer.Phone)
	fmt.Fprintf(&b, "📍 *Endereço:* %s\n", customer.Address)
	fmt.Fprintf(&b, "🕐 *Data/Hora:* %s\n\n", placedAt.Format("02/01/2006 às 15:04"))

	b.WriteString("🛒 *ITENS DO PEDIDO:*\n")
	b.WriteString(separator + "\n")

	var total float64
	for _, line := range lines {
		subtotal := float64(line.Quantity) * line.Price
		total += subtotal
		fmt.Fprintf(&b, "• %s\n", line.Name)
		fmt.Fprintf(&b, "  Qtd: %d x R$ %.2f\n", line.Quantity, line.Price)
		fmt.Fprintf(&b, "  Subtotal: R$ %.2f\n\n", subtotal)
	}

	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "💰 *TOTAL: R$ %.2f*\n\n", total)

	b.WriteString("💳 *PAGAMENTO:*\n")
	fmt.Fprintf(&b, "PIX: %s\n\n", pixKey)
	b.WriteString("⚠️ *IMPORTANTE:*\n")
	b.WriteString("• Efetue o pagamento via PIX\n")
	b.WriteString("• Envie o comprovante para este número\n")
	b.WriteString("• A entrega será liberada após confirmação\n\n")
	b.WriteString("Obrigado pela preferência! 🙏")

	return b.String()
}

// DeepLink percent-encodes message into the wa.me URL for number.
func DeepLink(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}
