package whatsapp

import (
	"strings"
	"testing"
	"time"

	"github.com/adega-tatuape/adega-storefront-service/internal/models"
)

var testPlacedAt = time.Date(2025, 3, 15, 20, 30, 0, 0, time.UTC)

func testCustomer() models.Customer {
	return models.Customer{
		Name:    "João Silva",
		Phone:   "11999998888",
		Address: "Rua Tuiuti, 100",
	}
}

func TestBuildOrderMessage(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: 1, Name: "Skol Lata 350ml", Price: 4.50, Quantity: 2, Subtotal: 9.00},
	}

	msg := BuildOrderMessage(testCustomer(), lines, "pix@example.com", testPlacedAt)

	for _, want := range []string{
		"🍷 *PEDIDO ADEGA RÁDIO TATUAPÉ FM* 🍷",
		"👤 *Cliente:* João Silva",
		"📞 *Telefone:* 11999998888",
		"📍 *Endereço:* Rua Tuiuti, 100",
		"🕐 *Data/Hora:* 15/03/2025 às 20:30",
		"• Skol Lata 350ml",
		"Qtd: 2 x R$ 4.50",
		"Subtotal: R$ 9.00",
		"💰 *TOTAL: R$ 9.00*",
		"PIX: pix@example.com",
		"Obrigado pela preferência! 🙏",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Message missing %q\nFull message:\n%s", want, msg)
		}
	}
}

func TestBuildOrderMessage_TotalSumsAllLines(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: 1, Name: "Skol", Price: 4.50, Quantity: 2, Subtotal: 9.00},
		{ProductID: 2, Name: "Vinho Tinto", Price: 32.90, Quantity: 1, Subtotal: 32.90},
	}

	msg := BuildOrderMessage(testCustomer(), lines, "pix@example.com", testPlacedAt)

	if !strings.Contains(msg, "💰 *TOTAL: R$ 41.90*") {
		t.Errorf("Expected total 41.90 in message:\n%s", msg)
	}
}

func TestDeepLink(t *testing.T) {
	link := DeepLink("5511970603441", "pedido: água")

	if !strings.HasPrefix(link, "https://wa.me/5511970603441?text=") {
		t.Fatalf("Unexpected link prefix: %s", link)
	}
	// QueryEscape: space becomes +, accented chars are percent-encoded.
	if !strings.Contains(link, "pedido%3A+%C3%A1gua") {
		t.Errorf("Expected escaped message in link, got %s", link)
	}
}
