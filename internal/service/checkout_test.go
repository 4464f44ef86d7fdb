package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/adega-tatuape/adega-storefront-service/internal/config"
	"github.com/adega-tatuape/adega-storefront-service/internal/errs"
	"github.com/adega-tatuape/adega-storefront-service/internal/events"
	"github.com/adega-tatuape/adega-storefront-service/internal/models"
)

type fakeOrderStore struct {
	createErr error
	created   *models.Order
	items     []models.OrderItem
	nextID    int64
}

func (f *fakeOrderStore) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = order
	f.items = items
	if f.nextID == 0 {
		f.nextID = 1
	}
	return f.nextID, nil
}

func (f *fakeOrderStore) ListAll(ctx context.Context) ([]models.OrderWithItems, error) {
	return nil, nil
}

type capturingPublisher struct {
	published *models.Order
}

func (p *capturingPublisher) PublishOrderPlaced(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	p.published = order
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

var testStoreConfig = config.StoreConfig{
	WhatsAppNumber: "5511970603441",
	PixKey:         "pix@example.com",
}

func newCheckoutFixture(sessions SessionStore, orders OrderStore, publisher events.Publisher) *CheckoutService {
	svc := NewCheckoutService(orders, sessions, publisher, testStoreConfig, zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2025, 3, 15, 20, 30, 0, 0, time.UTC)
	}
	return svc
}

func cartWithSkol(sessions *fakeSessionStore) {
	sessions.carts["sess-1"] = []models.CartLine{
		{ProductID: 1, Name: "Skol Lata 350ml", Price: 4.50, Quantity: 2, Subtotal: 9.00},
	}
}

func validCustomer() models.Customer {
	return models.Customer{
		Name:    "João Silva",
		Phone:   "11999998888",
		Address: "Rua Tuiuti, 100",
	}
}

func TestCheckout_Finalize(t *testing.T) {
	sessions := newFakeSessionStore()
	cartWithSkol(sessions)
	orders := &fakeOrderStore{nextID: 42}
	publisher := &capturingPublisher{}

	svc := newCheckoutFixture(sessions, orders, publisher)

	placed, err := svc.Finalize(context.Background(), "sess-1", validCustomer())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if placed.Order.ID != 42 {
		t.Errorf("Expected order ID 42, got %d", placed.Order.ID)
	}
	if placed.Order.Status != models.OrderStatusPending {
		t.Errorf("Expected status %q, got %q", models.OrderStatusPending, placed.Order.Status)
	}
	if placed.Order.Total.StringFixed(2) != "9.00" {
		t.Errorf("Expected total 9.00, got %s", placed.Order.Total.StringFixed(2))
	}

	if len(placed.Items) != 1 {
		t.Fatalf("Expected 1 order item, got %d", len(placed.Items))
	}
	if placed.Items[0].Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", placed.Items[0].Quantity)
	}
	if placed.Items[0].UnitPrice.StringFixed(2) != "4.50" {
		t.Errorf("Expected unit price 4.50, got %s", placed.Items[0].UnitPrice.StringFixed(2))
	}
	if placed.Items[0].OrderID != 42 {
		t.Errorf("Expected items stamped with order ID 42, got %d", placed.Items[0].OrderID)
	}

	if !strings.Contains(placed.Message, "Qtd: 2 x R$ 4.50") {
		t.Errorf("Expected line quantity block in message:\n%s", placed.Message)
	}
	if !strings.Contains(placed.Message, "💰 *TOTAL: R$ 9.00*") {
		t.Errorf("Expected total block in message:\n%s", placed.Message)
	}
	if !strings.HasPrefix(placed.WhatsAppURL, "https://wa.me/5511970603441?text=") {
		t.Errorf("Unexpected WhatsApp URL: %s", placed.WhatsAppURL)
	}

	if len(sessions.carts["sess-1"]) != 0 {
		t.Error("Expected cart cleared after checkout")
	}
	if publisher.published == nil {
		t.Error("Expected order event published")
	}
}

func TestCheckout_Finalize_EmptyCart(t *testing.T) {
	sessions := newFakeSessionStore()
	orders := &fakeOrderStore{}

	svc := newCheckoutFixture(sessions, orders, events.NoopPublisher{})

	_, err := svc.Finalize(context.Background(), "sess-1", validCustomer())
	if !errors.Is(err, errs.ErrEmptyCart) {
		t.Fatalf("Expected ErrEmptyCart, got %v", err)
	}
	if orders.created != nil {
		t.Error("Expected no order persisted for empty cart")
	}
}

func TestCheckout_Finalize_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		customer models.Customer
	}{
		{"missing name", models.Customer{Phone: "11999998888", Address: "Rua Tuiuti, 100"}},
		{"missing phone", models.Customer{Name: "João", Address: "Rua Tuiuti, 100"}},
		{"missing address", models.Customer{Name: "João", Phone: "11999998888"}},
		{"whitespace only", models.Customer{Name: "  ", Phone: "11999998888", Address: "Rua Tuiuti, 100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := newFakeSessionStore()
			cartWithSkol(sessions)
			orders := &fakeOrderStore{}

			svc := newCheckoutFixture(sessions, orders, events.NoopPublisher{})

			_, err := svc.Finalize(context.Background(), "sess-1", tt.customer)
			if !errors.Is(err, errs.ErrMissingFields) {
				t.Fatalf("Expected ErrMissingFields, got %v", err)
			}
			if len(sessions.carts["sess-1"]) == 0 {
				t.Error("Expected cart preserved after validation failure")
			}
		})
	}
}

func TestCheckout_Finalize_PersistFailureKeepsCart(t *testing.T) {
	sessions := newFakeSessionStore()
	cartWithSkol(sessions)
	orders := &fakeOrderStore{createErr: errors.New("connection refused")}

	svc := newCheckoutFixture(sessions, orders, events.NoopPublisher{})

	_, err := svc.Finalize(context.Background(), "sess-1", validCustomer())
	if err == nil {
		t.Fatal("Expected error when persistence fails")
	}
	if len(sessions.carts["sess-1"]) == 0 {
		t.Error("Expected cart preserved when the order was not persisted")
	}
}

func TestCheckout_Finalize_MultiLineTotal(t *testing.T) {
	sessions := newFakeSessionStore()
	sessions.carts["sess-1"] = []models.CartLine{
		{ProductID: 1, Name: "Skol Lata 350ml", Price: 4.50, Quantity: 2, Subtotal: 9.00},
		{ProductID: 2, Name: "Vinho Tinto 750ml", Price: 32.90, Quantity: 1, Subtotal: 32.90},
	}

	svc := newCheckoutFixture(sessions, &fakeOrderStore{}, events.NoopPublisher{})

	placed, err := svc.Finalize(context.Background(), "sess-1", validCustomer())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if placed.Order.Total.StringFixed(2) != "41.90" {
		t.Errorf("Expected total 41.90, got %s", placed.Order.Total.StringFixed(2))
	}
	if len(placed.Items) != 2 {
		t.Errorf("Expected 2 order items, got %d", len(placed.Items))
	}
}
