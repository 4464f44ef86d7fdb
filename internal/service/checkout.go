package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/adega-tatuape/adega-storefront-service/internal/config"
	"github.com/adega-tatuape/adega-storefront-service/internal/errs"
	"github.com/adega-tatuape/adega-storefront-service/internal/events"
	"github.com/adega-tatuape/adega-storefront-service/internal/metrics"
	"github.com/adega-tatuape/adega-storefront-service/internal/models"
	"github.com/adega-tatuape/adega-storefront-service/internal/whatsapp"
)

// OrderStore is the order persistence contract.
type OrderStore interface {
	CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) (int64, error)
	ListAll(ctx context.Context) ([]models.OrderWithItems, error)
}

// PlacedOrder is the result of a successful checkout: the persisted
// snapshot, the formatted summary and the ready-to-send deep link.
type PlacedOrder struct {
	Order       models.Order
	Items       []models.OrderItem
	Message     string
	WhatsAppURL string
}

// CheckoutService turns a session cart into a persisted order plus a
// pre-filled WhatsApp link. The sequence is linear (validate, persist,
// format, clear) with no state machine behind it.
type CheckoutService struct {
	orders    OrderStore
	sessions  SessionStore
	publisher events.Publisher
	store     config.StoreConfig
	logger    *zap.Logger
	now       func() time.Time
}

func NewCheckoutService(
	orders OrderStore,
	sessions SessionStore,
	publisher events.Publisher,
	store config.StoreConfig,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		orders:    orders,
		sessions:  sessions,
		publisher: publisher,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// Finalize validates the cart and customer fields, persists the order
// snapshot (header and items in one transaction), builds the WhatsApp
// message and deep link, and clears the session cart. Unit prices are
// copied from the cart lines (price-at-order-time semantics); the live
// catalog price is not re-read.
func (s *CheckoutService) Finalize(ctx context.Context, sessionID string, customer models.Customer) (*PlacedOrder, error) {
	lines := s.sessions.GetCart(ctx, sessionID)
	if len(lines) == 0 {
		return nil, errs.ErrEmptyCart
	}

	if strings.TrimSpace(customer.Name) == "" ||
		strings.TrimSpace(customer.Phone) == "" ||
		strings.TrimSpace(customer.Address) == "" {
		return nil, errs.ErrMissingFields
	}

	placedAt := s.now()

	items := make([]models.OrderItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		unitPrice := decimal.NewFromFloat(line.Price).Round(2)
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
		})
		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	order := models.Order{
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
		Total:           total,
		Status:          models.OrderStatusPending,
		Notes:           customer.Notes,
		CreatedAt:       placedAt,
	}

	orderID, err := s.orders.CreateWithItems(ctx, &order, items)
	if err != nil {
		return nil, errs.Wrap("persistir pedido", err)
	}
	order.ID = orderID
	for i := range items {
		items[i].OrderID = orderID
	}

	message := whatsapp.BuildOrderMessage(customer, lines, s.store.PixKey, placedAt)
	link := whatsapp.DeepLink(s.store.WhatsAppNumber, message)

	if err := s.sessions.ClearCart(ctx, sessionID); err != nil {
		s.logger.Error("failed to clear cart after checkout",
			zap.String("session_id", sessionID),
			zap.Int64("order_id", orderID),
			zap.Error(err))
	}

	if err := s.publisher.PublishOrderPlaced(ctx, &order, items); err != nil {
		// The order is already committed; event loss is logged, not fatal.
		s.logger.Error("failed to publish order event",
			zap.Int64("order_id", orderID),
			zap.Error(err))
	}

	metrics.OrdersPlaced.Inc()
	s.logger.Info("order finalized",
		zap.Int64("order_id", orderID),
		zap.String("total", total.StringFixed(2)))

	return &PlacedOrder{
		Order:       order,
		Items:       items,
		Message:     message,
		WhatsAppURL: link,
	}, nil
}

// ListOrders returns every order, most recent first (admin view).
func (s *CheckoutService) ListOrders(ctx context.Context) ([]models.OrderWithItems, error) {
	return s.orders.ListAll(ctx)
}
