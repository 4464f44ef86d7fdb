package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/adega-tatuape/adega-storefront-service/internal/cart"
	"github.com/adega-tatuape/adega-storefront-service/internal/errs"
	"github.com/adega-tatuape/adega-storefront-service/internal/metrics"
	"github.com/adega-tatuape/adega-storefront-service/internal/models"
)

// SessionStore is the per-session cart persistence contract.
type SessionStore interface {
	GetCart(ctx context.Context, sessionID string) []models.CartLine
	SaveCart(ctx context.Context, sessionID string, lines []models.CartLine) error
	ClearCart(ctx context.Context, sessionID string) error
}

// CartService owns the session cart mutations. Every operation is a
// read-modify-write of the full cart value: two concurrent requests in
// the same session are not serialized, the last write wins. Stock is
// checked at mutation time, never reserved.
type CartService struct {
	products ProductReader
	sessions SessionStore
	logger   *zap.Logger
}

func NewCartService(products ProductReader, sessions SessionStore, logger *zap.Logger) *CartService {
	return &CartService{
		products: products,
		sessions: sessions,
		logger:   logger,
	}
}

// GetCart returns the session's cart lines and their total.
func (s *CartService) GetCart(ctx context.Context, sessionID string) ([]models.CartLine, float64) {
	lines := s.sessions.GetCart(ctx, sessionID)
	return lines, cart.Total(lines)
}

// ItemCount returns the summed quantity across the session's cart.
func (s *CartService) ItemCount(ctx context.Context, sessionID string) int {
	return cart.ItemCount(s.sessions.GetCart(ctx, sessionID))
}

// AddItem puts quantity units of the product into the session cart,
// merging into an existing line when the product is already there.
// Returns the resulting item count.
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, errs.ErrInvalidQuantity
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return 0, err
	}
	if product.Stock < quantity {
		return 0, errs.ErrInsufficientStock
	}

	lines := s.sessions.GetCart(ctx, sessionID)
	lines = cart.Upsert(lines, product, quantity)
	if err := s.sessions.SaveCart(ctx, sessionID, lines); err != nil {
		return 0, errs.Wrap("salvar carrinho", err)
	}

	metrics.CartAdds.Inc()
	s.logger.Info("item added to cart",
		zap.Int64("product_id", productID),
		zap.Int("quantity", quantity))

	return cart.ItemCount(lines), nil
}

// RemoveItem drops the product's line from the cart. A product that is
// not in the cart is a silent no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int64) error {
	lines := s.sessions.GetCart(ctx, sessionID)
	return s.sessions.SaveCart(ctx, sessionID, cart.Remove(lines, productID))
}

// UpdateQuantity sets the line's quantity, recomputing its subtotal,
// and returns the new cart total. A product absent from the cart
// leaves it unchanged without error, the storefront's historical
// behavior, kept on purpose.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (float64, error) {
	if quantity <= 0 {
		return 0, errs.ErrInvalidQuantity
	}

	lines := s.sessions.GetCart(ctx, sessionID)
	if cart.Find(lines, productID) >= 0 {
		product, err := s.products.GetByID(ctx, productID)
		if err != nil {
			return 0, err
		}
		if product.Stock < quantity {
			return 0, errs.ErrInsufficientStock
		}

		cart.SetQuantity(lines, productID, quantity)
		if err := s.sessions.SaveCart(ctx, sessionID, lines); err != nil {
			return 0, errs.Wrap("salvar carrinho", err)
		}
	}

	return cart.Total(lines), nil
}
