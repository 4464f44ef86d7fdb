package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adega-tatuape/adega-storefront-service/internal/config"
	"github.com/adega-tatuape/adega-storefront-service/internal/models"
	"github.com/adega-tatuape/adega-storefront-service/internal/service"
	"github.com/adega-tatuape/adega-storefront-service/internal/session"
)

// ContextSessionID is the gin context key the session middleware sets.
const ContextSessionID = "session_id"

// Catalog is the product browsing contract the handlers consume.
type Catalog interface {
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}

// Carts is the session cart contract.
type Carts interface {
	GetCart(ctx context.Context, sessionID string) ([]models.CartLine, float64)
	ItemCount(ctx context.Context, sessionID string) int
	AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (int, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) error
	UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (float64, error)
}

// Checkout is the order finalization contract.
type Checkout interface {
	Finalize(ctx context.Context, sessionID string, customer models.Customer) (*service.PlacedOrder, error)
	ListOrders(ctx context.Context) ([]models.OrderWithItems, error)
}

// Flasher queues and drains one-shot user notices per session.
type Flasher interface {
	AddFlash(ctx context.Context, sessionID, level, message string)
	PopFlashes(ctx context.Context, sessionID string) []session.Flash
}

// Handlers holds all HTTP handlers for the storefront.
type Handlers struct {
	catalog  Catalog
	carts    Carts
	checkout Checkout
	flashes  Flasher
	config   *config.Config
	logger   *zap.Logger
}

func New(
	catalog Catalog,
	carts Carts,
	checkout Checkout,
	flashes Flasher,
	cfg *config.Config,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		catalog:  catalog,
		carts:    carts,
		checkout: checkout,
		flashes:  flashes,
		config:   cfg,
		logger:   logger,
	}
}

func sessionID(c *gin.Context) string {
	if v, ok := c.Get(ContextSessionID); ok {
		if sid, ok := v.(string); ok {
			return sid
		}
	}
	return ""
}
