package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/adega-tatuape/adega-storefront-service/internal/models"
)

// ProductReader is the catalog read contract the services depend on.
type ProductReader interface {
	ListActive(ctx context.Context, category string) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// CatalogService exposes catalog browsing to the handlers.
type CatalogService struct {
	products ProductReader
	logger   *zap.Logger
}

func NewCatalogService(products ProductReader, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		logger:   logger,
	}
}

// ListProducts returns the active products, optionally filtered by category.
func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	return s.products.ListActive(ctx, category)
}

// GetProduct returns one product or errs.ErrProductNotFound.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}
