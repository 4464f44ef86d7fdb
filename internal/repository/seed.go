package repository

import (
	"context"
	"encoding/json"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/adega-tatuape/adega-storefront-service/internal/models"
)

// seedProduct mirrors the JSON shape of data/produtos.json.
type seedProduct struct {
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
	Category    string  `json:"categoria"`
	ImageURL    string  `json:"imagem_url"`
	Stock       int     `json:"estoque"`
}

type seedFile struct {
	Products []seedProduct `json:"produtos"`
}

// fallbackProducts keeps the shop bootable when the dataset file is
// missing or broken.
var fallbackProducts = []seedProduct{
	{
		Name:        "Cerveja Skol Lata 350ml",
		Description: "Cerveja pilsen gelada",
		Price:       4.50,
		Category:    "cerveja",
		ImageURL:    "https://images.unsplash.com/photo-1608270586620-248524c67de9?w=400&h=400&fit=crop&crop=center",
		Stock:       100,
	},
	{
		Name:        "Coca-Cola Lata 350ml",
		Description: "Refrigerante de cola gelado",
		Price:       4.50,
		Category:    "refrigerante",
		ImageURL:    "https://images.unsplash.com/photo-1581636625402-29b2a704ef13?w=400&h=400&fit=crop&crop=center",
		Stock:       120,
	},
}

// SeedIfEmpty populates the catalog on first boot. Idempotent: a
// non-empty product table short-circuits. The JSON dataset at path is
// the primary source; the hardcoded fallback set is used when it is
// unreadable or malformed.
func (r *ProductRepository) SeedIfEmpty(ctx context.Context, path string) error {
	count, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := loadSeedFile(path, r.logger)

	products := make([]models.Product, 0, len(seeds))
	for _, s := range seeds {
		products = append(products, models.Product{
			Name:        s.Name,
			Description: s.Description,
			Price:       decimal.NewFromFloat(s.Price).Round(2),
			Category:    s.Category,
			ImageURL:    s.ImageURL,
			Stock:       s.Stock,
			Active:      true,
		})
	}

	if err := r.InsertProducts(ctx, products); err != nil {
		return err
	}

	r.logger.Info("catalog seeded", zap.Int("products", len(products)))
	return nil
}

func loadSeedFile(path string, logger *zap.Logger) []seedProduct {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("seed dataset unreadable, using fallback",
			zap.String("path", path),
			zap.Error(err))
		return fallbackProducts
	}

	var f seedFile
	if err := json.Unmarshal(data, &f); err != nil {
		logger.Warn("seed dataset malformed, using fallback",
			zap.String("path", path),
			zap.Error(err))
		return fallbackProducts
	}
	if len(f.Products) == 0 {
		logger.Warn("seed dataset empty, using fallback", zap.String("path", path))
		return fallbackProducts
	}
	return f.Products
}
