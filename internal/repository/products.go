package repository

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/adega-tatuape/adega-storefront-service/internal/errs"
	"github.com/adega-tatuape/adega-storefront-service/internal/models"
)

// ProductRepository reads and seeds the catalog using PostgreSQL.
type ProductRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewProductRepository(db *sql.DB, logger *zap.Logger) *ProductRepository {
	return &ProductRepository{
		db:     db,
		logger: logger,
	}
}

// ListActive returns the active products, optionally filtered by
// category, ordered by name.
func (r *ProductRepository) ListActive(ctx context.Context, category string) ([]models.Product, error) {
	query := `
		SELECT id, nome, descricao, preco, categoria, imagem_url, estoque, ativo, data_criacao
		FROM produtos
		WHERE ativo = TRUE
	`
	args := make([]interface{}, 0, 1)

	if category != "" {
		query += " AND categoria = $1"
		args = append(args, category)
	}
	query += " ORDER BY nome"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list products",
			zap.String("categoria", category),
			zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// GetByID retrieves one product by its identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `
		SELECT id, nome, descricao, preco, categoria, imagem_url, estoque, ativo, data_criacao
		FROM produtos
		WHERE id = $1
	`

	var (
		product     models.Product
		description sql.NullString
		imageURL    sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&description,
		&product.Price,
		&product.Category,
		&imageURL,
		&product.Stock,
		&product.Active,
		&product.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errs.ErrProductNotFound
	}
	if err != nil {
		r.logger.Error("failed to fetch product",
			zap.Int64("product_id", id),
			zap.Error(err))
		return nil, err
	}

	product.Description = description.String
	product.ImageURL = imageURL.String
	return &product, nil
}

// Count returns the number of catalog rows, seeded or not.
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM produtos").Scan(&count)
	return count, err
}

// InsertProducts writes a batch of products in one transaction. Used
// only by seeding.
func (r *ProductRepository) InsertProducts(ctx context.Context, products []models.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO produtos (nome, descricao, preco, categoria, imagem_url, estoque, ativo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.ExecContext(ctx,
			p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.Stock, p.Active,
		); err != nil {
			return errs.Wrap("inserir produto "+p.Name, err)
		}
	}

	return tx.Commit()
}

func scanProduct(rows *sql.Rows) (models.Product, error) {
	var (
		product     models.Product
		description sql.NullString
		imageURL    sql.NullString
	)

	err := rows.Scan(
		&product.ID,
		&product.Name,
		&description,
		&product.Price,
		&product.Category,
		&imageURL,
		&product.Stock,
		&product.Active,
		&product.CreatedAt,
	)
	if err != nil {
		return models.Product{}, err
	}

	product.Description = description.String
	product.ImageURL = imageURL.String
	return product, nil
}
