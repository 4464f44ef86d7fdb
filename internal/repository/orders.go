package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/adega-tatuape/adega-storefront-service/internal/models"
)

// OrderRepository persists finalized orders using PostgreSQL.
type OrderRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewOrderRepository(db *sql.DB, logger *zap.Logger) *OrderRepository {
	return &OrderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateWithItems persists the order header and its items in a single
// transaction, so a failed item insert never leaves a headless order
// behind. Returns the generated order id.
func (r *OrderRepository) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var orderID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO pedidos (nome_cliente, telefone_cliente, endereco_cliente, valor_total, status, observacoes, data_pedido)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		order.CustomerName,
		order.CustomerPhone,
		order.CustomerAddress,
		order.Total,
		order.Status,
		order.Notes,
		order.CreatedAt,
	).Scan(&orderID)
	if err != nil {
		r.logger.Error("failed to insert order",
			zap.String("cliente", order.CustomerName),
			zap.Error(err))
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO itens_pedido (pedido_id, produto_id, quantidade, preco_unitario)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx, orderID, item.ProductID, item.Quantity, item.UnitPrice); err != nil {
			r.logger.Error("failed to insert order item",
				zap.Int64("order_id", orderID),
				zap.Int64("product_id", item.ProductID),
				zap.Error(err))
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	r.logger.Info("order persisted",
		zap.Int64("order_id", orderID),
		zap.String("total", order.Total.StringFixed(2)),
		zap.Int("items", len(items)))

	return orderID, nil
}

// ListAll returns every order, most recent first, with its items
// attached. The item join is explicit: one query for the headers, one
// for all their items.
func (r *OrderRepository) ListAll(ctx context.Context) ([]models.OrderWithItems, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nome_cliente, telefone_cliente, endereco_cliente, valor_total, status, observacoes, data_pedido
		FROM pedidos
		ORDER BY data_pedido DESC
	`)
	if err != nil {
		r.logger.Error("failed to list orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]models.OrderWithItems, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var (
			order models.Order
			notes sql.NullString
		)
		if err := rows.Scan(
			&order.ID,
			&order.CustomerName,
			&order.CustomerPhone,
			&order.CustomerAddress,
			&order.Total,
			&order.Status,
			&notes,
			&order.CreatedAt,
		); err != nil {
			return nil, err
		}
		order.Notes = notes.String
		orders = append(orders, models.OrderWithItems{Order: order, Items: []models.OrderItem{}})
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT id, pedido_id, produto_id, quantidade, preco_unitario
		FROM itens_pedido
		WHERE pedido_id = ANY($1)
		ORDER BY id
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	byOrder := make(map[int64][]models.OrderItem, len(orders))
	for itemRows.Next() {
		var item models.OrderItem
		if err := itemRows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if items, ok := byOrder[orders[i].ID]; ok {
			orders[i].Items = items
		}
	}
	return orders, nil
}
