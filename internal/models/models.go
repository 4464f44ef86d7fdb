// Package models holds the storefront's data structures. JSON tags
// follow the PT-BR wire naming of the public API and seed dataset.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPending is the only status the storefront assigns; order
// fulfillment happens over WhatsApp, outside this system.
const OrderStatusPending = "pendente"

// Product is a catalog row.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Category    string          `json:"categoria"`
	ImageURL    string          `json:"imagem_url"`
	Stock       int             `json:"estoque"`
	Active      bool            `json:"ativo"`
	CreatedAt   time.Time       `json:"data_criacao"`
}

// CartLine is one product entry in a session cart. Name, price and
// image are snapshots taken when the line was added; the price is a
// float because the cart is throwaway session state, the fixed-point
// amounts live on the persisted order.
type CartLine struct {
	ProductID int64   `json:"produto_id"`
	Name      string  `json:"nome"`
	Price     float64 `json:"preco"`
	Quantity  int     `json:"quantidade"`
	Subtotal  float64 `json:"subtotal"`
	ImageURL  string  `json:"imagem_url"`
}

// Customer carries the checkout form fields.
type Customer struct {
	Name    string `json:"nome" form:"nome"`
	Phone   string `json:"telefone" form:"telefone"`
	Address string `json:"endereco" form:"endereco"`
	Notes   string `json:"observacoes" form:"observacoes"`
}

// Order is a persisted order header.
type Order struct {
	ID              int64           `json:"id"`
	CustomerName    string          `json:"nome_cliente"`
	CustomerPhone   string          `json:"telefone_cliente"`
	CustomerAddress string          `json:"endereco_cliente"`
	Total           decimal.Decimal `json:"valor_total"`
	Status          string          `json:"status"`
	Notes           string          `json:"observacoes"`
	CreatedAt       time.Time       `json:"data_pedido"`
}

// OrderItem is one line of a persisted order.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"pedido_id"`
	ProductID int64           `json:"produto_id"`
	Quantity  int             `json:"quantidade"`
	UnitPrice decimal.Decimal `json:"preco_unitario"`
}

// Subtotal is the line amount: quantity times the unit price.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderWithItems is the admin listing shape: the header plus its lines.
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"itens"`
}
