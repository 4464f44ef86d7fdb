// Package cart implements the pure list operations behind a session
// shopping cart. Persistence and stock checks live in the service
// layer; everything here is straight arithmetic over cart lines.
package cart

import (
	"github.com/adega-tatuape/adega-storefront-service/internal/models"
)

// Find returns the index of the line for productID, or -1 when the
// product is not in the cart.
func Find(lines []models.CartLine, productID int64) int {
	for i := range lines {
		if lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Upsert merges quantity into the existing line for the product, or
// appends a new line snapshotting the product's current name, price
// and image. Subtotals are recomputed on the spot, never left stale.
func Upsert(lines []models.CartLine, product *models.Product, quantity int) []models.CartLine {
	if i := Find(lines, product.ID); i >= 0 {
		lines[i].Quantity += quantity
		lines[i].Subtotal = float64(lines[i].Quantity) * lines[i].Price
		return lines
	}

	price, _ := product.Price.Float64()
	return append(lines, models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     price,
		Quantity:  quantity,
		Subtotal:  float64(quantity) * price,
		ImageURL:  product.ImageURL,
	})
}

// Remove filters out the line for productID. An id that is not in the
// cart is a no-op, not an error.
func Remove(lines []models.CartLine, productID int64) []models.CartLine {
	out := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.ProductID != productID {
			out = append(out, line)
		}
	}
	return out
}

// SetQuantity updates the line for productID in place and recomputes
// its subtotal. Returns false when the product is not in the cart.
func SetQuantity(lines []models.CartLine, productID int64, quantity int) bool {
	i := Find(lines, productID)
	if i < 0 {
		return false
	}
	lines[i].Quantity = quantity
	lines[i].Subtotal = float64(quantity) * lines[i].Price
	return true
}

// Total sums all line subtotals. An empty cart totals zero.
func Total(lines []models.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Subtotal
	}
	return total
}

// ItemCount sums the quantities across all lines (the cart badge).
func ItemCount(lines []models.CartLine) int {
	var count int
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
