// Package errs holds the error taxonomy of the storefront. Every
// sentinel here is recoverable at the request boundary.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound is returned for lookups of unknown product IDs.
	ErrProductNotFound = errors.New("produto não encontrado")

	// ErrInsufficientStock is returned when a requested quantity exceeds
	// the product's current stock.
	ErrInsufficientStock = errors.New("estoque insuficiente")

	// ErrInvalidQuantity is returned for quantities <= 0.
	ErrInvalidQuantity = errors.New("quantidade deve ser maior que zero")

	// ErrMissingFields is returned when required checkout fields are blank.
	ErrMissingFields = errors.New("todos os campos são obrigatórios")

	// ErrEmptyCart is returned when checkout is attempted with no cart lines.
	ErrEmptyCart = errors.New("carrinho vazio")
)

// Wrap annotates err with msg, keeping it matchable via errors.Is.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
