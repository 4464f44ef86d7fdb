package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adega-tatuape/adega-storefront-service/internal/errs"
)

// statusFor maps the error taxonomy to HTTP statuses at the boundary.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrInvalidQuantity),
		errors.Is(err, errs.ErrMissingFields),
		errors.Is(err, errs.ErrEmptyCart):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// userMessage is the notice shown for each error, matching the
// storefront's user-facing copy.
func userMessage(err error) string {
	switch {
	case errors.Is(err, errs.ErrProductNotFound):
		return "Produto não encontrado"
	case errors.Is(err, errs.ErrInsufficientStock):
		return "Estoque insuficiente!"
	case errors.Is(err, errs.ErrInvalidQuantity):
		return "Quantidade deve ser maior que zero"
	case errors.Is(err, errs.ErrMissingFields):
		return "Todos os campos são obrigatórios!"
	case errors.Is(err, errs.ErrEmptyCart):
		return "Carrinho vazio!"
	default:
		return "Erro ao processar a solicitação"
	}
}

// redirectWithFlash queues a notice and sends the browser to location.
func (h *Handlers) redirectWithFlash(c *gin.Context, location, level, message string) {
	h.flashes.AddFlash(c.Request.Context(), sessionID(c), level, message)
	c.Redirect(http.StatusFound, location)
}
