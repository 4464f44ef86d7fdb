package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adega-tatuape/adega-storefront-service/internal/cart"
	"github.com/adega-tatuape/adega-storefront-service/internal/errs"
	"github.com/adega-tatuape/adega-storefront-service/internal/models"
)

// CheckoutPage handles GET /checkout. An empty cart bounces back to the
// catalog instead of rendering an empty form.
func (h *Handlers) CheckoutPage(c *gin.Context) {
	ctx := c.Request.Context()
	sid := sessionID(c)

	lines, total := h.carts.GetCart(ctx, sid)
	if len(lines) == 0 {
		h.redirectWithFlash(c, "/", "warning", "Carrinho vazio!")
		return
	}

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"carrinho":    lines,
		"total":       total,
		"total_itens": cart.ItemCount(lines),
		"flashes":     h.flashes.PopFlashes(ctx, sid),
	})
}

// FinalizeOrder handles POST /finalizar_pedido.
func (h *Handlers) FinalizeOrder(c *gin.Context) {
	sid := sessionID(c)

	var customer models.Customer
	if err := c.ShouldBind(&customer); err != nil {
		h.redirectWithFlash(c, "/checkout", "error", "Dados inválidos")
		return
	}

	placed, err := h.checkout.Finalize(c.Request.Context(), sid, customer)
	switch {
	case errors.Is(err, errs.ErrEmptyCart):
		h.redirectWithFlash(c, "/", "warning", userMessage(err))
		return
	case errors.Is(err, errs.ErrMissingFields):
		h.redirectWithFlash(c, "/checkout", "error", userMessage(err))
		return
	case err != nil:
		h.logger.Error("checkout failed", zap.Error(err))
		h.redirectWithFlash(c, "/checkout", "error", "Erro ao finalizar o pedido. Tente novamente.")
		return
	}

	c.HTML(http.StatusOK, "pedido_confirmado.html", gin.H{
		"pedido":       placed.Order,
		"itens":        placed.Items,
		"whatsapp_url": placed.WhatsAppURL,
		"total_itens":  0,
	})
}
