package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Admin handles GET /admin, listing every order most recent first.
func (h *Handlers) Admin(c *gin.Context) {
	ctx := c.Request.Context()

	orders, err := h.checkout.ListOrders(ctx)
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"message": "Não foi possível carregar os pedidos",
		})
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"pedidos":     orders,
		"total_itens": h.carts.ItemCount(ctx, sessionID(c)),
	})
}
