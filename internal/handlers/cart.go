package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adega-tatuape/adega-storefront-service/internal/cart"
)

type cartItemRequest struct {
	ProductID int64 `json:"produto_id" form:"produto_id"`
	Quantity  int   `json:"quantidade" form:"quantidade"`
}

// AddToCart handles POST /adicionar_carrinho. The storefront script
// posts JSON; plain form posts from noscript pages are accepted too,
// answered with a redirect and a flash instead of a JSON body.
func (h *Handlers) AddToCart(c *gin.Context) {
	isJSON := strings.Contains(c.ContentType(), "application/json")

	var req cartItemRequest
	if isJSON {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
			return
		}
	} else {
		if err := c.ShouldBind(&req); err != nil {
			h.redirectWithFlash(c, "/", "error", "Dados inválidos")
			return
		}
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	itemCount, err := h.carts.AddItem(c.Request.Context(), sessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		if isJSON {
			c.JSON(statusFor(err), gin.H{"error": userMessage(err)})
			return
		}
		h.redirectWithFlash(c, "/", "error", userMessage(err))
		return
	}

	if isJSON {
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"message":     "Produto adicionado ao carrinho!",
			"total_itens": itemCount,
		})
		return
	}
	h.redirectWithFlash(c, "/", "success", "Produto adicionado ao carrinho!")
}

// ViewCart handles GET /carrinho.
func (h *Handlers) ViewCart(c *gin.Context) {
	ctx := c.Request.Context()
	sid := sessionID(c)

	lines, total := h.carts.GetCart(ctx, sid)

	c.HTML(http.StatusOK, "carrinho.html", gin.H{
		"carrinho":    lines,
		"total":       total,
		"total_itens": cart.ItemCount(lines),
		"flashes":     h.flashes.PopFlashes(ctx, sid),
	})
}

// RemoveFromCart handles GET /remover_carrinho/:id. Removing a product
// that is not in the cart still redirects with the same notice.
func (h *Handlers) RemoveFromCart(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/carrinho")
		return
	}

	if err := h.carts.RemoveItem(c.Request.Context(), sessionID(c), id); err != nil {
		h.redirectWithFlash(c, "/carrinho", "error", "Erro ao remover produto")
		return
	}
	h.redirectWithFlash(c, "/carrinho", "info", "Produto removido do carrinho!")
}

// UpdateQuantity handles POST /atualizar_quantidade (JSON only).
func (h *Handlers) UpdateQuantity(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
		return
	}

	newTotal, err := h.carts.UpdateQuantity(c.Request.Context(), sessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": userMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"novo_total": newTotal,
	})
}
