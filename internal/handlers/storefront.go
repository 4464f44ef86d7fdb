package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adega-tatuape/adega-storefront-service/internal/errs"
)

// Index handles GET /, the catalog, optionally filtered by categoria.
func (h *Handlers) Index(c *gin.Context) {
	ctx := c.Request.Context()
	sid := sessionID(c)

	category := c.Query("categoria")

	products, err := h.catalog.ListProducts(ctx, category)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"message": "Não foi possível carregar o catálogo",
		})
		return
	}

	var categoryTitle string
	if category != "" {
		categoryTitle = strings.ToUpper(category[:1]) + category[1:]
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"produtos":         products,
		"categoria_atual":  category,
		"titulo_categoria": categoryTitle,
		"total_itens":      h.carts.ItemCount(ctx, sid),
		"flashes":          h.flashes.PopFlashes(ctx, sid),
	})
}

// ProductDetails handles GET /produto/:id.
func (h *Handlers) ProductDetails(c *gin.Context) {
	ctx := c.Request.Context()
	sid := sessionID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
		return
	}

	product, err := h.catalog.GetProduct(ctx, id)
	if errors.Is(err, errs.ErrProductNotFound) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch product",
			zap.Int64("product_id", id),
			zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"message": "Não foi possível carregar o produto",
		})
		return
	}

	c.HTML(http.StatusOK, "produto_detalhes.html", gin.H{
		"produto":     product,
		"total_itens": h.carts.ItemCount(ctx, sid),
		"flashes":     h.flashes.PopFlashes(ctx, sid),
	})
}
