package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var sitemapCategories = []string{
	"cerveja", "vinho", "destilados", "refrigerante", "agua", "energetico", "suco",
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap handles GET /sitemap.xml. Product and category URLs are built
// from the live catalog so the map never references delisted items.
func (h *Handlers) Sitemap(c *gin.Context) {
	base := h.config.Store.BaseURL
	today := time.Now().Format("2006-01-02")

	urls := []sitemapURL{
		{Loc: base + "/", LastMod: today, ChangeFreq: "daily", Priority: "1.0"},
		{Loc: base + "/carrinho", ChangeFreq: "always", Priority: "0.3"},
		{Loc: base + "/checkout", ChangeFreq: "always", Priority: "0.3"},
	}
	for _, cat := range sitemapCategories {
		urls = append(urls, sitemapURL{
			Loc:        fmt.Sprintf("%s/?categoria=%s", base, cat),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	products, err := h.catalog.ListProducts(c.Request.Context(), "")
	if err != nil {
		h.logger.Error("sitemap: failed to list products", zap.Error(err))
	}
	for _, p := range products {
		urls = append(urls, sitemapURL{
			Loc:        fmt.Sprintf("%s/produto/%d", base, p.ID),
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}

	c.XML(http.StatusOK, sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}

// Robots handles GET /robots.txt.
func (h *Handlers) Robots(c *gin.Context) {
	c.File("web/static/robots.txt")
}
