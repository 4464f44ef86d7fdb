package server

import (
	"context"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/adega-tatuape/adega-storefront-service/internal/config"
	"github.com/adega-tatuape/adega-storefront-service/internal/currency"
	"github.com/adega-tatuape/adega-storefront-service/internal/handlers"
	"github.com/adega-tatuape/adega-storefront-service/internal/metrics"
)

type Server struct {
	config   *config.Config
	router   *gin.Engine
	handlers *handlers.Handlers
	http     *http.Server
	logger   *zap.Logger
}

func New(cfg *config.Config, h *handlers.Handlers, logger *zap.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	router.Use(metrics.Middleware())
	router.Use(SessionMiddleware(cfg.Session.CookieName, cfg.Session.TTL))

	// FuncMap must be registered before the templates are parsed.
	router.SetFuncMap(template.FuncMap{
		"currency":    currency.FormatBRL,
		"currencyDec": currency.FormatBRLDecimal,
	})
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./web/static")

	s := &Server{
		config:   cfg,
		router:   router,
		handlers: h,
		logger:   logger,
	}

	s.setupRoutes()

	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handlers.Health)
	s.router.GET("/ready", s.handlers.Ready)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/", s.handlers.Index)
	s.router.GET("/produto/:id", s.handlers.ProductDetails)

	s.router.POST("/adicionar_carrinho", s.handlers.AddToCart)
	s.router.GET("/carrinho", s.handlers.ViewCart)
	s.router.GET("/remover_carrinho/:id", s.handlers.RemoveFromCart)
	s.router.POST("/atualizar_quantidade", s.handlers.UpdateQuantity)

	s.router.GET("/checkout", s.handlers.CheckoutPage)
	s.router.POST("/finalizar_pedido", s.handlers.FinalizeOrder)

	s.router.GET("/admin", s.handlers.Admin)

	s.router.GET("/sitemap.xml", s.handlers.Sitemap)
	s.router.GET("/robots.txt", s.handlers.Robots)
}

func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
