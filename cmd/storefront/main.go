package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/adega-tatuape/adega-storefront-service/internal/config"
	"github.com/adega-tatuape/adega-storefront-service/internal/events"
	"github.com/adega-tatuape/adega-storefront-service/internal/handlers"
	"github.com/adega-tatuape/adega-storefront-service/internal/repository"
	"github.com/adega-tatuape/adega-storefront-service/internal/server"
	"github.com/adega-tatuape/adega-storefront-service/internal/service"
	"github.com/adega-tatuape/adega-storefront-service/internal/session"

	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("starting adega-storefront", zap.Int("port", cfg.Server.Port))

	db, err := initDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.RunMigrations(db, "file://"+cfg.Database.MigrationsPath); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	productRepo := repository.NewProductRepository(db, logger)
	orderRepo := repository.NewOrderRepository(db, logger)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := productRepo.SeedIfEmpty(seedCtx, cfg.Store.SeedFile); err != nil {
		logger.Fatal("failed to seed catalog", zap.Error(err))
	}
	cancelSeed()

	sessions := session.NewStore(cfg.Redis, cfg.Session.TTL, logger)
	defer sessions.Close()

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka, logger)
	}
	defer publisher.Close()

	catalogService := service.NewCatalogService(productRepo, logger)
	cartService := service.NewCartService(productRepo, sessions, logger)
	checkoutService := service.NewCheckoutService(orderRepo, sessions, publisher, cfg.Store, logger)

	h := handlers.New(catalogService, cartService, checkoutService, sessions, cfg, logger)

	srv := server.New(cfg, h, logger)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

func initDatabase(cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	logger.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("name", cfg.Database.Name))

	return db, nil
}
