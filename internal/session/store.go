// Package session keeps per-session storefront state (cart lines and
// pending flash messages) in Redis, one JSON value per session with a
// sliding TTL.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/adega-tatuape/adega-storefront-service/internal/config"
	"github.com/adega-tatuape/adega-storefront-service/internal/models"
)

const (
	keyPrefix  = "sessao:"
	defaultTTL = 7 * 24 * time.Hour
)

// Flash is a one-shot notice rendered on the next page the session loads.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type state struct {
	Cart    []models.CartLine `json:"carrinho"`
	Flashes []Flash           `json:"flashes,omitempty"`
}

// Store is the Redis-backed session store. Reads of a missing or
// corrupt session yield empty state; a broken session must never
// break browsing.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewStore(cfg config.RedisConfig, ttl time.Duration, logger *zap.Logger) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Store{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetCart returns the session's cart, or an empty slice when none exists.
func (s *Store) GetCart(ctx context.Context, sessionID string) []models.CartLine {
	st := s.load(ctx, sessionID)
	if st.Cart == nil {
		return []models.CartLine{}
	}
	return st.Cart
}

// SaveCart replaces the session's cart with lines.
func (s *Store) SaveCart(ctx context.Context, sessionID string, lines []models.CartLine) error {
	st := s.load(ctx, sessionID)
	st.Cart = lines
	return s.save(ctx, sessionID, st)
}

// ClearCart drops the session's cart, keeping any pending flashes.
func (s *Store) ClearCart(ctx context.Context, sessionID string) error {
	st := s.load(ctx, sessionID)
	st.Cart = nil
	return s.save(ctx, sessionID, st)
}

// AddFlash queues a one-shot notice. Losing a flash is tolerable, so
// write failures are logged rather than surfaced.
func (s *Store) AddFlash(ctx context.Context, sessionID, level, message string) {
	st := s.load(ctx, sessionID)
	st.Flashes = append(st.Flashes, Flash{Level: level, Message: message})
	if err := s.save(ctx, sessionID, st); err != nil {
		s.logger.Warn("flash write failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}
}

// PopFlashes returns the pending notices and clears them.
func (s *Store) PopFlashes(ctx context.Context, sessionID string) []Flash {
	st := s.load(ctx, sessionID)
	if len(st.Flashes) == 0 {
		return nil
	}
	flashes := st.Flashes
	st.Flashes = nil
	if err := s.save(ctx, sessionID, st); err != nil {
		s.logger.Warn("flash clear failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}
	return flashes
}

// Close releases the Redis connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) load(ctx context.Context, sessionID string) state {
	data, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return state{}
	}
	if err != nil {
		s.logger.Error("session read failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return state{}
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		s.logger.Warn("discarding corrupt session",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return state{}
	}
	return st
}

func (s *Store) save(ctx context.Context, sessionID string, st state) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, keyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		s.logger.Error("session write failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return err
	}
	return nil
}
