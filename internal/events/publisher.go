// Package events publishes order lifecycle events to Kafka for
// downstream consumers (stock reporting, operator dashboards).
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/adega-tatuape/adega-storefront-service/internal/config"
	"github.com/adega-tatuape/adega-storefront-service/internal/models"
)

// EventType identifies the kind of order event.
type EventType string

const EventTypeOrderPlaced EventType = "pedido.criado"

// OrderEvent is the envelope written to the orders topic.
type OrderEvent struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	OrderID   int64           `json:"pedido_id"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Publisher is the event emission contract of the checkout flow.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, order *models.Order, items []models.OrderItem) error
	Close() error
}

// KafkaPublisher publishes order events through a kafka.Writer.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

var _ Publisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(cfg config.KafkaConfig, logger *zap.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrdersTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// PublishOrderPlaced emits a pedido.criado event carrying the order
// snapshot and its items.
func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	payload := struct {
		Order *models.Order      `json:"pedido"`
		Items []models.OrderItem `json:"itens"`
	}{
		Order: order,
		Items: items,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	event := OrderEvent{
		ID:        uuid.NewString(),
		Type:      EventTypeOrderPlaced,
		OrderID:   order.ID,
		Data:      data,
		Timestamp: time.Now(),
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(order.ID, 10)),
		Value: eventData,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "event_id", Value: []byte(event.ID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("event_id", event.ID),
			zap.Int64("order_id", order.ID),
			zap.Error(err))
		return err
	}

	p.logger.Info("event published",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.Int64("order_id", order.ID))

	return nil
}

// Close closes the Kafka writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured (local dev).
type NoopPublisher struct{}

var _ Publisher = NoopPublisher{}

func (NoopPublisher) PublishOrderPlaced(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
