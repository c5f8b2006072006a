package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"sgac_app_go/models"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ChangeExchange is the topic exchange change events are published to
const ChangeExchange = "sgac.changes"

// ChangeEvent announces a committed write
type ChangeEvent struct {
	ID         string             `json:"id"`
	Resource   string             `json:"resource"`
	Action     models.AuditAction `json:"action"`
	ResourceID uint               `json:"resourceId"`
	UserID     *uint              `json:"userId,omitempty"`
	Data       interface{}        `json:"data,omitempty"`
	OccurredAt time.Time          `json:"occurredAt"`
}

// RoutingKey is <resource>.<action>, e.g. "career.create"
func (e ChangeEvent) RoutingKey() string {
	return e.Resource + "." + strings.ToLower(string(e.Action))
}

// ChangePublisher delivers change events to subscribers
type ChangePublisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
	Close() error
}

// Changes is the global publisher; nil disables change events
var Changes ChangePublisher

// AMQPPublisher publishes change events to RabbitMQ, redialing once when the channel is gone
type AMQPPublisher struct {
	url string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewAMQPPublisher dials url and declares the change exchange
func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

// connect must be called with mu held or before the publisher is shared
func (p *AMQPPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ChangeExchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("declare exchange %s: %w", ChangeExchange, err)
	}

	p.conn = conn
	p.channel = ch
	zap.L().Info("connected to RabbitMQ", zap.String("exchange", ChangeExchange))
	return nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event ChangeEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil || p.channel.IsClosed() {
		if p.conn != nil {
			p.conn.Close()
		}
		if err := p.connect(); err != nil {
			return err
		}
	}

	if err := p.channel.PublishWithContext(ctx, ChangeExchange, event.RoutingKey(), false, false, msg); err != nil {
		return fmt.Errorf("publish to %s/%s: %w", ChangeExchange, event.RoutingKey(), err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
