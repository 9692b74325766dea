package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

const exchangeName = "notifications"

// Message is the JSON payload published to the notifications fanout exchange.
// Downstream consumers (mail gateway, dashboards) render and deliver it;
// the backend only guarantees best-effort publication.
type Message struct {
	ID        string         `json:"id"`
	Kind      string         `json:"kind"`
	Recipient string         `json:"recipient"`
	Subject   string         `json:"subject"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Publisher sends notification messages through RabbitMQ. Send never fails
// the caller: any problem is logged and reported as a false outcome flag.
type Publisher struct {
	url     string
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// NewPublisher creates the publisher and attempts an initial connection.
// A failed initial dial is logged, not fatal; Send retries the connection.
func NewPublisher(url string, timeout time.Duration, logger *slog.Logger) *Publisher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	p := &Publisher{url: url, timeout: timeout, logger: logger}
	if err := p.connect(); err != nil {
		logger.Warn("notification broker unavailable", slog.String("error", err.Error()))
	}
	return p
}

func (p *Publisher) connect() error {
	conn, err := amqp091.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial amqp: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return fmt.Errorf("declare exchange: %w", err)
	}

	p.conn = conn
	p.channel = channel
	return nil
}

func (p *Publisher) ensureChannel() (*amqp091.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		if err := p.connect(); err != nil {
			return nil, err
		}
	}
	return p.channel, nil
}

// Send publishes a notification of the given kind to the recipient. The
// returned flag reports whether the message reached the broker; it is the
// caller's degraded-result signal, never an error.
func (p *Publisher) Send(ctx context.Context, kind, recipient string, data map[string]any) bool {
	subject, body := render(kind, data)
	msg := Message{
		ID:        uuid.NewString(),
		Kind:      kind,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		Data:      data,
		CreatedAt: time.Now(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		p.logger.Error("notification marshal failed", slog.String("kind", kind), slog.String("error", err.Error()))
		return false
	}

	channel, err := p.ensureChannel()
	if err != nil {
		p.logger.Warn("notification skipped, broker unavailable",
			slog.String("kind", kind),
			slog.String("recipient", recipient),
			slog.String("error", err.Error()))
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = channel.PublishWithContext(ctx, exchangeName, "", false, false, amqp091.Publishing{
		ContentType: "application/json",
		MessageId:   msg.ID,
		Timestamp:   msg.CreatedAt,
		Body:        payload,
	})
	if err != nil {
		p.logger.Warn("notification publish failed",
			slog.String("kind", kind),
			slog.String("recipient", recipient),
			slog.String("error", err.Error()))
		return false
	}

	p.logger.Info("notification published",
		slog.String("kind", kind),
		slog.String("recipient", recipient),
		slog.String("id", msg.ID))
	return true
}

// Close releases the broker connection.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}
