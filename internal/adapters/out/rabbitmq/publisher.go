// Package rabbitmq provides the RabbitMQ implementation of the EventPublisher
// port. Events are published to a durable topic exchange with routing keys
// order.created and order.status.updated.
//
// Publishing is strictly best-effort: the adapter never returns an error to
// its callers and never blocks them. Events are handed to a buffered outbound
// queue; a background worker owns the broker connection and drains the queue.
// When the queue is full the event is dropped with a warning, when the broker
// is unreachable the event is dropped after the publish deadline. With no
// host configured the adapter is a silent no-op.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// RoutingKeyOrderCreated is the topic for order creation events.
	RoutingKeyOrderCreated = "order.created"

	// RoutingKeyOrderStatusUpdated is the topic for status transition events.
	RoutingKeyOrderStatusUpdated = "order.status.updated"

	// publishTimeout bounds one publish attempt, dialing included.
	publishTimeout = 5 * time.Second

	// outboundCapacity is the size of the in-memory outbound queue. Events
	// beyond it are dropped, not queued; delivery is at-most-once anyway.
	outboundCapacity = 256
)

// Config holds the broker connection settings. An empty Host disables
// publishing entirely.
type Config struct {
	Host     string
	Port     string
	VHost    string
	User     string
	Password string
	Exchange string
}

// URL assembles the AMQP connection URL from the individual settings.
// The default vhost "/" maps to an empty path segment.
func (c Config) URL() string {
	vhost := c.VHost
	if vhost == "/" {
		vhost = ""
	} else {
		vhost = url.QueryEscape(vhost)
	}

	return fmt.Sprintf("amqp://%s:%s@%s:%s/%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		vhost,
	)
}

type outboundMessage struct {
	routingKey string
	body       []byte
}

// Publisher implements ports.EventPublisher on top of a RabbitMQ topic
// exchange. Create it with NewPublisher and release it with Close.
type Publisher struct {
	cfg    Config
	logger *slog.Logger

	enabled  bool
	outbound chan outboundMessage
	wg       sync.WaitGroup

	// connection state, owned by the worker goroutine
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher creates a publisher for the given broker settings. When
// cfg.Host is empty the publisher is disabled: every publish call becomes a
// no-op and no connection is ever attempted.
func NewPublisher(cfg Config, logger *slog.Logger) *Publisher {
	p := &Publisher{
		cfg:    cfg,
		logger: logger,
	}

	if cfg.Host == "" {
		p.logger.Info("rabbitmq host not configured, event publishing disabled")
		return p
	}

	p.enabled = true
	p.outbound = make(chan outboundMessage, outboundCapacity)

	p.wg.Add(1)
	go p.run()

	return p
}

// PublishOrderCreated announces a genuinely created order on order.created.
func (p *Publisher) PublishOrderCreated(event order.CreatedEvent) {
	payload := struct {
		OrderID string `json:"order_id"`
		Status  string `json:"status"`
	}{
		OrderID: event.OrderID,
		Status:  event.Status.String(),
	}

	p.enqueue(RoutingKeyOrderCreated, payload)
}

// PublishOrderStatusChanged announces a committed status transition on
// order.status.updated. Meta is forwarded untouched when present.
func (p *Publisher) PublishOrderStatusChanged(event order.StatusChangedEvent) {
	payload := struct {
		OrderID   string         `json:"order_id"`
		NewStatus string         `json:"new_status"`
		Version   int            `json:"version"`
		Meta      map[string]any `json:"meta,omitempty"`
	}{
		OrderID:   event.OrderID,
		NewStatus: event.NewStatus.String(),
		Version:   event.Version,
		Meta:      event.Meta,
	}

	p.enqueue(RoutingKeyOrderStatusUpdated, payload)
}

// Close stops the worker after draining already queued events and releases
// the broker connection. Call it only after all publishing call sites have
// stopped, typically as the last step of graceful shutdown.
func (p *Publisher) Close() {
	if !p.enabled {
		return
	}

	close(p.outbound)
	p.wg.Wait()
}

// enqueue serializes the payload and hands it to the worker without blocking.
func (p *Publisher) enqueue(routingKey string, payload any) {
	if !p.enabled {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to serialize event",
			"routing_key", routingKey,
			"error", err)
		return
	}

	select {
	case p.outbound <- outboundMessage{routingKey: routingKey, body: body}:
	default:
		p.logger.Warn("outbound queue full, event dropped",
			"routing_key", routingKey)
	}
}

// run drains the outbound queue until Close. Connection failures are logged
// and the affected event is dropped; the next event retries from scratch.
func (p *Publisher) run() {
	defer p.wg.Done()
	defer p.closeConnection()

	for msg := range p.outbound {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := p.publish(ctx, msg); err != nil {
			p.logger.Error("failed to publish event",
				"routing_key", msg.routingKey,
				"error", err)
			p.closeConnection()
		}
		cancel()
	}
}

// publish sends one message, establishing the connection and declaring the
// exchange first when needed.
func (p *Publisher) publish(ctx context.Context, msg outboundMessage) error {
	if err := p.ensureChannel(); err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		p.cfg.Exchange,
		msg.routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now().UTC(),
			Body:         msg.body,
		},
	)
}

// ensureChannel dials the broker and declares the durable topic exchange,
// reusing the existing channel while it is healthy.
func (p *Publisher) ensureChannel() error {
	if p.channel != nil && !p.conn.IsClosed() {
		return nil
	}

	p.closeConnection()

	conn, err := amqp.Dial(p.cfg.URL())
	if err != nil {
		return err
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}

	if err = channel.ExchangeDeclare(
		p.cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = conn.Close()
		return err
	}

	p.conn = conn
	p.channel = channel

	return nil
}

func (p *Publisher) closeConnection() {
	if p.conn != nil && !p.conn.IsClosed() {
		_ = p.conn.Close()
	}
	p.conn = nil
	p.channel = nil
}
