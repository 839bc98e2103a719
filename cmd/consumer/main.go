// Command consumer attaches a throwaway queue to the order_events exchange
// and prints every order.created and order.status.updated event it sees.
// Intended for inspecting the event stream during development.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"orders/internal/adapters/out/rabbitmq"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
)

var bindKeys = []string{
	rabbitmq.RoutingKeyOrderCreated,
	rabbitmq.RoutingKeyOrderStatusUpdated,
}

func main() {
	// Best effort: broker settings may just as well come from the environment
	_ = godotenv.Load(".env")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := rabbitmq.Config{
		Host:     getenv("RABBIT_HOST", "127.0.0.1"),
		Port:     getenv("RABBIT_PORT", "5672"),
		VHost:    getenv("RABBIT_VHOST", "/"),
		User:     getenv("RABBIT_USER", "guest"),
		Password: getenv("RABBIT_PASS", "guest"),
		Exchange: getenv("RABBIT_EXCHANGE", "order_events"),
	}

	conn, err := amqp.Dial(cfg.URL())
	if err != nil {
		logger.Error("failed to connect to broker", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	channel, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open channel", "error", err)
		os.Exit(1)
	}

	if err = channel.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		logger.Error("failed to declare exchange", "error", err)
		os.Exit(1)
	}

	// Exclusive auto-delete queue: it lives only as long as this process
	queue, err := channel.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		logger.Error("failed to declare queue", "error", err)
		os.Exit(1)
	}

	for _, key := range bindKeys {
		if err = channel.QueueBind(queue.Name, key, cfg.Exchange, false, nil); err != nil {
			logger.Error("failed to bind queue", "routing_key", key, "error", err)
			os.Exit(1)
		}
	}

	deliveries, err := channel.Consume(queue.Name, "", false, true, false, false, nil)
	if err != nil {
		logger.Error("failed to start consuming", "error", err)
		os.Exit(1)
	}

	logger.Info("listening for order events",
		"exchange", cfg.Exchange,
		"queue", queue.Name,
		"routing_keys", bindKeys)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case delivery, ok := <-deliveries:
			if !ok {
				logger.Info("delivery channel closed")
				return
			}
			logger.Info("event received",
				"routing_key", delivery.RoutingKey,
				"body", string(delivery.Body))
			_ = delivery.Ack(false)
		case <-stop:
			logger.Info("shutting down")
			return
		}
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
