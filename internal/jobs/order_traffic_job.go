package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// OrderTrafficJob generates synthetic order traffic against the service.
// Runs every second: each tick either registers a new random order or walks
// one of the live orders a step further through the status flow, using the
// real command handlers so the whole stack, broker notifications included,
// is exercised.
type OrderTrafficJob struct {
	createHandler commands.CreateOrderCommandHandler
	updateHandler commands.UpdateOrderStatusCommandHandler
	cron          *cron.Cron
	logger        *slog.Logger

	mu   sync.Mutex
	live map[string]liveOrder
}

type liveOrder struct {
	status  order.Status
	version int
}

// NewOrderTrafficJob creates a job that produces synthetic order traffic.
// Uses the create and update handlers to drive real transitions every second.
func NewOrderTrafficJob(
	createHandler commands.CreateOrderCommandHandler,
	updateHandler commands.UpdateOrderStatusCommandHandler,
	logger *slog.Logger,
) *OrderTrafficJob {
	return &OrderTrafficJob{
		createHandler: createHandler,
		updateHandler: updateHandler,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "order_traffic_job"),
		live:          make(map[string]liveOrder),
	}
}

// Start begins the traffic job to run every second.
func (j *OrderTrafficJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		if err := j.tick(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order traffic tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order traffic job started (running every second)")
	return nil
}

// Stop stops the traffic job.
func (j *OrderTrafficJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order traffic job stopped")
}

// tick performs one traffic step: create a new order, or transition a live one.
func (j *OrderTrafficJob) tick(ctx context.Context) error {
	j.mu.Lock()
	shouldCreate := len(j.live) == 0 || rand.Intn(2) == 0
	j.mu.Unlock()

	if shouldCreate {
		return j.createOrder(ctx)
	}

	return j.transitionOrder(ctx)
}

func (j *OrderTrafficJob) createOrder(ctx context.Context) error {
	orderID := randomOrderID()

	cmd, err := commands.NewCreateOrderCommand(orderID, order.Created)
	if err != nil {
		return err
	}

	result, err := j.createHandler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	j.mu.Lock()
	j.live[orderID] = liveOrder{status: result.Order.Status(), version: result.Order.Version()}
	j.mu.Unlock()

	j.logger.InfoContext(ctx, "Created order", "order_id", orderID)
	return nil
}

func (j *OrderTrafficJob) transitionOrder(ctx context.Context) error {
	orderID, current, ok := j.pickLiveOrder()
	if !ok {
		return nil
	}

	next, ok := nextStatus(current.status)
	if !ok {
		// Terminal order, stop tracking it
		j.forget(orderID)
		return nil
	}

	expected := current.version
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, next, &expected, nil)
	if err != nil {
		return err
	}

	updated, err := j.updateHandler.Handle(ctx, cmd)
	if err != nil {
		// Someone else moved the order, or it vanished; either way the local
		// snapshot is stale
		j.forget(orderID)

		var conflictErr *errs.VersionConflictError
		if errors.As(err, &conflictErr) {
			j.logger.InfoContext(ctx, "Order moved concurrently, dropped from traffic",
				"order_id", orderID)
			return nil
		}
		return err
	}

	j.mu.Lock()
	j.live[orderID] = liveOrder{status: updated.Status(), version: updated.Version()}
	j.mu.Unlock()

	j.logger.InfoContext(ctx, "Transitioned order",
		"order_id", orderID,
		"status", updated.Status().String(),
		"version", updated.Version())
	return nil
}

func (j *OrderTrafficJob) pickLiveOrder() (string, liveOrder, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for orderID, current := range j.live {
		return orderID, current, true
	}

	return "", liveOrder{}, false
}

func (j *OrderTrafficJob) forget(orderID string) {
	j.mu.Lock()
	delete(j.live, orderID)
	j.mu.Unlock()
}

// nextStatus picks a random permitted follow-up status, false on terminal.
func nextStatus(current order.Status) (order.Status, bool) {
	candidates := make([]order.Status, 0, 4)
	for _, candidate := range []order.Status{
		order.Created, order.Updated, order.Shipped, order.Delivered, order.Cancelled,
	} {
		if current.CanTransitionTo(candidate) {
			candidates = append(candidates, candidate)
		}
	}

	if len(candidates) == 0 {
		return order.Unknown, false
	}

	return candidates[rand.Intn(len(candidates))], true
}

// randomOrderID produces ids like ORD-X7K2QF.
func randomOrderID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = orderIDAlphabet[rand.Intn(len(orderIDAlphabet))]
	}
	return fmt.Sprintf("ORD-%s", suffix)
}
