package tracking

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"hortifruti/internal/core/application/usecases/commands"
	"hortifruti/internal/core/application/usecases/queries"
	"hortifruti/internal/core/domain/model/delivery"
	"hortifruti/internal/core/domain/model/kernel"
	"hortifruti/internal/core/ports"
	"hortifruti/internal/metrics"
	"hortifruti/internal/pkg/errs"
)

// Tracker keeps the courier's delivery list current and pushes status
// transitions through the guarded command handler.
//
// Refresh calls overlap-drop: a refresh arriving while one is in flight
// returns immediately without touching the backend. Background refreshes
// never surface errors to the caller; failures are logged, counted and kept
// readable through Err.
type Tracker struct {
	myDeliveries queries.GetMyDeliveriesQueryHandler
	updateStatus commands.UpdateDeliveryStatusCommandHandler
	notifier     ports.Notifier
	collector    metrics.Collector
	logger       *slog.Logger

	mu         sync.Mutex
	inFlight   bool
	loaded     bool
	deliveries []*delivery.Delivery
	known      map[string]struct{}
	lastErr    error
}

// NewTracker creates a tracker over the courier-scoped query and command
// handlers.
func NewTracker(
	myDeliveries queries.GetMyDeliveriesQueryHandler,
	updateStatus commands.UpdateDeliveryStatusCommandHandler,
	notifier ports.Notifier,
	collector metrics.Collector,
	logger *slog.Logger,
) (*Tracker, error) {
	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("notifier")
	}
	if collector == nil {
		return nil, errs.NewValueIsRequiredError("collector")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Tracker{
		myDeliveries: myDeliveries,
		updateStatus: updateStatus,
		notifier:     notifier,
		collector:    collector,
		logger:       logger.With("component", "tracking"),
		known:        map[string]struct{}{},
	}, nil
}

// Deliveries returns a copy of the tracked delivery list.
func (t *Tracker) Deliveries() []*delivery.Delivery {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]*delivery.Delivery, len(t.deliveries))
	copy(out, t.deliveries)
	return out
}

// Loading reports whether a refresh is currently in flight.
func (t *Tracker) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inFlight
}

// Err returns the error of the most recent refresh, nil after a successful
// one.
func (t *Tracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}

// Refresh fetches the courier's deliveries and swaps the tracked list.
//
// New assignments are detected by diffing IDs against the previous list and
// announced with a single notice (singular or plural), an audio alert and a
// push message. The very first load announces nothing. When background is
// true, a failed fetch is logged and counted but not returned.
func (t *Tracker) Refresh(ctx context.Context, background bool) error {
	t.mu.Lock()
	if t.inFlight {
		t.mu.Unlock()
		t.logger.Debug("refresh already in flight, dropping")
		return nil
	}
	t.inFlight = true
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.inFlight = false
		t.mu.Unlock()
	}()

	fetched, err := t.myDeliveries.Handle(ctx, queries.NewGetMyDeliveriesQuery())
	if err != nil {
		t.collector.RecordRefreshFailure()

		t.mu.Lock()
		t.lastErr = err
		t.mu.Unlock()

		if background {
			t.logger.Warn("background refresh failed", "error", err)
			return nil
		}
		return err
	}

	t.mu.Lock()
	newCount := 0
	if t.loaded {
		for _, d := range fetched {
			if _, seen := t.known[d.ID().String()]; !seen {
				newCount++
			}
		}
	}

	t.deliveries = fetched
	t.known = make(map[string]struct{}, len(fetched))
	for _, d := range fetched {
		t.known[d.ID().String()] = struct{}{}
	}
	t.loaded = true
	t.lastErr = nil
	t.mu.Unlock()

	t.collector.RecordRefreshSuccess()
	if newCount > 0 {
		t.collector.RecordNewDeliveries(newCount)
		t.announceNewDeliveries(ctx, newCount)
	}

	return nil
}

// UpdateStatus submits a status transition for a tracked delivery and, on
// success, replaces the delivery in the tracked list with the backend's
// updated representation. The outcome is announced as a toast either way.
func (t *Tracker) UpdateStatus(
	ctx context.Context,
	deliveryID kernel.UUID,
	transition delivery.Transition,
	payload delivery.TransitionPayload,
) (*delivery.Delivery, error) {
	current, found := t.find(deliveryID)
	if !found {
		return nil, errs.NewObjectNotFoundError("deliveryID", deliveryID)
	}

	command, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, transition, payload)
	if err != nil {
		t.notifier.Notify(ctx, ports.Notice{Level: ports.NoticeError, Message: err.Error()})
		return nil, err
	}

	updated, err := t.updateStatus.Handle(ctx, command, current)
	if err != nil {
		t.notifier.Notify(ctx, ports.Notice{Level: ports.NoticeError, Message: err.Error()})
		return nil, err
	}

	t.replace(updated)
	t.collector.RecordTransition(transition.String())
	t.notifier.Notify(ctx, ports.Notice{
		Level:   ports.NoticeSuccess,
		Message: fmt.Sprintf("delivery is now %s", updated.Status()),
	})

	t.logger.Info("delivery status updated",
		"deliveryID", deliveryID.String(), "transition", transition.String())
	return updated, nil
}

func (t *Tracker) find(deliveryID kernel.UUID) (*delivery.Delivery, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, d := range t.deliveries {
		if d.ID().IsEqual(deliveryID) {
			return d, true
		}
	}
	return nil, false
}

func (t *Tracker) replace(updated *delivery.Delivery) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, d := range t.deliveries {
		if d.ID().IsEqual(updated.ID()) {
			t.deliveries[i] = updated
			return
		}
	}
}

func (t *Tracker) announceNewDeliveries(ctx context.Context, count int) {
	message := "you have a new delivery"
	if count > 1 {
		message = fmt.Sprintf("you have %d new deliveries", count)
	}

	t.notifier.Notify(ctx, ports.Notice{Level: ports.NoticeInfo, Message: message})
	if err := t.notifier.PlayAlert(ctx); err != nil {
		t.logger.Debug("alert sound unavailable", "error", err)
	}
	t.notifier.Push(ctx, "HortiFruti deliveries", message)

	t.logger.Info("new deliveries detected", "count", count)
}
