// Package tracking manages courier location sessions. A session opens when a
// courier confirms pickup and closes on dropoff, dispute, or arbitration.
// While a session is open, incoming device samples are throttled to a minimum
// interval and forwarded to the location recording use case; everything else
// is dropped silently, because couriers' devices keep sending regardless of
// order state and those samples are noise, not errors.
package tracking

import (
	"context"
	"sync"
	"time"

	"settlement/internal/core/application/usecases/commands"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
)

// LocationRecorder persists an accepted location sample.
// Satisfied by commands.RecordLocationCommandHandler.
type LocationRecorder interface {
	Handle(ctx context.Context, cmd commands.RecordLocationCommand) (*order.Order, error)
}

// Tracker is one courier's location session. It accepts samples only while a
// session is open for a specific order, and at most one sample per
// minInterval. All methods are safe for concurrent use.
type Tracker struct {
	courierID   kernel.UUID
	minInterval time.Duration
	now         func() time.Time
	recorder    LocationRecorder

	mu           sync.Mutex
	orderID      *kernel.UUID
	lastAccepted time.Time
}

// NewTracker creates an inactive tracker for one courier.
// The now function is injectable for tests; pass time.Now in production.
func NewTracker(
	courierID kernel.UUID,
	minInterval time.Duration,
	now func() time.Time,
	recorder LocationRecorder,
) *Tracker {
	return &Tracker{
		courierID:   courierID,
		minInterval: minInterval,
		now:         now,
		recorder:    recorder,
	}
}

// Start opens a session for the given order. Starting while a session is
// already open rebinds the tracker to the new order and resets the throttle
// window.
func (t *Tracker) Start(orderID kernel.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.orderID = &orderID
	t.lastAccepted = time.Time{}
}

// Stop closes the current session, whatever order it was bound to.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.orderID = nil
}

// StopOrder closes the session only if it is bound to the given order.
// Reports whether a session was closed.
func (t *Tracker) StopOrder(orderID kernel.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.orderID == nil || !t.orderID.IsEqual(orderID) {
		return false
	}

	t.orderID = nil
	return true
}

// Report handles one device sample. Samples are dropped silently when no
// session is open or when the sample lands inside the throttle window; an
// accepted sample is forwarded to the recorder. Only recorder failures are
// returned as errors.
func (t *Tracker) Report(ctx context.Context, position kernel.GeoPosition, observedAt time.Time) error {
	t.mu.Lock()

	if t.orderID == nil {
		t.mu.Unlock()
		return nil
	}

	now := t.now()
	if !t.lastAccepted.IsZero() && now.Sub(t.lastAccepted) < t.minInterval {
		t.mu.Unlock()
		return nil
	}

	orderID := *t.orderID
	t.lastAccepted = now
	t.mu.Unlock()

	cmd, err := commands.NewRecordLocationCommand(orderID, t.courierID, position, observedAt)
	if err != nil {
		return err
	}

	_, err = t.recorder.Handle(ctx, cmd)
	return err
}
