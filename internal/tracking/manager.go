package tracking

import (
	"context"
	"sync"
	"time"

	"settlement/internal/core/domain/model/kernel"
)

// Manager keeps one Tracker per courier and routes session control and
// device samples to the right one. It implements commands.TrackingControl,
// so confirming a pickup opens a session and confirming a dropoff (or
// resolving a dispute) closes it.
type Manager struct {
	minInterval time.Duration
	now         func() time.Time
	recorder    LocationRecorder

	mu       sync.Mutex
	trackers map[string]*Tracker
}

// NewManager creates an empty tracker registry.
func NewManager(minInterval time.Duration, now func() time.Time, recorder LocationRecorder) *Manager {
	return &Manager{
		minInterval: minInterval,
		now:         now,
		recorder:    recorder,
		trackers:    make(map[string]*Tracker),
	}
}

// StartTracking opens a location session binding the courier to the order.
func (m *Manager) StartTracking(courierID, orderID kernel.UUID) {
	m.tracker(courierID).Start(orderID)
}

// StopTracking closes whichever courier session is bound to the order.
// A no-op if no session is tracking it.
func (m *Manager) StopTracking(orderID kernel.UUID) {
	m.mu.Lock()
	trackers := make([]*Tracker, 0, len(m.trackers))
	for _, t := range m.trackers {
		trackers = append(trackers, t)
	}
	m.mu.Unlock()

	for _, t := range trackers {
		if t.StopOrder(orderID) {
			return
		}
	}
}

// Report routes one device sample to the courier's tracker. A sample from a
// courier with no tracker yet is dropped: no session has ever been opened
// for them.
func (m *Manager) Report(
	ctx context.Context,
	courierID kernel.UUID,
	position kernel.GeoPosition,
	observedAt time.Time,
) error {
	m.mu.Lock()
	t, ok := m.trackers[courierID.String()]
	m.mu.Unlock()

	if !ok {
		return nil
	}

	return t.Report(ctx, position, observedAt)
}

func (m *Manager) tracker(courierID kernel.UUID) *Tracker {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := courierID.String()
	t, ok := m.trackers[key]
	if !ok {
		t = NewTracker(courierID, m.minInterval, m.now, m.recorder)
		m.trackers[key] = t
	}

	return t
}
