package tracking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"settlement/internal/core/application/usecases/commands"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock hands out a controllable time to the throttle logic.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeRecorder captures forwarded commands instead of hitting a database.
type fakeRecorder struct {
	mu   sync.Mutex
	cmds []commands.RecordLocationCommand
	err  error
}

func (r *fakeRecorder) Handle(_ context.Context, cmd commands.RecordLocationCommand) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.cmds = append(r.cmds, cmd)
	return nil, nil
}

func (r *fakeRecorder) recorded() []commands.RecordLocationCommand {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]commands.RecordLocationCommand, len(r.cmds))
	copy(out, r.cmds)
	return out
}

func somePosition(t *testing.T) kernel.GeoPosition {
	t.Helper()
	pos, err := kernel.NewGeoPosition(52.52, 13.405)
	require.NoError(t, err)
	return pos
}

func TestTracker_Report(t *testing.T) {
	t.Run("should drop samples while no session is open", func(t *testing.T) {
		clock := newFakeClock()
		recorder := &fakeRecorder{}
		tracker := tracking.NewTracker(kernel.NewUUID(), 30*time.Second, clock.Now, recorder)

		err := tracker.Report(t.Context(), somePosition(t), clock.Now())

		require.NoError(t, err)
		assert.Empty(t, recorder.recorded())
	})

	t.Run("should throttle a chatty device to one sample per window", func(t *testing.T) {
		clock := newFakeClock()
		recorder := &fakeRecorder{}
		courierID := kernel.NewUUID()
		orderID := kernel.NewUUID()
		tracker := tracking.NewTracker(courierID, 30*time.Second, clock.Now, recorder)
		tracker.Start(orderID)

		for range 100 {
			require.NoError(t, tracker.Report(t.Context(), somePosition(t), clock.Now()))
			clock.Advance(100 * time.Millisecond)
		}

		// 100 samples over 10 seconds, one 30-second window: one recorded.
		cmds := recorder.recorded()
		require.Len(t, cmds, 1)
		assert.True(t, cmds[0].OrderID().IsEqual(orderID))
		assert.True(t, cmds[0].CourierID().IsEqual(courierID))
	})

	t.Run("should accept again once the window passes", func(t *testing.T) {
		clock := newFakeClock()
		recorder := &fakeRecorder{}
		tracker := tracking.NewTracker(kernel.NewUUID(), 30*time.Second, clock.Now, recorder)
		tracker.Start(kernel.NewUUID())

		require.NoError(t, tracker.Report(t.Context(), somePosition(t), clock.Now()))
		clock.Advance(29 * time.Second)
		require.NoError(t, tracker.Report(t.Context(), somePosition(t), clock.Now()))
		clock.Advance(time.Second)
		require.NoError(t, tracker.Report(t.Context(), somePosition(t), clock.Now()))

		assert.Len(t, recorder.recorded(), 2)
	})

	t.Run("should drop samples after Stop", func(t *testing.T) {
		clock := newFakeClock()
		recorder := &fakeRecorder{}
		tracker := tracking.NewTracker(kernel.NewUUID(), 30*time.Second, clock.Now, recorder)
		tracker.Start(kernel.NewUUID())
		tracker.Stop()

		require.NoError(t, tracker.Report(t.Context(), somePosition(t), clock.Now()))

		assert.Empty(t, recorder.recorded())
	})

	t.Run("should surface recorder failures", func(t *testing.T) {
		clock := newFakeClock()
		recorder := &fakeRecorder{err: errors.New("database down")}
		tracker := tracking.NewTracker(kernel.NewUUID(), 30*time.Second, clock.Now, recorder)
		tracker.Start(kernel.NewUUID())

		err := tracker.Report(t.Context(), somePosition(t), clock.Now())

		require.EqualError(t, err, "database down")
	})
}

func TestTracker_Start(t *testing.T) {
	t.Run("restarting rebinds and resets the throttle", func(t *testing.T) {
		clock := newFakeClock()
		recorder := &fakeRecorder{}
		tracker := tracking.NewTracker(kernel.NewUUID(), 30*time.Second, clock.Now, recorder)

		firstOrder := kernel.NewUUID()
		tracker.Start(firstOrder)
		require.NoError(t, tracker.Report(t.Context(), somePosition(t), clock.Now()))

		secondOrder := kernel.NewUUID()
		tracker.Start(secondOrder)
		require.NoError(t, tracker.Report(t.Context(), somePosition(t), clock.Now()))

		cmds := recorder.recorded()
		require.Len(t, cmds, 2)
		assert.True(t, cmds[0].OrderID().IsEqual(firstOrder))
		assert.True(t, cmds[1].OrderID().IsEqual(secondOrder))
	})
}

func TestTracker_StopOrder(t *testing.T) {
	clock := newFakeClock()
	tracker := tracking.NewTracker(kernel.NewUUID(), 30*time.Second, clock.Now, &fakeRecorder{})
	orderID := kernel.NewUUID()
	tracker.Start(orderID)

	assert.False(t, tracker.StopOrder(kernel.NewUUID()), "a different order must not close the session")
	assert.True(t, tracker.StopOrder(orderID))
	assert.False(t, tracker.StopOrder(orderID), "already closed")
}

func TestManager(t *testing.T) {
	t.Run("should route samples per courier", func(t *testing.T) {
		clock := newFakeClock()
		recorder := &fakeRecorder{}
		manager := tracking.NewManager(30*time.Second, clock.Now, recorder)

		courierA := kernel.NewUUID()
		courierB := kernel.NewUUID()
		orderA := kernel.NewUUID()
		orderB := kernel.NewUUID()

		manager.StartTracking(courierA, orderA)
		manager.StartTracking(courierB, orderB)

		require.NoError(t, manager.Report(t.Context(), courierA, somePosition(t), clock.Now()))
		require.NoError(t, manager.Report(t.Context(), courierB, somePosition(t), clock.Now()))

		cmds := recorder.recorded()
		require.Len(t, cmds, 2)
		assert.True(t, cmds[0].OrderID().IsEqual(orderA))
		assert.True(t, cmds[1].OrderID().IsEqual(orderB))
	})

	t.Run("should drop samples from unknown couriers", func(t *testing.T) {
		clock := newFakeClock()
		recorder := &fakeRecorder{}
		manager := tracking.NewManager(30*time.Second, clock.Now, recorder)

		require.NoError(t, manager.Report(t.Context(), kernel.NewUUID(), somePosition(t), clock.Now()))

		assert.Empty(t, recorder.recorded())
	})

	t.Run("StopTracking closes the session wherever it lives", func(t *testing.T) {
		clock := newFakeClock()
		recorder := &fakeRecorder{}
		manager := tracking.NewManager(30*time.Second, clock.Now, recorder)

		courierID := kernel.NewUUID()
		orderID := kernel.NewUUID()
		manager.StartTracking(courierID, orderID)
		manager.StopTracking(orderID)

		require.NoError(t, manager.Report(t.Context(), courierID, somePosition(t), clock.Now()))
		assert.Empty(t, recorder.recorded())
	})

	t.Run("stopping an untracked order is a no-op", func(t *testing.T) {
		clock := newFakeClock()
		manager := tracking.NewManager(30*time.Second, clock.Now, &fakeRecorder{})

		manager.StopTracking(kernel.NewUUID())
	})
}
