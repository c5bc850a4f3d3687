package order

import (
	"testing"
	"time"

	"settlement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Append(t *testing.T) {
	t.Run("should keep timestamps strictly increasing", func(t *testing.T) {
		var h history
		at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		h.append(Pending, at, nil)
		h.append(ReadyForPickup, at, nil)
		h.append(InTransit, at.Add(-time.Minute), nil)

		require.Len(t, h.entries, 3)
		assert.Equal(t, at, h.entries[0].RecordedAt)
		assert.Equal(t, at.Add(time.Nanosecond), h.entries[1].RecordedAt)
		assert.Equal(t, at.Add(2*time.Nanosecond), h.entries[2].RecordedAt)
	})

	t.Run("should not touch a monotonically advancing clock", func(t *testing.T) {
		var h history
		at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		h.append(Pending, at, nil)
		h.append(ReadyForPickup, at.Add(time.Second), nil)

		assert.Equal(t, at.Add(time.Second), h.entries[1].RecordedAt)
	})
}

func TestHistory_TrimLocationEntries(t *testing.T) {
	pos := func(t *testing.T, lat float64) *kernel.GeoPosition {
		t.Helper()
		p, err := kernel.NewGeoPosition(lat, 0)
		require.NoError(t, err)
		return &p
	}

	t.Run("should drop oldest samples past the cap", func(t *testing.T) {
		var h history
		at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		h.append(Pending, at, nil)
		h.append(InTransit, at.Add(time.Minute), nil)
		for i := range maxLocationEntries + 5 {
			h.append(InTransit, at.Add(time.Duration(i+2)*time.Minute), pos(t, float64(i)))
		}

		locations := 0
		for _, e := range h.entries {
			if e.IsLocationSample() {
				locations++
			}
		}
		assert.Equal(t, maxLocationEntries, locations)

		// The two status entries stay put, the oldest five samples are gone.
		assert.False(t, h.entries[0].IsLocationSample())
		assert.False(t, h.entries[1].IsLocationSample())
		require.True(t, h.entries[2].IsLocationSample())
		assert.InDelta(t, 5.0, h.entries[2].Position.Latitude(), 0.0001)

		last := h.last()
		require.NotNil(t, last)
		assert.InDelta(t, float64(maxLocationEntries+4), last.Position.Latitude(), 0.0001)
	})

	t.Run("should leave histories under the cap alone", func(t *testing.T) {
		var h history
		at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		h.append(Pending, at, nil)
		for i := range maxLocationEntries {
			h.append(InTransit, at.Add(time.Duration(i+1)*time.Minute), pos(t, float64(i)))
		}

		assert.Len(t, h.entries, maxLocationEntries+1)
	})
}
