package order

import (
	"time"

	"settlement/internal/core/domain/model/kernel"
)

// maxLocationEntries caps how many location-tagged history entries are kept
// per order. Status entries are never dropped; only the high-frequency
// location trail is bounded, oldest samples first.
const maxLocationEntries = 20

// HistoryEntry is one element of an order's append-only history: the status
// the order held at RecordedAt, optionally tagged with the courier position
// observed at that moment. Entries are ordered by strictly increasing
// RecordedAt and the last entry's Status always equals the order's current
// status.
type HistoryEntry struct {
	Status     Status
	RecordedAt time.Time
	Position   *kernel.GeoPosition
}

// IsLocationSample reports whether the entry records a courier position
// rather than a status change.
func (e HistoryEntry) IsLocationSample() bool {
	return e.Position != nil
}

// history wraps the entry slice to keep append/trim rules in one place.
type history struct {
	entries []HistoryEntry
}

// append adds an entry, forcing a strictly increasing timestamp. A clock that
// reads the same instant twice (or steps backwards) yields a timestamp one
// nanosecond past the previous entry.
func (h *history) append(status Status, at time.Time, pos *kernel.GeoPosition) {
	if last := h.last(); last != nil && !at.After(last.RecordedAt) {
		at = last.RecordedAt.Add(time.Nanosecond)
	}

	h.entries = append(h.entries, HistoryEntry{
		Status:     status,
		RecordedAt: at,
		Position:   pos,
	})
	h.trimLocationEntries()
}

// last returns the most recent entry, or nil for an empty history.
func (h *history) last() *HistoryEntry {
	if len(h.entries) == 0 {
		return nil
	}
	return &h.entries[len(h.entries)-1]
}

// snapshot returns a copy of the entries, protecting the aggregate's
// append-only invariant from callers.
func (h *history) snapshot() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// trimLocationEntries drops the oldest location samples once more than
// maxLocationEntries are present. Status entries are untouched.
func (h *history) trimLocationEntries() {
	locations := 0
	for _, e := range h.entries {
		if e.IsLocationSample() {
			locations++
		}
	}
	if locations <= maxLocationEntries {
		return
	}

	toDrop := locations - maxLocationEntries
	kept := make([]HistoryEntry, 0, len(h.entries)-toDrop)
	for _, e := range h.entries {
		if toDrop > 0 && e.IsLocationSample() {
			toDrop--
			continue
		}
		kept = append(kept, e)
	}
	h.entries = kept
}
