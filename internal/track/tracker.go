// Package track maintains per-cycle topic observation state. Compound
// patterns represent sustained cross-domain signals, so the tracker
// distinguishes a topic seen once from one seen in consecutive refresh
// cycles.
package track

import (
	"sync"
)

// Observation is the occurrence record for a single topic.
type Observation struct {
	TopicID    string
	FirstCycle int // cycle the topic was first observed
	LastCycle  int // most recent cycle the topic was observed
	Streak     int // consecutive-cycle streak ending at LastCycle
}

// Tracker records which topics were observed at which monitoring cycles.
// State is mutated only by Observe and Sweep; reads never mutate. All
// methods are safe for concurrent use: observations for the same topic are
// serialized under the tracker mutex, so parallel ingestion workers cannot
// lose updates.
type Tracker struct {
	mu      sync.RWMutex
	records map[string]*Observation

	// evictAfter is the number of cycles a topic may go unobserved before
	// its record is dropped. Zero disables eviction.
	evictAfter int
}

// NewTracker creates a tracker that drops topics unseen for evictAfter
// cycles (0 = never evict).
func NewTracker(evictAfter int) *Tracker {
	return &Tracker{
		records:    make(map[string]*Observation),
		evictAfter: evictAfter,
	}
}

// Observe records that a topic was matched at the given monitoring cycle.
// Repeat observations within the same cycle are idempotent. A gap of one
// or more cycles resets the consecutive streak.
func (t *Tracker) Observe(topicID string, cycle int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[topicID]
	if !ok {
		t.records[topicID] = &Observation{
			TopicID:    topicID,
			FirstCycle: cycle,
			LastCycle:  cycle,
			Streak:     1,
		}
		return
	}

	switch {
	case cycle == rec.LastCycle:
		// Second item matching the same topic in one cycle; nothing new.
	case cycle == rec.LastCycle+1:
		rec.Streak++
		rec.LastCycle = cycle
	default:
		rec.Streak = 1
		rec.LastCycle = cycle
	}
}

// ActiveWithin returns the topics observed within the last windowCycles
// cycles relative to the current cycle, keyed by topic id. The returned
// observations are copies.
func (t *Tracker) ActiveWithin(cycle, windowCycles int) map[string]Observation {
	t.mu.RLock()
	defer t.mu.RUnlock()

	active := make(map[string]Observation)
	for id, rec := range t.records {
		if cycle-rec.LastCycle < windowCycles {
			active[id] = *rec
		}
	}
	return active
}

// Streak returns the consecutive-cycle streak for a topic, 0 if untracked.
func (t *Tracker) Streak(topicID string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if rec, ok := t.records[topicID]; ok {
		return rec.Streak
	}
	return 0
}

// Sweep evicts topics that have not been observed for the configured
// number of cycles. Returns the number of records dropped. Call once at
// the end of each cycle.
func (t *Tracker) Sweep(cycle int) int {
	if t.evictAfter <= 0 {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	dropped := 0
	for id, rec := range t.records {
		if cycle-rec.LastCycle >= t.evictAfter {
			delete(t.records, id)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of tracked topics.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.records)
}
