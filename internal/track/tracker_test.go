package track

import (
	"sync"
	"testing"
)

func TestObserveNewTopic(t *testing.T) {
	tr := NewTracker(0)
	tr.Observe("tariffs", 5)

	active := tr.ActiveWithin(5, 1)
	rec, ok := active["tariffs"]
	if !ok {
		t.Fatal("expected tariffs to be active")
	}
	if rec.FirstCycle != 5 || rec.LastCycle != 5 || rec.Streak != 1 {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestObserveSameCycleIdempotent(t *testing.T) {
	tr := NewTracker(0)
	tr.Observe("tariffs", 3)
	tr.Observe("tariffs", 3)
	tr.Observe("tariffs", 3)

	if got := tr.Streak("tariffs"); got != 1 {
		t.Errorf("streak = %d, want 1 after repeat observations in one cycle", got)
	}
}

func TestStreakGrowsOnConsecutiveCycles(t *testing.T) {
	tr := NewTracker(0)
	tr.Observe("tariffs", 1)
	tr.Observe("tariffs", 2)
	tr.Observe("tariffs", 3)

	if got := tr.Streak("tariffs"); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}

func TestStreakResetsOnGap(t *testing.T) {
	tr := NewTracker(0)
	tr.Observe("tariffs", 1)
	tr.Observe("tariffs", 2)
	tr.Observe("tariffs", 5) // gap of two cycles

	if got := tr.Streak("tariffs"); got != 1 {
		t.Errorf("streak = %d, want 1 after gap", got)
	}

	active := tr.ActiveWithin(5, 1)
	if rec := active["tariffs"]; rec.FirstCycle != 1 {
		t.Errorf("FirstCycle = %d, want 1 preserved across gap", rec.FirstCycle)
	}
}

func TestActiveWithinWindow(t *testing.T) {
	tr := NewTracker(0)
	tr.Observe("old", 1)
	tr.Observe("recent", 4)
	tr.Observe("current", 5)

	active := tr.ActiveWithin(5, 2)
	if _, ok := active["old"]; ok {
		t.Error("topic last seen at cycle 1 should be outside a 2-cycle window at cycle 5")
	}
	if _, ok := active["recent"]; !ok {
		t.Error("topic seen at cycle 4 should be inside a 2-cycle window at cycle 5")
	}
	if _, ok := active["current"]; !ok {
		t.Error("topic seen this cycle should be active")
	}
}

func TestActiveWithinReturnsCopies(t *testing.T) {
	tr := NewTracker(0)
	tr.Observe("tariffs", 1)

	active := tr.ActiveWithin(1, 1)
	rec := active["tariffs"]
	rec.Streak = 99

	if got := tr.Streak("tariffs"); got != 1 {
		t.Errorf("mutating a returned observation changed tracker state: streak %d", got)
	}
}

func TestSweepEvictsStaleTopics(t *testing.T) {
	tr := NewTracker(3)
	tr.Observe("stale", 1)
	tr.Observe("fresh", 3)

	dropped := tr.Sweep(4)
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	if tr.Len() != 1 {
		t.Errorf("Len = %d, want 1", tr.Len())
	}
	if tr.Streak("stale") != 0 {
		t.Error("stale topic should be gone")
	}
	if tr.Streak("fresh") != 1 {
		t.Error("fresh topic should survive the sweep")
	}
}

func TestSweepDisabled(t *testing.T) {
	tr := NewTracker(0)
	tr.Observe("ancient", 1)

	if dropped := tr.Sweep(1000); dropped != 0 {
		t.Errorf("dropped = %d, want 0 with eviction disabled", dropped)
	}
	if tr.Len() != 1 {
		t.Error("record should survive with eviction disabled")
	}
}

func TestReobserveAfterEviction(t *testing.T) {
	tr := NewTracker(2)
	tr.Observe("tariffs", 1)
	tr.Sweep(3)

	tr.Observe("tariffs", 4)
	active := tr.ActiveWithin(4, 1)
	rec := active["tariffs"]
	if rec.FirstCycle != 4 {
		t.Errorf("FirstCycle = %d, want 4 for a re-created record", rec.FirstCycle)
	}
}

func TestConcurrentObserve(t *testing.T) {
	tr := NewTracker(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Observe("tariffs", 7)
			tr.Observe("sanctions", 7)
			_ = tr.Streak("tariffs")
		}()
	}
	wg.Wait()

	if tr.Len() != 2 {
		t.Errorf("Len = %d, want 2", tr.Len())
	}
	if got := tr.Streak("tariffs"); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}
