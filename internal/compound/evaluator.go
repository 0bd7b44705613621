// Package compound evaluates the compound pattern catalog against the
// currently-observed topic set and scores active patterns.
package compound

import (
	"sort"
	"sync"
	"time"

	"github.com/abelbrown/sentinel/internal/catalog"
	"github.com/abelbrown/sentinel/internal/track"
)

// maxBaseStrength bounds the base signal strength range. A pattern with
// every constituent topic active has base strength 10 before boost and
// credibility weighting.
const maxBaseStrength = 10.0

// Result is the per-cycle evaluation of one active compound pattern. It is
// a view, recomputed every cycle and never persisted.
type Result struct {
	PatternID     string
	Pattern       catalog.CompoundPattern
	MatchedTopics []string // subset of Pattern.Topics, in declared order
	MatchedCount  int
	Score         float64
	Sustained     bool // every matched topic has a streak of 2+ cycles
}

// patternStats tracks how often a pattern has activated.
type patternStats struct {
	TriggerCount int
	LastTrigger  time.Time
}

// Evaluator determines which compound patterns are active and computes
// their weighted scores.
type Evaluator struct {
	patterns []catalog.CompoundPattern

	mu    sync.Mutex
	stats map[string]*patternStats
}

// NewEvaluator creates an evaluator over a validated catalog.
func NewEvaluator(c *catalog.Catalog) *Evaluator {
	patterns := make([]catalog.CompoundPattern, len(c.Patterns))
	copy(patterns, c.Patterns)
	return &Evaluator{
		patterns: patterns,
		stats:    make(map[string]*patternStats),
	}
}

// Evaluate returns the active patterns for the given observed topic set,
// sorted by score descending. A pattern is active iff at least MinTopics
// of its declared topics are currently observed. topicWeights carries the
// mean source weight of the items contributing to each topic; missing
// topics default to a neutral 1.0.
//
// Score = baseStrength × boostFactor × meanSourceWeight, where
// baseStrength = 10 × matchedCount/len(topics). The base fraction makes
// the score monotonic in matched-topic count and comparable across
// patterns with different topic-set sizes.
func (e *Evaluator) Evaluate(active map[string]track.Observation, topicWeights map[string]float64) []Result {
	var results []Result
	now := time.Now()

	for _, p := range e.patterns {
		var matched []string
		weightSum := 0.0
		sustained := true

		for _, topicID := range p.Topics {
			obs, ok := active[topicID]
			if !ok {
				continue
			}
			matched = append(matched, topicID)
			if obs.Streak < 2 {
				sustained = false
			}
			if w, ok := topicWeights[topicID]; ok {
				weightSum += w
			} else {
				weightSum += 1.0
			}
		}

		if len(matched) < p.MinTopics {
			continue
		}

		base := maxBaseStrength * float64(len(matched)) / float64(len(p.Topics))
		meanWeight := weightSum / float64(len(matched))

		results = append(results, Result{
			PatternID:     p.ID,
			Pattern:       p,
			MatchedTopics: matched,
			MatchedCount:  len(matched),
			Score:         base * p.BoostFactor * meanWeight,
			Sustained:     sustained,
		})

		e.recordTrigger(p.ID, now)
	}

	// Sort by score descending; id ascending keeps ordering deterministic
	// when scores tie.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].PatternID < results[j].PatternID
	})

	return results
}

func (e *Evaluator) recordTrigger(patternID string, at time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, ok := e.stats[patternID]
	if !ok {
		st = &patternStats{}
		e.stats[patternID] = st
	}
	st.TriggerCount++
	st.LastTrigger = at
}

// TriggerCount returns how many cycles a pattern has been active for.
func (e *Evaluator) TriggerCount(patternID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if st, ok := e.stats[patternID]; ok {
		return st.TriggerCount
	}
	return 0
}

// LastTrigger returns when a pattern was last active (zero time if never).
func (e *Evaluator) LastTrigger(patternID string) time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()

	if st, ok := e.stats[patternID]; ok {
		return st.LastTrigger
	}
	return time.Time{}
}
