// Package engine runs the per-cycle detection pipeline.
//
// Each cycle takes the items fetched since the previous cycle, matches them
// against the topic catalog, records topic activity in the tracker, and
// evaluates compound patterns over the recent activity window.
package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/abelbrown/sentinel/internal/annot"
	"github.com/abelbrown/sentinel/internal/catalog"
	"github.com/abelbrown/sentinel/internal/compound"
	"github.com/abelbrown/sentinel/internal/logging"
	"github.com/abelbrown/sentinel/internal/match"
	"github.com/abelbrown/sentinel/internal/store"
	"github.com/abelbrown/sentinel/internal/track"
)

// TopicActivity summarizes one topic's hits within a single cycle.
type TopicActivity struct {
	TopicID    string
	Hits       int     // items that matched this cycle
	MeanWeight float64 // mean credibility weight of matching items
	Streak     int     // consecutive cycles seen, from the tracker
}

// Activation is a compound pattern result decorated for presentation.
type Activation struct {
	compound.Result
	Decorated catalog.CompoundPattern // localized, with manual annotations applied
}

// CycleReport is the outcome of one engine cycle.
type CycleReport struct {
	Cycle       int
	At          time.Time
	ItemCount   int
	Topics      []TopicActivity // sorted by hits desc, id asc
	Activations []Activation    // sorted by score desc
	Evicted     int
}

// Engine coordinates matching, tracking and evaluation across cycles.
// Thread-safety: Run and accessors are safe for concurrent use.
type Engine struct {
	matcher   *match.Matcher
	resolver  *match.Resolver
	tracker   *track.Tracker
	evaluator *compound.Evaluator
	annots    *annot.Store

	windowCycles int
	locale       string

	mu      sync.RWMutex
	cycle   int
	last    *CycleReport
	history []*CycleReport // most recent reports, oldest first
}

// historySize bounds the retained cycle reports.
const historySize = 12

// Options configures a new Engine.
type Options struct {
	WindowCycles     int
	EvictAfterCycles int
	Locale           string
}

// New builds an Engine from a validated catalog. Malformed topic patterns
// are logged once here and skipped thereafter.
func New(cat *catalog.Catalog, annots *annot.Store, opts Options) *Engine {
	matcher, warnings := match.NewMatcher(cat)
	for _, w := range warnings {
		logging.Warn("Skipping malformed topic pattern", "topic", w.TopicID, "pattern", w.Pattern, "error", w.Err)
	}

	if opts.WindowCycles <= 0 {
		opts.WindowCycles = 3
	}
	if opts.Locale == "" {
		opts.Locale = "en"
	}

	return &Engine{
		matcher:      matcher,
		resolver:     match.NewResolver(cat),
		tracker:      track.NewTracker(opts.EvictAfterCycles),
		evaluator:    compound.NewEvaluator(cat),
		annots:       annots,
		windowCycles: opts.WindowCycles,
		locale:       opts.Locale,
	}
}

// Run executes one cycle over the given items and returns the report.
func (e *Engine) Run(items []store.Item) *CycleReport {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cycle++
	cycle := e.cycle

	// Match every item and accumulate per-topic hit counts and weights.
	hits := make(map[string]int)
	weightSums := make(map[string]float64)

	for _, item := range items {
		text := item.Title
		if item.Summary != "" {
			text += " " + item.Summary
		}
		topics := e.matcher.Match(text)
		if len(topics) == 0 {
			continue
		}

		weight := e.resolver.Resolve(item.SourceName)
		for _, topicID := range topics {
			hits[topicID]++
			weightSums[topicID] += weight
			e.tracker.Observe(topicID, cycle)
		}
	}

	evicted := e.tracker.Sweep(cycle)

	// Build per-topic mean weights for the evaluator. Topics active from
	// earlier cycles but silent this cycle fall back to the default weight.
	topicWeights := make(map[string]float64, len(hits))
	for topicID, sum := range weightSums {
		topicWeights[topicID] = sum / float64(hits[topicID])
	}

	active := e.tracker.ActiveWithin(cycle, e.windowCycles)
	results := e.evaluator.Evaluate(active, topicWeights)

	activations := make([]Activation, 0, len(results))
	for _, res := range results {
		activations = append(activations, Activation{
			Result:    res,
			Decorated: e.annots.Decorate(res.Pattern, e.locale),
		})
	}

	report := &CycleReport{
		Cycle:       cycle,
		At:          time.Now(),
		ItemCount:   len(items),
		Topics:      topicActivities(hits, weightSums, e.tracker),
		Activations: activations,
		Evicted:     evicted,
	}
	e.last = report
	e.history = append(e.history, report)
	if len(e.history) > historySize {
		e.history = e.history[len(e.history)-historySize:]
	}

	logging.Info("Cycle complete",
		"cycle", cycle,
		"items", len(items),
		"topics", len(report.Topics),
		"activations", len(activations),
		"evicted", evicted)

	return report
}

// Last returns the most recent cycle report, or nil before the first cycle.
func (e *Engine) Last() *CycleReport {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.last
}

// History returns the retained cycle reports, oldest first.
func (e *Engine) History() []*CycleReport {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*CycleReport, len(e.history))
	copy(out, e.history)
	return out
}

// Cycle returns the current cycle number.
func (e *Engine) Cycle() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cycle
}

// SetLocale changes the presentation locale for future cycles.
func (e *Engine) SetLocale(locale string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.locale = locale
}

func topicActivities(hits map[string]int, weightSums map[string]float64, tracker *track.Tracker) []TopicActivity {
	out := make([]TopicActivity, 0, len(hits))
	for topicID, n := range hits {
		out = append(out, TopicActivity{
			TopicID:    topicID,
			Hits:       n,
			MeanWeight: weightSums[topicID] / float64(n),
			Streak:     tracker.Streak(topicID),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hits != out[j].Hits {
			return out[i].Hits > out[j].Hits
		}
		return out[i].TopicID < out[j].TopicID
	})
	return out
}
