// Package coord provides background fetch and evaluation coordination.
package coord

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/abelbrown/sentinel/internal/engine"
	"github.com/abelbrown/sentinel/internal/fetch"
	"github.com/abelbrown/sentinel/internal/logging"
	"github.com/abelbrown/sentinel/internal/store"
	"github.com/abelbrown/sentinel/internal/ui"
)

// fetchTimeout is the timeout for each individual fetch.
const fetchTimeout = 30 * time.Second

// maxConcurrentFetches limits parallel fetch operations.
const maxConcurrentFetches = 5

// fetcher interface for dependency injection (testing).
type fetcher interface {
	Fetch(ctx context.Context, src fetch.Source) ([]store.Item, error)
}

// Coordinator manages the fetch/evaluate cycle.
// Uses context cancellation as the ONLY stop mechanism.
type Coordinator struct {
	store    *store.Store
	fetcher  fetcher        // interface for testing
	engine   *engine.Engine
	sources  []fetch.Source // IMMUTABLE: set at construction, never modified
	interval time.Duration
	wg       sync.WaitGroup
}

// NewCoordinator creates a Coordinator with the real fetcher.
func NewCoordinator(s *store.Store, f *fetch.Fetcher, e *engine.Engine, sources []fetch.Source, interval time.Duration) *Coordinator {
	return NewCoordinatorWithFetcher(s, f, e, sources, interval)
}

// NewCoordinatorWithFetcher allows injecting a custom fetcher (for testing).
func NewCoordinatorWithFetcher(s *store.Store, f fetcher, e *engine.Engine, sources []fetch.Source, interval time.Duration) *Coordinator {
	// Copy sources slice to ensure immutability
	sourcesCopy := make([]fetch.Source, len(sources))
	copy(sourcesCopy, sources)

	return &Coordinator{
		store:    s,
		fetcher:  f,
		engine:   e,
		sources:  sourcesCopy,
		interval: interval,
	}
}

// Start begins the background cycle loop. Call with a cancellable context.
// Runs an initial cycle immediately, then on each interval tick.
func (c *Coordinator) Start(ctx context.Context, program *tea.Program) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		c.runCycle(ctx, program)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.runCycle(ctx, program)
			}
		}
	}()
}

// Wait blocks until the background goroutine exits.
// Call after canceling the context passed to Start.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// runCycle fetches all sources in parallel, then runs one engine cycle over
// the items fetched since the cycle started.
func (c *Coordinator) runCycle(ctx context.Context, program *tea.Program) {
	started := time.Now()

	var g errgroup.Group
	g.SetLimit(maxConcurrentFetches)

	for _, src := range c.sources {
		g.Go(func() error {
			// Early exit if context cancelled
			if ctx.Err() != nil {
				return nil
			}
			c.fetchSource(ctx, src, program)
			return nil // never fail the group - errors reported per-source
		})
	}

	_ = g.Wait()

	if ctx.Err() != nil {
		return
	}

	items, err := c.store.ItemsFetchedSince(started.Add(-time.Second))
	if err != nil {
		logging.Error("Failed to load cycle items", "error", err)
		return
	}

	report := c.engine.Run(items)

	if program != nil {
		program.Send(ui.CycleComplete{Report: report})
	}
}

// fetchSource fetches a single source with timeout.
// Sends ui.FetchComplete message when done.
func (c *Coordinator) fetchSource(ctx context.Context, src fetch.Source, program *tea.Program) {
	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	items, err := c.fetcher.Fetch(fetchCtx, src)
	if err != nil {
		logging.Warn("Fetch failed", "source", src.Name, "error", err)
	}

	// Save items if fetch succeeded
	newItems := 0
	if err == nil && len(items) > 0 {
		var saveErr error
		newItems, saveErr = c.store.SaveItems(items)
		if saveErr != nil {
			logging.Error("Failed to save items", "source", src.Name, "error", saveErr)
		}
	}

	// Send completion message (handle nil program gracefully for testing)
	if program != nil {
		program.Send(ui.FetchComplete{
			Source:   src.Name,
			NewItems: newItems,
			Err:      err,
		})
	}
}
