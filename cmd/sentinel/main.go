// Sentinel - terminal situation monitor
//
// Sentinel polls news feeds, matches items against a topic catalog, and
// surfaces compound patterns when related topics co-occur within a recent
// window of cycles. Operators can annotate pattern narratives from the UI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/sentinel/internal/annot"
	"github.com/abelbrown/sentinel/internal/catalog"
	"github.com/abelbrown/sentinel/internal/config"
	"github.com/abelbrown/sentinel/internal/coord"
	"github.com/abelbrown/sentinel/internal/engine"
	"github.com/abelbrown/sentinel/internal/fetch"
	"github.com/abelbrown/sentinel/internal/locale"
	"github.com/abelbrown/sentinel/internal/logging"
	"github.com/abelbrown/sentinel/internal/store"
	"github.com/abelbrown/sentinel/internal/ui"
)

func main() {
	localeFlag := flag.String("locale", "", "presentation locale (overrides config)")
	catalogFlag := flag.String("catalog", "", "path to a YAML catalog overlay (overrides config)")
	flag.Parse()

	// Initialize logging
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fatal("Failed to load config: %v", err)
	}
	if *localeFlag != "" {
		cfg.Locale = *localeFlag
	}
	if *catalogFlag != "" {
		cfg.CatalogPath = *catalogFlag
	}

	// Ensure data directory exists
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory: %v", err)
	}
	dataDir := filepath.Join(homeDir, ".sentinel")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		fatal("Failed to create data directory: %v", err)
	}

	// Load and validate the topic catalog
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		fatal("Invalid catalog: %v", err)
	}
	logging.Info("Catalog loaded", "topics", len(cat.Topics), "patterns", len(cat.Patterns))

	// Localization bundle. Incomplete translations are a startup failure,
	// not something to discover mid-session.
	bundle := locale.NewBundle(cat)
	if err := bundle.Validate(); err != nil {
		fatal("Invalid locale bundle: %v", err)
	}

	// Open storage
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	st, err := store.Open(dbPath)
	if err != nil {
		fatal("Failed to open store: %v", err)
	}
	defer st.Close()
	logging.Info("Store initialized", "path", dbPath)

	// Annotation store persists through the kv table
	annots := annot.NewStore(cat, bundle, st)

	// Detection engine
	eng := engine.New(cat, annots, engine.Options{
		WindowCycles:     cfg.WindowCycles,
		EvictAfterCycles: cfg.EvictAfterCycles,
		Locale:           cfg.Locale,
	})

	// UI
	app := ui.NewApp(eng, annots, bundle, cfg.Locale)
	p := tea.NewProgram(app, tea.WithAltScreen())

	// Background fetch/evaluate loop
	sources := make([]fetch.Source, 0, len(cfg.Sources))
	for _, s := range cfg.Sources {
		sources = append(sources, fetch.Source{Name: s.Name, URL: s.URL})
	}
	fetcher := fetch.NewFetcher(30 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := coord.NewCoordinator(st, fetcher, eng, sources, time.Duration(cfg.RefreshInterval))
	c.Start(ctx, p)
	logging.Info("Coordinator started", "sources", len(sources), "interval", time.Duration(cfg.RefreshInterval))

	if _, err := p.Run(); err != nil {
		logging.Error("Application error", "error", err)
		fatal("Error: %v", err)
	}

	cancel()
	c.Wait()
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
