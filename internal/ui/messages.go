// Package ui provides the Bubble Tea TUI for Sentinel.
package ui

import "github.com/abelbrown/sentinel/internal/engine"

// CycleComplete is sent when a fetch/evaluate cycle finishes.
type CycleComplete struct {
	Report *engine.CycleReport
}

// FetchComplete is sent when a single source fetch finishes.
type FetchComplete struct {
	Source   string
	NewItems int
	Err      error
}
