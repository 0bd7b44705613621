package match

import (
	"strings"

	"github.com/abelbrown/sentinel/internal/catalog"
)

// DefaultWeight applies when no configured key fragment matches the
// normalized source name. Unknown sources are weighted neutrally, not
// excluded.
const DefaultWeight = 1.0

// Resolver maps free-text source names to credibility weights via ordered
// substring lookup. Immutable after construction.
type Resolver struct {
	entries []catalog.WeightEntry
}

// NewResolver builds a resolver from the catalog's source weight table.
// Declaration order is preserved: the first matching fragment wins.
func NewResolver(c *catalog.Catalog) *Resolver {
	entries := make([]catalog.WeightEntry, len(c.SourceWeights))
	copy(entries, c.SourceWeights)
	return &Resolver{entries: entries}
}

// Resolve normalizes the source name and returns the weight of the first
// configured key that is a contiguous substring of it, or DefaultWeight.
func (r *Resolver) Resolve(sourceName string) float64 {
	normalized := normalizeSource(sourceName)
	for _, e := range r.entries {
		if strings.Contains(normalized, e.Key) {
			return e.Weight
		}
	}
	return DefaultWeight
}

// normalizeSource lowercases and strips everything except letters, so
// "AP News Wire" becomes "apnewswire".
func normalizeSource(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}
