// Package annot lets an operator append free-text narrative bullets to a
// compound pattern, persisted and merged with the built-in content. This
// is best-effort enrichment: persistence failures degrade to "no manual
// additions", never to an error the caller has to handle.
package annot

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/abelbrown/sentinel/internal/catalog"
	"github.com/abelbrown/sentinel/internal/locale"
	"github.com/abelbrown/sentinel/internal/logging"
)

// storageKey is the single well-known key all manual annotations live
// under, as a JSON object mapping locale → pattern id → category → texts.
const storageKey = "sentinel/manual-annotations"

// KV is the storage port the annotation store persists through. Both
// methods are best-effort from the store's point of view.
type KV interface {
	GetValue(key string) ([]byte, bool, error)
	SetValue(key string, value []byte) error
}

// annotations is the persisted shape: locale → pattern id → category → texts.
type annotations map[string]map[string]map[string][]string

// Store merges operator-written narrative bullets with the built-in,
// localized pattern metadata. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	kv      KV
	catalog *catalog.Catalog
	bundle  *locale.Bundle
}

// NewStore creates an annotation store over the given storage port.
func NewStore(c *catalog.Catalog, b *locale.Bundle, kv KV) *Store {
	return &Store{kv: kv, catalog: c, bundle: b}
}

// Append trims the text and merges it into the list for the given
// pattern/category/locale. Empty input is a no-op. Existing entries are
// never removed or reordered; new text is appended. Persistence failures
// are logged and otherwise ignored.
func (s *Store) Append(loc, patternID, category, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if !validCategory(category) {
		logging.Warn("annotation for unknown category dropped", "category", category, "pattern", patternID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.read()
	if all[loc] == nil {
		all[loc] = make(map[string]map[string][]string)
	}
	if all[loc][patternID] == nil {
		all[loc][patternID] = make(map[string][]string)
	}
	all[loc][patternID][category] = append(all[loc][patternID][category], text)

	s.write(all)
}

// Additions returns the persisted manual additions for one pattern in one
// locale, keyed by narrative category. Missing or unreadable data yields
// an empty map.
func (s *Store) Additions(loc, patternID string) map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	byPattern, ok := s.read()[loc]
	if !ok {
		return map[string][]string{}
	}
	byCategory, ok := byPattern[patternID]
	if !ok {
		return map[string][]string{}
	}

	out := make(map[string][]string, len(byCategory))
	for cat, texts := range byCategory {
		out[cat] = append([]string(nil), texts...)
	}
	return out
}

// Load returns the narrative metadata for every pattern in the given
// locale: the built-in (localized) lists with any persisted manual
// additions appended after them.
func (s *Store) Load(loc string) map[string]catalog.Narrative {
	out := make(map[string]catalog.Narrative, len(s.catalog.Patterns))
	for _, p := range s.catalog.Patterns {
		out[p.ID] = s.Decorate(p, loc).Narrative
	}
	return out
}

// Decorate returns the pattern localized for loc with manual additions
// appended to its narrative lists. The input pattern is not mutated.
func (s *Store) Decorate(p catalog.CompoundPattern, loc string) catalog.CompoundPattern {
	lp := s.bundle.Localize(p, loc)

	// Copy the lists so appends don't alias the catalog's backing arrays.
	merged := catalog.Narrative{}
	for _, cat := range catalog.Categories() {
		for _, text := range lp.Narrative.List(cat) {
			merged.Add(cat, text)
		}
	}
	for _, cat := range catalog.Categories() {
		for _, text := range s.Additions(loc, p.ID)[cat] {
			merged.Add(cat, text)
		}
	}

	lp.Narrative = merged
	return lp
}

// read loads the persisted annotation map, treating absent or corrupt
// data as empty. Caller must hold s.mu.
func (s *Store) read() annotations {
	all := make(annotations)
	if s.kv == nil {
		return all
	}

	data, found, err := s.kv.GetValue(storageKey)
	if err != nil {
		logging.Warn("annotation read failed", "error", err)
		return all
	}
	if !found || len(data) == 0 {
		return all
	}
	if err := json.Unmarshal(data, &all); err != nil {
		logging.Warn("annotation data corrupt, treating as empty", "error", err)
		return make(annotations)
	}
	return all
}

// write persists the annotation map. Caller must hold s.mu.
func (s *Store) write(all annotations) {
	if s.kv == nil {
		return
	}
	data, err := json.Marshal(all)
	if err != nil {
		logging.Warn("annotation encode failed", "error", err)
		return
	}
	if err := s.kv.SetValue(storageKey, data); err != nil {
		logging.Warn("annotation write failed", "error", err)
	}
}

func validCategory(category string) bool {
	for _, cat := range catalog.Categories() {
		if cat == category {
			return true
		}
	}
	return false
}
