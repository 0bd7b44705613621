// Package locale produces locale-specific views of compound pattern
// narrative metadata. Localization swaps display strings only: identifiers,
// topic membership, and thresholds used for detection are never touched.
package locale

import (
	"fmt"
	"sort"

	"github.com/abelbrown/sentinel/internal/catalog"
)

// Default is the canonical locale; its text lives in the catalog itself.
const Default = "en"

// Translation is the localized view of one pattern's display fields.
type Translation struct {
	Name      string
	Narrative catalog.Narrative
}

// Bundle holds translations for every registered locale over a single
// canonical catalog. Validate must pass before first use.
type Bundle struct {
	catalog *catalog.Catalog
	locales map[string]map[string]Translation // locale → pattern id
}

// NewBundle creates a bundle over the given catalog with the built-in
// translations registered.
func NewBundle(c *catalog.Catalog) *Bundle {
	b := &Bundle{
		catalog: c,
		locales: make(map[string]map[string]Translation),
	}
	b.Register("es", builtinSpanish)
	return b
}

// Register adds or replaces a locale's translation table.
func (b *Bundle) Register(locale string, translations map[string]Translation) {
	table := make(map[string]Translation, len(translations))
	for id, tr := range translations {
		table[id] = tr
	}
	b.locales[locale] = table
}

// Locales returns the registered locales plus the default, sorted.
func (b *Bundle) Locales() []string {
	out := []string{Default}
	for loc := range b.locales {
		out = append(out, loc)
	}
	sort.Strings(out)
	return out
}

// Validate confirms structural parity: every registered locale must
// translate every canonical pattern, with each of the five narrative lists
// the same length as the canonical list. A mismatch is a fatal
// configuration error, surfaced before the engine starts.
func (b *Bundle) Validate() error {
	for loc, table := range b.locales {
		for _, p := range b.catalog.Patterns {
			tr, ok := table[p.ID]
			if !ok {
				return fmt.Errorf("locale %s: missing translation for pattern %q", loc, p.ID)
			}
			if tr.Name == "" {
				return fmt.Errorf("locale %s: pattern %q has empty name", loc, p.ID)
			}
			for _, cat := range catalog.Categories() {
				want := len(p.Narrative.List(cat))
				got := len(tr.Narrative.List(cat))
				if got != want {
					return fmt.Errorf("locale %s: pattern %q: %s has %d entries, canonical has %d",
						loc, p.ID, cat, got, want)
				}
			}
		}
	}
	return nil
}

// Localize returns a copy of the pattern whose display fields (name and
// narrative lists) are replaced by the locale's translation. Detection
// fields pass through unchanged. Unknown locales and untranslated patterns
// fall back to the canonical text.
func (b *Bundle) Localize(p catalog.CompoundPattern, locale string) catalog.CompoundPattern {
	if locale == Default {
		return p
	}
	table, ok := b.locales[locale]
	if !ok {
		return p
	}
	tr, ok := table[p.ID]
	if !ok {
		return p
	}

	out := p
	out.Name = tr.Name
	out.Narrative = tr.Narrative
	return out
}
