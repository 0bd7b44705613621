// Package catalog holds the static configuration the detection engine runs
// against: the topic catalog, the compound pattern catalog, and the source
// credibility table. Catalogs are loaded once at startup and immutable after.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Topic is a named, pattern-matched category of text content.
// A topic matches an item if any one of its patterns matches.
type Topic struct {
	ID       string   `yaml:"id"`
	Patterns []string `yaml:"patterns"`
	Category string   `yaml:"category"`
}

// Narrative category names. These double as the keys under which manual
// annotations are stored.
const (
	CategoryKeyJudgments        = "key_judgments"
	CategoryIndicators          = "indicators"
	CategoryConfirmationSignals = "confirmation_signals"
	CategoryAssumptions         = "assumptions"
	CategoryChangeTriggers      = "change_triggers"
)

// Categories lists the five narrative categories in display order.
func Categories() []string {
	return []string{
		CategoryKeyJudgments,
		CategoryIndicators,
		CategoryConfirmationSignals,
		CategoryAssumptions,
		CategoryChangeTriggers,
	}
}

// Narrative holds the five parallel metadata lists carried by a compound
// pattern. Translations must keep every list the same length as the
// canonical version.
type Narrative struct {
	KeyJudgments        []string `yaml:"key_judgments"`
	Indicators          []string `yaml:"indicators"`
	ConfirmationSignals []string `yaml:"confirmation_signals"`
	Assumptions         []string `yaml:"assumptions"`
	ChangeTriggers      []string `yaml:"change_triggers"`
}

// List returns the narrative list for a category name, or nil for an
// unknown category.
func (n Narrative) List(category string) []string {
	switch category {
	case CategoryKeyJudgments:
		return n.KeyJudgments
	case CategoryIndicators:
		return n.Indicators
	case CategoryConfirmationSignals:
		return n.ConfirmationSignals
	case CategoryAssumptions:
		return n.Assumptions
	case CategoryChangeTriggers:
		return n.ChangeTriggers
	}
	return nil
}

// Add appends text to the named category list. Returns false for an
// unknown category.
func (n *Narrative) Add(category, text string) bool {
	switch category {
	case CategoryKeyJudgments:
		n.KeyJudgments = append(n.KeyJudgments, text)
	case CategoryIndicators:
		n.Indicators = append(n.Indicators, text)
	case CategoryConfirmationSignals:
		n.ConfirmationSignals = append(n.ConfirmationSignals, text)
	case CategoryAssumptions:
		n.Assumptions = append(n.Assumptions, text)
	case CategoryChangeTriggers:
		n.ChangeTriggers = append(n.ChangeTriggers, text)
	default:
		return false
	}
	return true
}

// CompoundPattern is a higher-order signal defined as co-occurrence of at
// least MinTopics of the declared topic set.
type CompoundPattern struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Topics      []string  `yaml:"topics"`
	MinTopics   int       `yaml:"min_topics"`
	BoostFactor float64   `yaml:"boost_factor"`
	Narrative   Narrative `yaml:"narrative"`
}

// WeightEntry maps a lowercase alphabetic source key fragment to a
// credibility weight. Declaration order matters: the first matching
// fragment wins.
type WeightEntry struct {
	Key    string  `yaml:"key"`
	Weight float64 `yaml:"weight"`
}

// Catalog bundles the static configuration tables.
type Catalog struct {
	Topics        []Topic           `yaml:"topics"`
	Patterns      []CompoundPattern `yaml:"patterns"`
	SourceWeights []WeightEntry     `yaml:"source_weights"`
}

// Load returns the built-in catalog, optionally extended by a YAML overlay
// file, validated. An empty overlayPath means built-ins only.
func Load(overlayPath string) (*Catalog, error) {
	c := Builtin()

	if overlayPath != "" {
		data, err := os.ReadFile(overlayPath)
		if err != nil {
			return nil, fmt.Errorf("read catalog overlay: %w", err)
		}
		var overlay Catalog
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			return nil, fmt.Errorf("parse catalog overlay %s: %w", overlayPath, err)
		}
		c.Topics = append(c.Topics, overlay.Topics...)
		c.Patterns = append(c.Patterns, overlay.Patterns...)
		// Overlay weights are checked before built-ins so operators can
		// override the defaults for a given source.
		c.SourceWeights = append(overlay.SourceWeights, c.SourceWeights...)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the catalog invariants. Violations are configuration
// errors: a broken deployment, fatal at load time.
func (c *Catalog) Validate() error {
	topicIDs := make(map[string]bool, len(c.Topics))
	for _, t := range c.Topics {
		if t.ID == "" {
			return fmt.Errorf("catalog: topic with empty id")
		}
		if topicIDs[t.ID] {
			return fmt.Errorf("catalog: duplicate topic id %q", t.ID)
		}
		topicIDs[t.ID] = true
		if len(t.Patterns) == 0 {
			return fmt.Errorf("catalog: topic %q has no patterns", t.ID)
		}
	}

	patternIDs := make(map[string]bool, len(c.Patterns))
	for _, p := range c.Patterns {
		if p.ID == "" {
			return fmt.Errorf("catalog: pattern with empty id")
		}
		if patternIDs[p.ID] {
			return fmt.Errorf("catalog: duplicate pattern id %q", p.ID)
		}
		patternIDs[p.ID] = true

		if len(p.Topics) < 2 {
			return fmt.Errorf("catalog: pattern %q declares %d topics, need at least 2", p.ID, len(p.Topics))
		}
		if p.MinTopics < 2 || p.MinTopics > len(p.Topics) {
			// A minTopics beyond the topic set size can never activate.
			return fmt.Errorf("catalog: pattern %q has min_topics=%d outside [2, %d]", p.ID, p.MinTopics, len(p.Topics))
		}
		if p.BoostFactor <= 0 {
			return fmt.Errorf("catalog: pattern %q has non-positive boost_factor %g", p.ID, p.BoostFactor)
		}
		for _, id := range p.Topics {
			if !topicIDs[id] {
				return fmt.Errorf("catalog: pattern %q references unknown topic %q", p.ID, id)
			}
		}
	}

	for _, w := range c.SourceWeights {
		if w.Key == "" {
			return fmt.Errorf("catalog: source weight with empty key")
		}
		for _, r := range w.Key {
			if r < 'a' || r > 'z' {
				return fmt.Errorf("catalog: source weight key %q must be lowercase alphabetic", w.Key)
			}
		}
		if w.Weight <= 0 {
			return fmt.Errorf("catalog: source weight %q must be positive, got %g", w.Key, w.Weight)
		}
	}

	return nil
}

// Topic returns the topic with the given id.
func (c *Catalog) Topic(id string) (Topic, bool) {
	for _, t := range c.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// Pattern returns the compound pattern with the given id.
func (c *Catalog) Pattern(id string) (CompoundPattern, bool) {
	for _, p := range c.Patterns {
		if p.ID == id {
			return p, true
		}
	}
	return CompoundPattern{}, false
}
