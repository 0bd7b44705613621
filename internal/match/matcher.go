// Package match applies the topic catalog to ingested text and resolves
// source credibility weights. Matching is deterministic pattern matching,
// not language understanding.
package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abelbrown/sentinel/internal/catalog"
)

// Warning records a pattern that could not be compiled. The topic's other
// patterns still match; a warning is non-fatal.
type Warning struct {
	TopicID string
	Pattern string
	Err     error
}

func (w Warning) String() string {
	return fmt.Sprintf("topic %s: pattern %q: %v", w.TopicID, w.Pattern, w.Err)
}

// rule is a single compiled match rule: either a whole-word phrase or a
// regular expression.
type rule struct {
	phrase string         // lowercase phrase, empty if regex
	re     *regexp.Regexp // nil if phrase
}

func (r rule) matches(lower string) bool {
	if r.re != nil {
		return r.re.MatchString(lower)
	}
	return containsWord(lower, r.phrase)
}

type compiledTopic struct {
	id    string
	rules []rule
}

// Matcher matches text items against the topic catalog. It is immutable
// after construction and safe for concurrent use.
type Matcher struct {
	topics []compiledTopic
}

// NewMatcher compiles the catalog's topic patterns. Patterns wrapped in
// slashes are compiled as case-insensitive regular expressions; everything
// else is matched as a whole-word phrase. Unparseable regex patterns are
// skipped and returned as warnings rather than failing the matcher.
func NewMatcher(c *catalog.Catalog) (*Matcher, []Warning) {
	m := &Matcher{topics: make([]compiledTopic, 0, len(c.Topics))}
	var warnings []Warning

	for _, t := range c.Topics {
		ct := compiledTopic{id: t.ID}
		for _, p := range t.Patterns {
			if strings.HasPrefix(p, "/") && strings.HasSuffix(p, "/") && len(p) > 2 {
				re, err := regexp.Compile("(?i)" + p[1:len(p)-1])
				if err != nil {
					warnings = append(warnings, Warning{TopicID: t.ID, Pattern: p, Err: err})
					continue
				}
				ct.rules = append(ct.rules, rule{re: re})
				continue
			}
			ct.rules = append(ct.rules, rule{phrase: strings.ToLower(p)})
		}
		m.topics = append(m.topics, ct)
	}

	return m, warnings
}

// Match returns the ids of all topics whose pattern set matches the text.
// Case-insensitive; a topic matches if any of its rules matches. Pure
// function: no side effects, no I/O.
func (m *Matcher) Match(text string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, t := range m.topics {
		for _, r := range t.rules {
			if r.matches(lower) {
				matched = append(matched, t.id)
				break
			}
		}
	}
	return matched
}

// containsWord checks if text contains word as a whole word (not substring)
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	idx := strings.Index(text, word)
	if idx < 0 {
		return false
	}

	// Check left boundary
	if idx > 0 {
		prev := text[idx-1]
		if isAlphaNum(prev) {
			// Not a word boundary, check for later occurrences
			return containsWord(text[idx+len(word):], word)
		}
	}

	// Check right boundary
	end := idx + len(word)
	if end < len(text) {
		next := text[end]
		if isAlphaNum(next) {
			return containsWord(text[end:], word)
		}
	}

	return true
}

func isAlphaNum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
