package annot

import (
	"errors"
	"reflect"
	"testing"

	"github.com/abelbrown/sentinel/internal/catalog"
	"github.com/abelbrown/sentinel/internal/locale"
)

func newTestStore(kv KV) *Store {
	c := catalog.Builtin()
	return NewStore(c, locale.NewBundle(c), kv)
}

func TestAppendTrimsAndPersists(t *testing.T) {
	kv := NewMemoryKV()
	s := newTestStore(kv)

	s.Append("en", "trade-war-escalation", catalog.CategoryIndicators, "  new indicator  ")

	got := s.Additions("en", "trade-war-escalation")
	want := map[string][]string{catalog.CategoryIndicators: {"new indicator"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Additions = %v, want %v", got, want)
	}

	// A second store over the same KV sees the persisted data.
	s2 := newTestStore(kv)
	got = s2.Additions("en", "trade-war-escalation")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reloaded Additions = %v, want %v", got, want)
	}
}

func TestAppendEmptyIsNoOp(t *testing.T) {
	s := newTestStore(NewMemoryKV())

	s.Append("en", "trade-war-escalation", catalog.CategoryIndicators, "   ")
	s.Append("en", "trade-war-escalation", catalog.CategoryIndicators, "")

	if got := s.Additions("en", "trade-war-escalation"); len(got) != 0 {
		t.Errorf("expected no additions, got %v", got)
	}
}

func TestAppendUnknownCategoryDropped(t *testing.T) {
	s := newTestStore(NewMemoryKV())

	s.Append("en", "trade-war-escalation", "vibes", "not a real category")

	if got := s.Additions("en", "trade-war-escalation"); len(got) != 0 {
		t.Errorf("expected no additions for unknown category, got %v", got)
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	s := newTestStore(NewMemoryKV())

	s.Append("en", "trade-war-escalation", catalog.CategoryAssumptions, "first")
	s.Append("en", "trade-war-escalation", catalog.CategoryAssumptions, "second")
	s.Append("en", "trade-war-escalation", catalog.CategoryAssumptions, "third")

	got := s.Additions("en", "trade-war-escalation")[catalog.CategoryAssumptions]
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("additions out of order: %v", got)
	}
}

func TestAdditionsScopedByLocaleAndPattern(t *testing.T) {
	s := newTestStore(NewMemoryKV())

	s.Append("en", "trade-war-escalation", catalog.CategoryIndicators, "english note")
	s.Append("es", "trade-war-escalation", catalog.CategoryIndicators, "nota en español")
	s.Append("en", "energy-shock", catalog.CategoryIndicators, "other pattern")

	en := s.Additions("en", "trade-war-escalation")[catalog.CategoryIndicators]
	if !reflect.DeepEqual(en, []string{"english note"}) {
		t.Errorf("en additions = %v", en)
	}
	es := s.Additions("es", "trade-war-escalation")[catalog.CategoryIndicators]
	if !reflect.DeepEqual(es, []string{"nota en español"}) {
		t.Errorf("es additions = %v", es)
	}
}

func TestDecorateMergesManualAdditions(t *testing.T) {
	c := catalog.Builtin()
	s := NewStore(c, locale.NewBundle(c), NewMemoryKV())
	p, _ := c.Pattern("trade-war-escalation")

	builtinCount := len(p.Narrative.Indicators)
	s.Append("en", p.ID, catalog.CategoryIndicators, "manual bullet")

	decorated := s.Decorate(p, "en")
	got := decorated.Narrative.Indicators
	if len(got) != builtinCount+1 {
		t.Fatalf("expected %d indicators, got %d", builtinCount+1, len(got))
	}
	if got[len(got)-1] != "manual bullet" {
		t.Errorf("manual addition should come after built-ins, got %v", got)
	}

	// Original pattern must be untouched.
	if len(p.Narrative.Indicators) != builtinCount {
		t.Error("Decorate mutated the input pattern")
	}
}

func TestDecorateLocalizedWithAdditions(t *testing.T) {
	c := catalog.Builtin()
	s := NewStore(c, locale.NewBundle(c), NewMemoryKV())
	p, _ := c.Pattern("trade-war-escalation")

	s.Append("es", p.ID, catalog.CategoryKeyJudgments, "juicio manual")

	decorated := s.Decorate(p, "es")
	if decorated.Name != "Escalada de Guerra Comercial" {
		t.Errorf("expected Spanish name, got %s", decorated.Name)
	}
	kj := decorated.Narrative.KeyJudgments
	if kj[len(kj)-1] != "juicio manual" {
		t.Errorf("expected Spanish manual addition last, got %v", kj)
	}
}

func TestLoadReturnsAllPatterns(t *testing.T) {
	c := catalog.Builtin()
	s := NewStore(c, locale.NewBundle(c), NewMemoryKV())

	narratives := s.Load("en")
	if len(narratives) != len(c.Patterns) {
		t.Errorf("Load returned %d narratives, want %d", len(narratives), len(c.Patterns))
	}
	for _, p := range c.Patterns {
		if _, ok := narratives[p.ID]; !ok {
			t.Errorf("Load missing pattern %s", p.ID)
		}
	}
}

func TestCorruptDataTreatedAsEmpty(t *testing.T) {
	kv := NewMemoryKV()
	kv.SetValue(storageKey, []byte("{not json"))
	s := newTestStore(kv)

	if got := s.Additions("en", "trade-war-escalation"); len(got) != 0 {
		t.Errorf("corrupt data should read as empty, got %v", got)
	}

	// Appending over corrupt data starts fresh rather than failing.
	s.Append("en", "trade-war-escalation", catalog.CategoryIndicators, "recovered")
	got := s.Additions("en", "trade-war-escalation")[catalog.CategoryIndicators]
	if !reflect.DeepEqual(got, []string{"recovered"}) {
		t.Errorf("expected recovery after corrupt data, got %v", got)
	}
}

// failingKV errors on every operation.
type failingKV struct{}

func (failingKV) GetValue(string) ([]byte, bool, error) { return nil, false, errors.New("disk gone") }
func (failingKV) SetValue(string, []byte) error         { return errors.New("disk gone") }

func TestStorageFailuresAreBestEffort(t *testing.T) {
	s := newTestStore(failingKV{})

	// Neither call may panic or surface an error.
	s.Append("en", "trade-war-escalation", catalog.CategoryIndicators, "lost note")
	if got := s.Additions("en", "trade-war-escalation"); len(got) != 0 {
		t.Errorf("expected empty additions with failing storage, got %v", got)
	}

	// Decorate still returns the built-in narrative.
	c := catalog.Builtin()
	p, _ := c.Pattern("trade-war-escalation")
	decorated := s.Decorate(p, "en")
	if len(decorated.Narrative.KeyJudgments) == 0 {
		t.Error("expected built-in narrative despite storage failure")
	}
}

func TestNilKVDisablesPersistence(t *testing.T) {
	s := newTestStore(nil)

	s.Append("en", "trade-war-escalation", catalog.CategoryIndicators, "ephemeral")
	if got := s.Additions("en", "trade-war-escalation"); len(got) != 0 {
		t.Errorf("nil KV should hold nothing, got %v", got)
	}
}
