package corpus

import (
	"errors"
	"testing"

	"github.com/conversekit/luisc/pkg/luisc/internalerr"
)

const sampleSource = `
greet:
  - hello there
  - good ${daytime}
travel:
  - go to [Burgos:city]
list.daytime:
  - morning
  - evening
phraselist:
  - name: cities
    words: [madrid, barcelona]
  - name: places
    words: [stadium]
    mode: false
    activated: false
builtin:
  - datetimeV2
  - number
`

func TestParsePartitionsByKey(t *testing.T) {
	doc, err := Parse([]byte(sampleSource))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(doc.Intents) != 2 {
		t.Fatalf("Expected 2 intents, got %d", len(doc.Intents))
	}
	if doc.Intents[0].Name != "greet" || doc.Intents[1].Name != "travel" {
		t.Errorf("Intent order not preserved: %q, %q", doc.Intents[0].Name, doc.Intents[1].Name)
	}
	if len(doc.Intents[0].Templates) != 2 {
		t.Errorf("Expected 2 templates for greet, got %d", len(doc.Intents[0].Templates))
	}

	values, ok := doc.List("daytime")
	if !ok {
		t.Fatal("List 'daytime' not found")
	}
	if len(values) != 2 || values[0] != "morning" || values[1] != "evening" {
		t.Errorf("List values wrong: %v", values)
	}

	if len(doc.Phraselists) != 2 {
		t.Fatalf("Expected 2 phraselists, got %d", len(doc.Phraselists))
	}
	if doc.Phraselists[0].Mode != nil || doc.Phraselists[0].Activated != nil {
		t.Error("Unset phraselist flags should decode as nil")
	}
	if doc.Phraselists[1].Mode == nil || *doc.Phraselists[1].Mode {
		t.Error("Explicit mode: false should decode as non-nil false")
	}

	if len(doc.Builtins) != 2 || doc.Builtins[0] != "datetimeV2" {
		t.Errorf("Builtins wrong: %v", doc.Builtins)
	}
}

func TestParseListPrefixIsSyntactic(t *testing.T) {
	// A key named exactly "list.x" is a list; "listx" is an intent.
	doc, err := Parse([]byte("list.x: [a]\nlistx: [b]\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := doc.List("x"); !ok {
		t.Error("list.x should partition as a list")
	}
	if len(doc.Intents) != 1 || doc.Intents[0].Name != "listx" {
		t.Errorf("listx should partition as an intent, got %+v", doc.Intents)
	}
}

func TestParseEmptySource(t *testing.T) {
	doc, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Empty source should parse: %v", err)
	}
	if len(doc.Intents) != 0 || len(doc.Lists) != 0 {
		t.Error("Empty source should produce an empty document")
	}
}

func TestParseRejectsNonMappingRoot(t *testing.T) {
	_, err := Parse([]byte("- just\n- a\n- sequence\n"))
	if err == nil {
		t.Fatal("Expected error for sequence root")
	}
	if !errors.Is(err, internalerr.ErrDocumentRead) {
		t.Errorf("Expected ErrDocumentRead, got %v", err)
	}
}

func TestParseRejectsScalarIntentBody(t *testing.T) {
	_, err := Parse([]byte("greet: just a scalar\n"))
	if err == nil {
		t.Fatal("Expected error for scalar intent body")
	}
	if !errors.Is(err, internalerr.ErrDocumentRead) {
		t.Errorf("Expected ErrDocumentRead, got %v", err)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("greet: [unclosed\n"))
	if err == nil {
		t.Fatal("Expected error for malformed YAML")
	}
	if !errors.Is(err, internalerr.ErrDocumentRead) {
		t.Errorf("Expected ErrDocumentRead, got %v", err)
	}
}

func TestValidateRejectsEmptyBlocks(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"intent without templates", "greet: []\n"},
		{"list without values", "greet: [hi]\nlist.empty: []\n"},
		{"phraselist without words", "greet: [hi]\nphraselist:\n  - name: p\n    words: []\n"},
	}

	for _, tt := range tests {
		doc, err := Parse([]byte(tt.source))
		if err != nil {
			t.Fatalf("%s: Parse failed: %v", tt.name, err)
		}
		if err := doc.Validate(); err == nil {
			t.Errorf("%s: Validate should reject", tt.name)
		}
	}
}

func TestDuplicateKeyInOneSourceLastWins(t *testing.T) {
	doc, err := Parse([]byte("greet: [hello]\ngreet: [goodbye]\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(doc.Intents) != 1 {
		t.Fatalf("Expected 1 intent, got %d", len(doc.Intents))
	}
	if doc.Intents[0].Templates[0] != "goodbye" {
		t.Errorf("Later declaration should win, got %v", doc.Intents[0].Templates)
	}
}
