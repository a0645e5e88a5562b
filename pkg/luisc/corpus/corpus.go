package corpus

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conversekit/luisc/pkg/luisc/internalerr"
)

// Key prefixes and reserved keys that drive the syntactic partition of a
// source document. Anything that is not a list, phraselist or builtin block
// is an intent.
const (
	listKeyPrefix = "list."
	phraselistKey = "phraselist"
	builtinKey    = "builtin"
)

// Intent is a named category of user utterance with its sentence templates.
type Intent struct {
	Name      string
	Templates []string
}

// List is a named set of replacement values referenced from templates
// via ${name} placeholders.
type List struct {
	Name   string
	Values []string
}

// Phraselist is a named word list emitted as a model feature.
// Mode and Activated are nil when the source leaves them unset.
type Phraselist struct {
	Name      string   `yaml:"name"`
	Words     []string `yaml:"words"`
	Mode      *bool    `yaml:"mode"`
	Activated *bool    `yaml:"activated"`
}

// Document is the normalized in-memory view of a merged source corpus.
// Collections keep the order in which keys were authored so repeated
// compilations over identical input produce identical output.
type Document struct {
	Intents     []Intent
	Lists       []List
	Phraselists []Phraselist
	Builtins    []string
}

// Parse decodes a single YAML source into a Document. The top level must be
// a mapping; keys are partitioned by naming convention: "list.<name>" keys
// declare lists, "phraselist" declares the phraselist block, "builtin" the
// builtin-entity block, and every other key declares an intent.
//
// Decoding walks the yaml mapping node directly instead of unmarshalling
// into a map so the authored key order survives.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrDocumentRead, err)
	}

	doc := &Document{}
	if root.Kind == 0 || len(root.Content) == 0 {
		// Empty source file: an empty document, not an error.
		return doc, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping, got %s", internalerr.ErrDocumentRead, kindName(mapping.Kind))
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valNode := mapping.Content[i+1]
		key := keyNode.Value

		switch {
		case key == phraselistKey:
			var pls []Phraselist
			if err := valNode.Decode(&pls); err != nil {
				return nil, fmt.Errorf("%w: phraselist block (line %d): %v", internalerr.ErrDocumentRead, valNode.Line, err)
			}
			for _, pl := range pls {
				doc.upsertPhraselist(pl)
			}
		case key == builtinKey:
			var builtins []string
			if err := valNode.Decode(&builtins); err != nil {
				return nil, fmt.Errorf("%w: builtin block (line %d): %v", internalerr.ErrDocumentRead, valNode.Line, err)
			}
			doc.Builtins = append(doc.Builtins, builtins...)
		case strings.HasPrefix(key, listKeyPrefix):
			var values []string
			if err := valNode.Decode(&values); err != nil {
				return nil, fmt.Errorf("%w: list %q (line %d): %v", internalerr.ErrDocumentRead, key, valNode.Line, err)
			}
			doc.upsertList(List{Name: strings.TrimPrefix(key, listKeyPrefix), Values: values})
		default:
			var templates []string
			if err := valNode.Decode(&templates); err != nil {
				return nil, fmt.Errorf("%w: intent %q (line %d): %v", internalerr.ErrDocumentRead, key, valNode.Line, err)
			}
			doc.upsertIntent(Intent{Name: key, Templates: templates})
		}
	}

	return doc, nil
}

// List returns the values of a named list.
func (d *Document) List(name string) ([]string, bool) {
	for _, l := range d.Lists {
		if l.Name == name {
			return l.Values, true
		}
	}
	return nil, false
}

// Validate rejects documents whose blocks decoded but carry unusable shapes.
func (d *Document) Validate() error {
	for _, in := range d.Intents {
		if strings.TrimSpace(in.Name) == "" {
			return fmt.Errorf("%w: intent with empty name", internalerr.ErrDocumentRead)
		}
		if len(in.Templates) == 0 {
			return fmt.Errorf("%w: intent %q has no sentence templates", internalerr.ErrDocumentRead, in.Name)
		}
	}
	for _, l := range d.Lists {
		if strings.TrimSpace(l.Name) == "" {
			return fmt.Errorf("%w: list with empty name", internalerr.ErrDocumentRead)
		}
		if len(l.Values) == 0 {
			return fmt.Errorf("%w: list %q has no values", internalerr.ErrDocumentRead, l.Name)
		}
	}
	for _, pl := range d.Phraselists {
		if strings.TrimSpace(pl.Name) == "" {
			return fmt.Errorf("%w: phraselist with empty name", internalerr.ErrDocumentRead)
		}
		if len(pl.Words) == 0 {
			return fmt.Errorf("%w: phraselist %q has no words", internalerr.ErrDocumentRead, pl.Name)
		}
	}
	return nil
}

// upsertIntent replaces an intent of the same name in place or appends.
// Last declaration wins, keeping the original position so ordering stays
// stable under merges.
func (d *Document) upsertIntent(in Intent) bool {
	for i := range d.Intents {
		if d.Intents[i].Name == in.Name {
			d.Intents[i] = in
			return true
		}
	}
	d.Intents = append(d.Intents, in)
	return false
}

func (d *Document) upsertList(l List) bool {
	for i := range d.Lists {
		if d.Lists[i].Name == l.Name {
			d.Lists[i] = l
			return true
		}
	}
	d.Lists = append(d.Lists, l)
	return false
}

func (d *Document) upsertPhraselist(pl Phraselist) bool {
	for i := range d.Phraselists {
		if d.Phraselists[i].Name == pl.Name {
			d.Phraselists[i] = pl
			return true
		}
	}
	d.Phraselists = append(d.Phraselists, pl)
	return false
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
