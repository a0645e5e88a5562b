package corpus

import (
	"fmt"
	"os"

	"github.com/conversekit/luisc/pkg/luisc/internalerr"
)

// Load reads and parses a single corpus file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrDocumentRead, path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadAll reads every file in order and merges them into one document.
// The merge policy is last-wins per top-level key: a later file's intent,
// list or phraselist of the same name replaces the earlier one wholesale.
// The returned slice names every key that was overwritten, so callers can
// surface the collisions instead of merging silently.
func LoadAll(paths []string) (*Document, []string, error) {
	merged := &Document{}
	var overwritten []string
	for _, path := range paths {
		doc, err := Load(path)
		if err != nil {
			return nil, nil, err
		}
		overwritten = append(overwritten, Merge(merged, doc)...)
	}
	if err := merged.Validate(); err != nil {
		return nil, nil, err
	}
	return merged, overwritten, nil
}

// Merge folds src into dst and reports which keys dst already held.
// Builtin entries are appended; they are a passthrough array, not a keyed
// collection.
func Merge(dst, src *Document) []string {
	var overwritten []string
	for _, in := range src.Intents {
		if dst.upsertIntent(in) {
			overwritten = append(overwritten, in.Name)
		}
	}
	for _, l := range src.Lists {
		if dst.upsertList(l) {
			overwritten = append(overwritten, listKeyPrefix+l.Name)
		}
	}
	for _, pl := range src.Phraselists {
		if dst.upsertPhraselist(pl) {
			overwritten = append(overwritten, phraselistKey+"."+pl.Name)
		}
	}
	dst.Builtins = append(dst.Builtins, src.Builtins...)
	return overwritten
}
