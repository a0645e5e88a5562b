package compile

import (
	"fmt"
	"strings"

	"github.com/conversekit/luisc/pkg/luisc/model"
)

// BuildUtterance strips the inline tag syntax from a concrete sentence and
// records a token-index span for each tag.
//
// The walk is incremental: literal segments and tag values accumulate into
// a plain-text buffer, and each span's positions are word counts of that
// buffer at the moment the value lands in it. Counting against the growing
// buffer instead of searching the finished text keeps spans on the right
// occurrence when the same entity value appears more than once.
func BuildUtterance(sentence, intent string) model.Utterance {
	spans := ExtractTags(sentence)
	entities := make([]model.UtteranceEntity, 0, len(spans))

	var buf strings.Builder
	cursor := 0
	for _, sp := range spans {
		buf.WriteString(sentence[cursor:sp.Start])
		start := WordCount(buf.String())
		buf.WriteString(sp.Value)
		entities = append(entities, model.UtteranceEntity{
			Entity:   sp.Type,
			StartPos: start,
			EndPos:   WordCount(buf.String()) - 1,
		})
		cursor = sp.End
	}
	buf.WriteString(sentence[cursor:])

	return model.Utterance{
		Text:     collapseWhitespace(buf.String()),
		Intent:   intent,
		Entities: entities,
	}
}

// UtteranceSet deduplicates utterances by structural equality of
// (text, intent, spans), keeping insertion order. Identical utterances
// built from different sentence instances merge here; identity of the
// values plays no part.
type UtteranceSet struct {
	seen  map[string]struct{}
	items []model.Utterance
}

// NewUtteranceSet creates an empty set.
func NewUtteranceSet() *UtteranceSet {
	return &UtteranceSet{seen: make(map[string]struct{})}
}

// Add inserts u unless a structurally identical utterance is present,
// reporting whether it was added.
func (s *UtteranceSet) Add(u model.Utterance) bool {
	key := utteranceKey(u)
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	s.items = append(s.items, u)
	return true
}

// Len returns the number of distinct utterances.
func (s *UtteranceSet) Len() int { return len(s.items) }

// Utterances returns the distinct utterances in insertion order.
func (s *UtteranceSet) Utterances() []model.Utterance {
	out := make([]model.Utterance, len(s.items))
	copy(out, s.items)
	return out
}

func utteranceKey(u model.Utterance) string {
	var b strings.Builder
	b.WriteString(u.Text)
	b.WriteByte(0)
	b.WriteString(u.Intent)
	for _, e := range u.Entities {
		b.WriteByte(0)
		fmt.Fprintf(&b, "%s:%d:%d", e.Entity, e.StartPos, e.EndPos)
	}
	return b.String()
}
