package compile

import "regexp"

// tagPattern matches inline [value:type] tags. Non-greedy groups keep the
// match inside one tag when several appear in a sentence.
var tagPattern = regexp.MustCompile(`\[(.+?):(.+?)\]`)

// Span is one inline tag occurrence in a raw sentence. Start and End are
// byte offsets of the whole tag in the source, End exclusive.
type Span struct {
	Value string
	Type  string
	Start int
	End   int
}

// ExtractTags scans a concrete sentence for inline [value:type] tags and
// returns them left to right. The sentence is not modified; stripping the
// tag syntax is the utterance builder's job.
func ExtractTags(sentence string) []Span {
	matches := tagPattern.FindAllStringSubmatchIndex(sentence, -1)
	spans := make([]Span, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, Span{
			Value: sentence[m[2]:m[3]],
			Type:  sentence[m[4]:m[5]],
			Start: m[0],
			End:   m[1],
		})
	}
	return spans
}
