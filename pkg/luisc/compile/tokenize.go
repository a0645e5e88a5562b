package compile

import "strings"

// Tokenize splits text the way the target service's trainer does, so token
// positions computed here line up with the positions the service computes
// when it ingests the model.
//
// Every rune that is neither a word rune nor whitespace becomes its own
// token. Underscore matches as a word rune but still splits as its own
// token. The degree and ordinal signs º and ª reattach to the preceding
// token instead of splitting.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, r := range text {
		switch {
		case r == '_':
			b.WriteString(" _ ")
		case isWordRune(r) || r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
			b.WriteRune(r)
			b.WriteRune(' ')
		}
	}
	padded := b.String()
	padded = strings.ReplaceAll(padded, " º", "º")
	padded = strings.ReplaceAll(padded, " ª", "ª")
	return strings.Fields(padded)
}

// WordCount returns the number of tokens in text.
func WordCount(text string) int {
	return len(Tokenize(text))
}

// isWordRune reports whether r is a word character for tokenization:
// ASCII letters, digits, underscore, and the accented Latin-1 letters used
// by the supported locales (À–ÿ minus the multiplication and division
// signs).
func isWordRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		return true
	case r >= 0x00C0 && r <= 0x00FF && r != 0x00D7 && r != 0x00F7:
		return true
	}
	return false
}
