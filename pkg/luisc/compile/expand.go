package compile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/conversekit/luisc/pkg/luisc/internalerr"
)

// ListProvider supplies the replacement values for ${name} placeholders.
type ListProvider interface {
	List(name string) ([]string, bool)
}

var placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Expand substitutes every ${name} placeholder in a template against its
// list, producing the full cross product over all distinct placeholders.
//
// The working set drains as a FIFO queue to a fixed point: the first
// remaining placeholder in a sentence selects the list, and one branch per
// list value replaces every occurrence of that placeholder. Placeholders
// resolve in order of appearance and list values in declared order, so the
// output ordering is stable across runs. A sentence with no placeholders
// expands to itself.
func Expand(template string, lists ListProvider) ([]string, error) {
	var out []string
	queue := []string{template}
	for len(queue) > 0 {
		sentence := queue[0]
		queue = queue[1:]

		m := placeholderPattern.FindStringSubmatchIndex(sentence)
		if m == nil {
			out = append(out, sentence)
			continue
		}

		key := sentence[m[2]:m[3]]
		values, ok := lists.List(key)
		if !ok {
			return nil, fmt.Errorf("%w: ${%s}", internalerr.ErrUnresolvedListReference, key)
		}

		placeholder := sentence[m[0]:m[1]]
		for _, v := range values {
			queue = append(queue, strings.ReplaceAll(sentence, placeholder, v))
		}
	}
	return out, nil
}
