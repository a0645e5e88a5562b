package compile

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conversekit/luisc/pkg/luisc/internalerr"
)

// Culture governs case folding for one compilation run.
type Culture struct {
	Code string
	tag  language.Tag
}

// Cultures the target service accepts, with the tag driving locale-aware
// lowercasing for the non-English ones.
var supportedCultures = map[string]language.Tag{
	"en-us": language.AmericanEnglish,
	"es-es": language.EuropeanSpanish,
	"fr-fr": language.French,
	"it-it": language.Italian,
	"de-de": language.German,
	"pt-br": language.BrazilianPortuguese,
	"zh-cn": language.SimplifiedChinese,
	"ja-jp": language.Japanese,
	"ko-kr": language.Korean,
	"nl-nl": language.Dutch,
}

// ResolveCulture validates a culture code against the supported set.
func ResolveCulture(code string) (Culture, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	tag, ok := supportedCultures[c]
	if !ok {
		return Culture{}, fmt.Errorf("%w: %q", internalerr.ErrUnsupportedCulture, code)
	}
	return Culture{Code: c, tag: tag}, nil
}

// Normalize collapses whitespace runs, trims, and case folds.
//
// For en-us only ASCII letters are lowercased, leaving accented letters
// untouched; every other culture lowercases the whole string with its
// locale's rules. The asymmetry reproduces the target service's own
// normalization and must not be "fixed".
func (c Culture) Normalize(text string) string {
	text = collapseWhitespace(text)
	if c.Code == "en-us" {
		var b strings.Builder
		b.Grow(len(text))
		for _, r := range text {
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			b.WriteRune(r)
		}
		return b.String()
	}
	return cases.Lower(c.tag).String(text)
}

// collapseWhitespace reduces whitespace runs to single spaces and trims.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
