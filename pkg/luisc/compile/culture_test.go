package compile

import (
	"errors"
	"testing"

	"github.com/conversekit/luisc/pkg/luisc/internalerr"
)

func TestResolveCulture(t *testing.T) {
	for _, code := range []string{"en-us", "es-es", "fr-fr", "pt-br"} {
		if _, err := ResolveCulture(code); err != nil {
			t.Errorf("Culture %q should resolve: %v", code, err)
		}
	}

	// Case and surrounding whitespace are forgiven, unknown codes are not.
	if c, err := ResolveCulture(" EN-US "); err != nil || c.Code != "en-us" {
		t.Errorf("EN-US should resolve to en-us, got %q (%v)", c.Code, err)
	}

	_, err := ResolveCulture("xx-yy")
	if err == nil {
		t.Fatal("Expected error for unknown culture")
	}
	if !errors.Is(err, internalerr.ErrUnsupportedCulture) {
		t.Errorf("Expected ErrUnsupportedCulture, got %v", err)
	}
}

func TestNormalizeEnUSLowercasesASCIIOnly(t *testing.T) {
	c, err := ResolveCulture("en-us")
	if err != nil {
		t.Fatal(err)
	}

	got := c.Normalize("Café ABC")
	if got != "café abc" {
		t.Errorf("en-us should lowercase ASCII only, got %q", got)
	}

	// The accented uppercase stays as authored under en-us.
	got = c.Normalize("CAFÉ")
	if got != "cafÉ" {
		t.Errorf("en-us must leave non-ASCII letters untouched, got %q", got)
	}
}

func TestNormalizeOtherCultureFullLowercase(t *testing.T) {
	c, err := ResolveCulture("es-es")
	if err != nil {
		t.Fatal(err)
	}

	got := c.Normalize("Café ABC")
	if got != "café abc" {
		t.Errorf("es-es lowercase wrong: %q", got)
	}

	got = c.Normalize("CAFÉ")
	if got != "café" {
		t.Errorf("es-es must lowercase accented letters too, got %q", got)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	c, err := ResolveCulture("en-us")
	if err != nil {
		t.Fatal(err)
	}

	got := c.Normalize("  Hello   there\t friend  ")
	if got != "hello there friend" {
		t.Errorf("Whitespace should collapse and trim, got %q", got)
	}
}
