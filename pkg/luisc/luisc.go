// Package luisc compiles a human-authored NLU training corpus into a
// LUIS-style model document ready for import into the training service.
package luisc

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/conversekit/luisc/pkg/luisc/compile"
	"github.com/conversekit/luisc/pkg/luisc/corpus"
	"github.com/conversekit/luisc/pkg/luisc/internalerr"
	"github.com/conversekit/luisc/pkg/luisc/model"
	"github.com/conversekit/luisc/pkg/luisc/store"
)

// DefaultSchemaVersion is the schema version emitted when none is set.
const DefaultSchemaVersion = "1.3.0"

// The training service rejects longer intent names.
const maxIntentNameLen = 50

// Options configures a Compiler instance.
type Options struct {
	AppName       string
	Description   string
	Culture       string
	SchemaVersion string

	// Archive, when set, records every successful build.
	Archive store.Store
}

// Compiler turns merged corpus documents into model documents. One
// Compiler can serve many Compile calls; each call is an independent,
// pure transformation.
type Compiler struct {
	opts    Options
	culture compile.Culture
	entropy *ulid.MonotonicEntropy
}

// New creates a Compiler, validating the culture up front.
func New(opts Options) (*Compiler, error) {
	culture, err := compile.ResolveCulture(opts.Culture)
	if err != nil {
		return nil, err
	}
	if opts.SchemaVersion == "" {
		opts.SchemaVersion = DefaultSchemaVersion
	}
	return &Compiler{
		opts:    opts,
		culture: culture,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Compile transforms a merged corpus document into a model document.
// It either returns the complete model or an error with no partial output;
// no failure is downgraded to a warning.
func (c *Compiler) Compile(ctx context.Context, doc *corpus.Document) (*model.Model, error) {
	// Intent names are validated before any utterance is built.
	for _, in := range doc.Intents {
		if len(in.Name) > maxIntentNameLen {
			return nil, fmt.Errorf("%w: %q (%d chars, max %d)",
				internalerr.ErrIntentNameTooLong, in.Name, len(in.Name), maxIntentNameLen)
		}
	}

	registry := compile.NewRegistry()
	utterances := compile.NewUtteranceSet()

	for _, in := range doc.Intents {
		for _, tmpl := range in.Templates {
			sentences, err := compile.Expand(tmpl, doc)
			if err != nil {
				return nil, fmt.Errorf("intent %q: %w", in.Name, err)
			}
			for _, sentence := range sentences {
				for _, span := range compile.ExtractTags(sentence) {
					registry.Add(span.Type)
				}
				utterances.Add(compile.BuildUtterance(sentence, in.Name))
			}
		}
	}

	m := model.New(c.opts.SchemaVersion, c.opts.AppName, c.opts.Description, c.culture.Code)
	for _, in := range doc.Intents {
		m.Intents = append(m.Intents, model.Intent{Name: in.Name})
	}
	for _, e := range registry.Entities() {
		m.Entities = append(m.Entities, model.Entity{Name: e.Name, Children: e.Children})
	}
	m.BingEntities = append(m.BingEntities, doc.Builtins...)
	for _, pl := range doc.Phraselists {
		m.ModelFeatures = append(m.ModelFeatures, model.Feature{
			Name:      pl.Name,
			Mode:      boolOrTrue(pl.Mode),
			Activated: boolOrTrue(pl.Activated),
			Words:     c.featureWords(pl.Words),
		})
	}
	m.Utterances = utterances.Utterances()

	if c.opts.Archive != nil {
		if err := c.archive(ctx, m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// featureWords normalizes and tokenizes a phraselist's words and joins the
// tokens with commas, the shape the service expects for feature word lists.
func (c *Compiler) featureWords(words []string) string {
	var tokens []string
	for _, w := range words {
		tokens = append(tokens, compile.Tokenize(c.culture.Normalize(w))...)
	}
	return strings.Join(tokens, ",")
}

func (c *Compiler) archive(ctx context.Context, m *model.Model) error {
	data, err := m.JSON()
	if err != nil {
		return fmt.Errorf("archive build: %w", err)
	}
	b := store.Build{
		ID:             ulid.MustNew(ulid.Now(), c.entropy).String(),
		AppName:        m.Name,
		Culture:        m.Culture,
		SchemaVersion:  m.SchemaVersion,
		CreatedAt:      time.Now().UTC(),
		IntentCount:    len(m.Intents),
		UtteranceCount: len(m.Utterances),
		ModelJSON:      string(data),
	}
	if err := c.opts.Archive.SaveBuild(ctx, b); err != nil {
		return fmt.Errorf("archive build: %w", err)
	}
	return nil
}

func boolOrTrue(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
