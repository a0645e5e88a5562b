// Package model holds the output document types. Field names follow the
// target service's import schema exactly.
package model

import "encoding/json"

// Model is the assembled output document.
type Model struct {
	SchemaVersion string         `json:"luis_schema_version"`
	Name          string         `json:"name"`
	Desc          string         `json:"desc"`
	Culture       string         `json:"culture"`
	Intents       []Intent       `json:"intents"`
	Entities      []Entity       `json:"entities"`
	Composites    []Composite    `json:"composites"`
	BingEntities  []string       `json:"bing_entities"`
	Actions       []Action       `json:"actions"`
	ModelFeatures []Feature      `json:"model_features"`
	RegexFeatures []RegexFeature `json:"regex_features"`
	Utterances    []Utterance    `json:"utterances"`
}

// Intent names a recognizable utterance category.
type Intent struct {
	Name string `json:"name"`
}

// Entity is an entity type, with child subtypes when composite names were
// registered for it.
type Entity struct {
	Name     string   `json:"name"`
	Children []string `json:"children,omitempty"`
}

// Composite is part of the schema but never populated here.
type Composite struct {
	Name     string   `json:"name"`
	Children []string `json:"children"`
}

// Action is part of the schema but never populated here.
type Action struct {
	Name string `json:"name"`
}

// Feature is a phraselist model feature. Words is the normalized,
// tokenized, comma-joined word list.
type Feature struct {
	Name      string `json:"name"`
	Mode      bool   `json:"mode"`
	Activated bool   `json:"activated"`
	Words     string `json:"words"`
}

// RegexFeature is part of the schema but never populated here.
type RegexFeature struct {
	Name      string `json:"name"`
	Pattern   string `json:"pattern"`
	Activated bool   `json:"activated"`
}

// Utterance is one training example: plain text plus entity spans.
type Utterance struct {
	Text     string            `json:"text"`
	Intent   string            `json:"intent"`
	Entities []UtteranceEntity `json:"entities"`
}

// UtteranceEntity marks a token span of an utterance as an entity
// instance. StartPos and EndPos are token indices, inclusive.
type UtteranceEntity struct {
	Entity   string `json:"entity"`
	StartPos int    `json:"startPos"`
	EndPos   int    `json:"endPos"`
}

// New builds an empty model. Collections start non-nil so unpopulated
// schema fields render as [] rather than null.
func New(schemaVersion, name, desc, culture string) *Model {
	return &Model{
		SchemaVersion: schemaVersion,
		Name:          name,
		Desc:          desc,
		Culture:       culture,
		Intents:       []Intent{},
		Entities:      []Entity{},
		Composites:    []Composite{},
		BingEntities:  []string{},
		Actions:       []Action{},
		ModelFeatures: []Feature{},
		RegexFeatures: []RegexFeature{},
		Utterances:    []Utterance{},
	}
}

// JSON renders the model as indented JSON.
func (m *Model) JSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
