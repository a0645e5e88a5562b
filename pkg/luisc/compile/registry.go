package compile

import "strings"

// Entity is a registered entity type, possibly with child subtypes.
type Entity struct {
	Name     string
	Children []string
}

// Registry accumulates distinct entity types across all sentences of a run.
// Composite "parent::child" names split on the first "::": the parent keys
// the registry and the child joins its subtype set. Names are kept exactly
// as written, case included.
type Registry struct {
	order    []string
	children map[string][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{children: make(map[string][]string)}
}

// Add registers an entity type. Repeated registrations are no-ops, and
// insertion order is preserved for both parents and children.
func (r *Registry) Add(entityType string) {
	parent, child, composite := strings.Cut(entityType, "::")
	if _, ok := r.children[parent]; !ok {
		r.order = append(r.order, parent)
		r.children[parent] = nil
	}
	if !composite {
		return
	}
	for _, c := range r.children[parent] {
		if c == child {
			return
		}
	}
	r.children[parent] = append(r.children[parent], child)
}

// Entities returns the registered entities in insertion order.
func (r *Registry) Entities() []Entity {
	out := make([]Entity, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Entity{Name: name, Children: r.children[name]})
	}
	return out
}
