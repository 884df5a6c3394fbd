package geometry

import (
	"fmt"

	"github.com/Faultbox/formforge/internal/engine/params"
)

// Generator produces a Mesh from a family-specific parameter snapshot.
// Implementations are pure and deterministic: the same snapshot always
// yields identical vertex ordering and face topology.
type Generator interface {
	Family() params.Family
	Generate(set params.Set) (*Mesh, error)
}

// Registry maps object families to their generators in registration order.
type Registry struct {
	byFamily map[params.Family]Generator
	order    []params.Family
}

// NewRegistry returns an empty generator registry.
func NewRegistry() *Registry {
	return &Registry{byFamily: make(map[params.Family]Generator)}
}

// Register adds a generator, replacing any previous one for the family.
func (r *Registry) Register(g Generator) {
	if _, exists := r.byFamily[g.Family()]; !exists {
		r.order = append(r.order, g.Family())
	}
	r.byFamily[g.Family()] = g
}

// Lookup returns the generator for a family.
func (r *Registry) Lookup(family params.Family) (Generator, error) {
	g, ok := r.byFamily[family]
	if !ok {
		return nil, fmt.Errorf("no generator registered for family %q", family)
	}
	return g, nil
}

// Families returns the registered families in registration order.
func (r *Registry) Families() []params.Family {
	out := make([]params.Family, len(r.order))
	copy(out, r.order)
	return out
}

// DefaultRegistry returns a registry with the built-in families.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(VaseGenerator{})
	r.Register(TableGenerator{})
	return r
}
