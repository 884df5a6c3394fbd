// Package params defines the parameter schemas and immutable parameter
// snapshots that drive the geometry generators.
package params

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrUnknownParameter is returned when a parameter name does not exist in
// the active family's schema.
var ErrUnknownParameter = errors.New("unknown parameter")

// ErrInvalidParameter is returned when a value stays semantically
// meaningless even after clamping, e.g. a table with zero legs.
var ErrInvalidParameter = errors.New("invalid parameter")

// Family identifies an object family with its own schema and generator.
type Family string

const (
	FamilyVase  Family = "vase"
	FamilyTable Family = "table"
)

// Spec describes one tunable parameter: its valid range, default value
// and the step a UI control should apply per adjustment.
type Spec struct {
	Name    string
	Min     float32
	Max     float32
	Default float32
	Step    float32
	Integer bool
}

// Clamp snaps value into the spec's range, rounding integer parameters.
func (s Spec) Clamp(value float32) float32 {
	v := math32.Min(math32.Max(value, s.Min), s.Max)
	if s.Integer {
		v = math32.Round(v)
	}
	return v
}

// Schema is the ordered parameter table for one object family.
type Schema struct {
	family Family
	specs  []Spec
	index  map[string]int
}

// NewSchema builds a schema from an ordered spec list.
func NewSchema(family Family, specs []Spec) *Schema {
	index := make(map[string]int, len(specs))
	for i, s := range specs {
		index[s.Name] = i
	}
	return &Schema{family: family, specs: specs, index: index}
}

// Family returns the object family this schema belongs to.
func (s *Schema) Family() Family { return s.family }

// Specs returns the ordered parameter specs.
func (s *Schema) Specs() []Spec { return s.specs }

// Defaults returns a snapshot holding every parameter's default value.
func (s *Schema) Defaults() Set {
	values := make([]float32, len(s.specs))
	for i, spec := range s.specs {
		values[i] = spec.Default
	}
	return Set{schema: s, values: values}
}

// Set is an immutable snapshot of parameter values for one family.
// Mutation goes through With, which returns a fresh snapshot, so a Set
// handed to a generator can never change underneath it.
type Set struct {
	schema *Schema
	values []float32
}

// Family returns the snapshot's object family.
func (s Set) Family() Family { return s.schema.family }

// Schema returns the schema this snapshot was built from.
func (s Set) Schema() *Schema { return s.schema }

// With returns a new snapshot with the named parameter set to value,
// clamped into its declared range. Unknown names are rejected, never
// silently ignored.
func (s Set) With(name string, value float32) (Set, error) {
	i, ok := s.schema.index[name]
	if !ok {
		return Set{}, fmt.Errorf("%w: %q for family %s", ErrUnknownParameter, name, s.schema.family)
	}

	values := make([]float32, len(s.values))
	copy(values, s.values)
	values[i] = s.schema.specs[i].Clamp(value)
	return Set{schema: s.schema, values: values}, nil
}

// Value returns the named parameter's value and whether it exists.
func (s Set) Value(name string) (float32, bool) {
	i, ok := s.schema.index[name]
	if !ok {
		return 0, false
	}
	return s.values[i], true
}

// Get returns the named parameter's value, or 0 for unknown names.
// Generators only read names from their own schema.
func (s Set) Get(name string) float32 {
	v, _ := s.Value(name)
	return v
}

// Int returns the named parameter rounded to an int.
func (s Set) Int(name string) int {
	return int(math32.Round(s.Get(name)))
}

// All returns a copy of the current values keyed by name, for display.
func (s Set) All() map[string]float32 {
	out := make(map[string]float32, len(s.values))
	for i, spec := range s.schema.specs {
		out[spec.Name] = s.values[i]
	}
	return out
}
