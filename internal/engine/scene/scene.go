// Package scene coordinates the regenerate-and-reframe cycle: a
// parameter edit produces a new mesh, the mesh is swapped in whole,
// and the camera reframes the new bounds before the next draw.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/formforge/internal/engine/camera"
	"github.com/Faultbox/formforge/internal/engine/geometry"
	"github.com/Faultbox/formforge/internal/engine/params"
)

// Stats is a read-only summary of the current mesh for the metrics
// display. It feeds the UI only, never back into geometry.
type Stats struct {
	Family      params.Family
	VertexCount int
	FaceCount   int
	Width       float32
	Height      float32
	Depth       float32
}

// Scene owns the current parameter snapshot, the current mesh slot and
// the camera. All operations are synchronous; the mesh reference is
// only ever replaced after a generation fully succeeds, so no caller
// observes partial state.
type Scene struct {
	registry *geometry.Registry
	camera   *camera.Orbit
	log      *zap.Logger

	family params.Family
	set    params.Set
	mesh   *geometry.Mesh
}

// New creates a scene showing the given family with its default
// parameters, framed from the canonical angle.
func New(registry *geometry.Registry, cam *camera.Orbit, family params.Family, log *zap.Logger) (*Scene, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scene{registry: registry, camera: cam, log: log}
	if err := s.SelectFamily(family); err != nil {
		return nil, err
	}
	return s, nil
}

// SelectFamily switches to a family, regenerates with its defaults and
// reframes from the canonical angle. On failure the previous family,
// mesh and pose are kept.
func (s *Scene) SelectFamily(family params.Family) error {
	schema := params.SchemaFor(family)
	if schema == nil {
		return fmt.Errorf("%w: no schema for family %q", params.ErrInvalidParameter, family)
	}
	gen, err := s.registry.Lookup(family)
	if err != nil {
		return err
	}

	set := schema.Defaults()
	mesh, err := gen.Generate(set)
	if err != nil {
		return fmt.Errorf("generating %s defaults: %w", family, err)
	}

	s.family = family
	s.set = set
	s.mesh = mesh
	s.camera.FrameBoundsCanonical(mesh.Bounds)

	s.log.Debug("family selected",
		zap.String("family", string(family)),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("faces", mesh.FaceCount()),
	)
	return nil
}

// SetParam applies one parameter edit: snapshot, regenerate, swap the
// mesh, reframe. A generator error aborts the cycle with the previous
// snapshot, mesh and pose untouched; the error goes back to the UI.
func (s *Scene) SetParam(name string, value float32) error {
	set, err := s.set.With(name, value)
	if err != nil {
		return err
	}

	gen, err := s.registry.Lookup(s.family)
	if err != nil {
		return err
	}

	mesh, err := gen.Generate(set)
	if err != nil {
		return fmt.Errorf("regenerating %s: %w", s.family, err)
	}

	s.set = set
	s.mesh = mesh
	s.camera.FrameBounds(mesh.Bounds)

	s.log.Debug("parameter applied",
		zap.String("family", string(s.family)),
		zap.String("param", name),
		zap.Float32("value", set.Get(name)),
		zap.Int("vertices", mesh.VertexCount()),
	)
	return nil
}

// Family returns the active object family.
func (s *Scene) Family() params.Family { return s.family }

// Params returns the current parameter snapshot.
func (s *Scene) Params() params.Set { return s.set }

// Mesh returns the current mesh. Read-only for the renderer; replaced
// wholesale on regeneration.
func (s *Scene) Mesh() *geometry.Mesh { return s.mesh }

// Camera returns the camera controller.
func (s *Scene) Camera() *camera.Orbit { return s.camera }

// Stats returns the display metrics for the current mesh.
func (s *Scene) Stats() Stats {
	size := s.mesh.Bounds.Size()
	return Stats{
		Family:      s.family,
		VertexCount: s.mesh.VertexCount(),
		FaceCount:   s.mesh.FaceCount(),
		Width:       size.X,
		Height:      size.Y,
		Depth:       size.Z,
	}
}
