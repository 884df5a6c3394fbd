// Package geometry provides the mesh data model and the parametric
// generators for the built-in object families.
package geometry

import (
	"github.com/Faultbox/formforge/pkg/math"
)

// Face is a triangle of vertex indices, counter-clockwise when seen
// from outside the surface.
type Face [3]uint32

// Mesh is a generated geometry artifact: parallel position and normal
// slices, triangle faces, and the bounding box derived while building.
// A Mesh is built once and never mutated; regeneration produces a fresh
// Mesh that replaces the old one wholesale.
type Mesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	Faces     []Face
	Bounds    math.Box3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// Builder accumulates vertices and faces, tracking the bounding box as
// each vertex lands.
type Builder struct {
	positions []math.Vec3
	normals   []math.Vec3
	faces     []Face
	bounds    math.Box3
}

// NewBuilder returns an empty mesh builder.
func NewBuilder() *Builder {
	return &Builder{bounds: math.EmptyBox3()}
}

// AddVertex appends a vertex with its normal and returns its index.
func (b *Builder) AddVertex(pos, normal math.Vec3) uint32 {
	b.bounds.ExpandByPoint(pos)
	b.positions = append(b.positions, pos)
	b.normals = append(b.normals, normal)
	return uint32(len(b.positions) - 1)
}

// AddFace appends one triangle.
func (b *Builder) AddFace(i0, i1, i2 uint32) {
	b.faces = append(b.faces, Face{i0, i1, i2})
}

// AddQuad appends a quad as two triangles, wound i0-i1-i2, i0-i2-i3.
func (b *Builder) AddQuad(i0, i1, i2, i3 uint32) {
	b.faces = append(b.faces, Face{i0, i1, i2}, Face{i0, i2, i3})
}

// Build finalizes the mesh. An empty builder yields a zero-size box at
// the origin so downstream framing never sees infinities.
func (b *Builder) Build() *Mesh {
	bounds := b.bounds
	if bounds.IsEmpty() {
		bounds = math.Box3{}
	}
	return &Mesh{
		Positions: b.positions,
		Normals:   b.normals,
		Faces:     b.faces,
		Bounds:    bounds,
	}
}
