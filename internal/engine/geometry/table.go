package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/formforge/internal/engine/params"
	"github.com/Faultbox/formforge/pkg/math"
)

// TableGenerator builds a compound mesh: a cylindrical tabletop slab
// plus N rectangular legs laid out on a regular polygon inset from the
// tabletop edge. The table stands on y=0 with its top at y=height.
type TableGenerator struct{}

// Family returns the table family tag.
func (TableGenerator) Family() params.Family { return params.FamilyTable }

// Generate builds the table mesh. A leg count of zero or less is
// rejected: a legless table is not a meaningful design state, and
// clamping cannot repair it.
func (TableGenerator) Generate(set params.Set) (*Mesh, error) {
	var (
		height    = set.Get(params.Height)
		topRadius = set.Get(params.TopRadius)
		thickness = set.Get(params.TopThickness)
		legCount  = set.Int(params.LegCount)
		legWidth  = set.Get(params.LegWidth)
		legInset  = set.Get(params.LegInset)
		radSegs   = set.Int(params.RadialSegs)
	)

	if legCount <= 0 {
		return nil, fmt.Errorf("%w: legCount %d, need at least 1", params.ErrInvalidParameter, legCount)
	}

	b := NewBuilder()

	slabBottom := math32.Max(height-thickness, 0)
	addSlab(b, topRadius, slabBottom, height, radSegs)

	// Legs on a regular polygon, step 360/N, inset from the edge.
	legHeight := slabBottom
	orbit := math32.Max(topRadius-legInset-legWidth/2, 0)
	for k := 0; k < legCount; k++ {
		angle := 2 * math32.Pi * float32(k) / float32(legCount)
		center := math.Vec3{
			X: orbit * math32.Cos(angle),
			Y: legHeight / 2,
			Z: orbit * math32.Sin(angle),
		}
		addBox(b, center, math.Vec3{X: legWidth, Y: legHeight, Z: legWidth})
	}

	return b.Build(), nil
}

// addSlab emits a closed cylinder between y0 and y1. Cap rings and side
// rings are kept separate so cap normals stay axial and side normals
// stay radial.
func addSlab(b *Builder, radius, y0, y1 float32, segments int) {
	topCenter := b.AddVertex(math.Vec3{Y: y1}, math.Vec3{Y: 1})
	bottomCenter := b.AddVertex(math.Vec3{Y: y0}, math.Vec3{Y: -1})

	top := make([]uint32, segments)
	bottom := make([]uint32, segments)
	sideTop := make([]uint32, segments)
	sideBottom := make([]uint32, segments)

	for j := 0; j < segments; j++ {
		angle := 2 * math32.Pi * float32(j) / float32(segments)
		x := radius * math32.Cos(angle)
		z := radius * math32.Sin(angle)
		radial := math.Vec3{X: math32.Cos(angle), Z: math32.Sin(angle)}

		top[j] = b.AddVertex(math.Vec3{X: x, Y: y1, Z: z}, math.Vec3{Y: 1})
		bottom[j] = b.AddVertex(math.Vec3{X: x, Y: y0, Z: z}, math.Vec3{Y: -1})
		sideTop[j] = b.AddVertex(math.Vec3{X: x, Y: y1, Z: z}, radial)
		sideBottom[j] = b.AddVertex(math.Vec3{X: x, Y: y0, Z: z}, radial)
	}

	for j := 0; j < segments; j++ {
		next := (j + 1) % segments
		b.AddFace(topCenter, top[next], top[j])
		b.AddFace(bottomCenter, bottom[j], bottom[next])
		b.AddQuad(sideBottom[j], sideTop[j], sideTop[next], sideBottom[next])
	}
}

// addBox emits an axis-aligned box with per-face normals.
func addBox(b *Builder, center, size math.Vec3) {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2

	faces := []struct {
		normal  math.Vec3
		corners [4]math.Vec3
	}{
		{math.Vec3{X: 1}, [4]math.Vec3{{X: hx, Y: -hy, Z: -hz}, {X: hx, Y: hy, Z: -hz}, {X: hx, Y: hy, Z: hz}, {X: hx, Y: -hy, Z: hz}}},
		{math.Vec3{X: -1}, [4]math.Vec3{{X: -hx, Y: -hy, Z: hz}, {X: -hx, Y: hy, Z: hz}, {X: -hx, Y: hy, Z: -hz}, {X: -hx, Y: -hy, Z: -hz}}},
		{math.Vec3{Y: 1}, [4]math.Vec3{{X: -hx, Y: hy, Z: hz}, {X: hx, Y: hy, Z: hz}, {X: hx, Y: hy, Z: -hz}, {X: -hx, Y: hy, Z: -hz}}},
		{math.Vec3{Y: -1}, [4]math.Vec3{{X: -hx, Y: -hy, Z: -hz}, {X: hx, Y: -hy, Z: -hz}, {X: hx, Y: -hy, Z: hz}, {X: -hx, Y: -hy, Z: hz}}},
		{math.Vec3{Z: 1}, [4]math.Vec3{{X: -hx, Y: -hy, Z: hz}, {X: hx, Y: -hy, Z: hz}, {X: hx, Y: hy, Z: hz}, {X: -hx, Y: hy, Z: hz}}},
		{math.Vec3{Z: -1}, [4]math.Vec3{{X: hx, Y: -hy, Z: -hz}, {X: -hx, Y: -hy, Z: -hz}, {X: -hx, Y: hy, Z: -hz}, {X: hx, Y: hy, Z: -hz}}},
	}

	for _, f := range faces {
		var idx [4]uint32
		for i, c := range f.corners {
			idx[i] = b.AddVertex(center.Add(c), f.normal)
		}
		b.AddQuad(idx[0], idx[1], idx[2], idx[3])
	}
}
