package geometry

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/formforge/internal/engine/params"
	"github.com/Faultbox/formforge/pkg/math"
)

// VaseGenerator builds a surface of revolution around the Y axis.
//
// The base profile interpolates from baseRadius at the bottom to
// neckRadius at the top with a sinusoidal bulge, then gets modulated
// per angle by a twist-followed groove term and per height by a
// vertical wave. The body is sampled as verticalSegments+1 rings of
// radialSegments vertices, capped top and bottom with triangle fans.
type VaseGenerator struct{}

// Family returns the vase family tag.
func (VaseGenerator) Family() params.Family { return params.FamilyVase }

// Generate builds the vase mesh. Degenerate inputs (zero height, zero
// radii) still produce a valid mesh; a ring whose radius reaches zero
// collapses onto the axis instead of being rejected.
func (VaseGenerator) Generate(set params.Set) (*Mesh, error) {
	var (
		height     = set.Get(params.Height)
		baseRadius = set.Get(params.BaseRadius)
		neckRadius = set.Get(params.NeckRadius)
		bulge      = set.Get(params.Bulge)
		vertSegs   = set.Int(params.VerticalSegs)
		radSegs    = set.Int(params.RadialSegs)
		twist      = set.Get(params.TwistAngle)
		grooves    = set.Get(params.GrooveCount)
		grooveAmp  = set.Get(params.GrooveDepth) * 0.06
		waveFreq   = set.Get(params.WaveFrequency)
		waveAmp    = set.Get(params.WaveDepth) * 0.15
	)

	// profile is the unmodulated radius at normalized height t.
	profile := func(t float32) float32 {
		r := baseRadius + (neckRadius-baseRadius)*t + bulge*math32.Sin(math32.Pi*t)
		return math32.Max(r, 0)
	}

	// radius applies the angular modulation at angle phi and height t.
	radius := func(phi, t float32) float32 {
		phi += twist * 0.067 * math32.Pi * t
		r := profile(t) + grooveAmp*math32.Cos(grooves*phi) + waveAmp*math32.Cos(waveFreq*t)
		return math32.Max(r, 0)
	}

	b := NewBuilder()
	halfHeight := height / 2
	rings := vertSegs + 1

	// Body rings, bottom to top.
	const dt = 1.0 / 512
	for i := 0; i < rings; i++ {
		var t float32
		if vertSegs > 0 {
			t = float32(i) / float32(vertSegs)
		}
		y := -halfHeight + t*height

		// Profile tangent for the normal, by central difference.
		dr := profile(t+dt) - profile(t-dt)
		dy := 2 * dt * height

		for j := 0; j < radSegs; j++ {
			angle := 2 * math32.Pi * float32(j) / float32(radSegs)
			r := radius(angle, t)

			n2 := math.Vec2{X: dy, Y: -dr}
			l := n2.Length()
			var normal math.Vec3
			if l == 0 {
				// Flat profile slice, fall back to the radial direction.
				normal = math.Vec3{X: math32.Cos(angle), Z: math32.Sin(angle)}
			} else {
				normal = math.Vec3{
					X: (n2.X / l) * math32.Cos(angle),
					Y: n2.Y / l,
					Z: (n2.X / l) * math32.Sin(angle),
				}
			}

			b.AddVertex(math.Vec3{
				X: r * math32.Cos(angle),
				Y: y,
				Z: r * math32.Sin(angle),
			}, normal)
		}
	}

	bottomCenter := b.AddVertex(math.Vec3{Y: -halfHeight}, math.Vec3{Y: -1})
	topCenter := b.AddVertex(math.Vec3{Y: halfHeight}, math.Vec3{Y: 1})

	ring := func(i, j int) uint32 {
		return uint32(i*radSegs + j%radSegs)
	}

	// Side quads, wound outward.
	for i := 0; i < vertSegs; i++ {
		for j := 0; j < radSegs; j++ {
			b.AddQuad(ring(i, j), ring(i+1, j), ring(i+1, j+1), ring(i, j+1))
		}
	}

	// Cap fans.
	for j := 0; j < radSegs; j++ {
		b.AddFace(bottomCenter, ring(0, j), ring(0, j+1))
		b.AddFace(topCenter, ring(rings-1, j+1), ring(rings-1, j))
	}

	return b.Build(), nil
}
