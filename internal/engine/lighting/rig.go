// Package lighting provides the fixed light rig consumed by the renderer.
// Lighting is independent of geometry and camera state.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/formforge/pkg/math"
)

// Rig is a simple key-light setup: one directional light plus an
// ambient term.
type Rig struct {
	KeyDirection math.Vec3 // normalized, pointing towards the light
	Ambient      [3]float32
	Diffuse      [3]float32
}

// FromAngles builds a rig with the key light at the given spherical
// angles. Longitude is rotation around Y (degrees), latitude is
// elevation above the horizon (degrees).
func FromAngles(longitude, latitude float32, ambient, diffuse [3]float32) Rig {
	lon := longitude * math32.Pi / 180
	lat := latitude * math32.Pi / 180

	return Rig{
		KeyDirection: math.Vec3{
			X: math32.Cos(lat) * math32.Sin(lon),
			Y: math32.Sin(lat),
			Z: math32.Cos(lat) * math32.Cos(lon),
		},
		Ambient: ambient,
		Diffuse: diffuse,
	}
}

// Default returns the studio rig: key light high and to the left.
func Default() Rig {
	return FromAngles(-30, 60,
		[3]float32{0.3, 0.3, 0.35},
		[3]float32{0.9, 0.9, 0.9},
	)
}
