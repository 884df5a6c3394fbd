// Package camera provides the orbit camera controller: interactive
// orbit/zoom/pan plus automatic framing of a bounding volume.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/formforge/pkg/math"
)

// Default pose angles, in radians.
const (
	DefaultAzimuth   = -30 * math32.Pi / 180
	DefaultElevation = 25 * math32.Pi / 180
)

// Config holds the camera limits and sensitivities.
type Config struct {
	FOV          float32 // vertical field of view, radians
	MarginFactor float32 // framing safety margin, >= 1
	MinDistance  float32
	MaxDistance  float32
	MinElevation float32 // strictly inside -pi/2
	MaxElevation float32 // strictly inside +pi/2
	Near         float32
	Far          float32
}

// DefaultConfig returns the limits used when no config file overrides them.
func DefaultConfig() Config {
	return Config{
		FOV:          45 * math32.Pi / 180,
		MarginFactor: 1.2,
		MinDistance:  0.5,
		MaxDistance:  500,
		MinElevation: -85 * math32.Pi / 180,
		MaxElevation: 85 * math32.Pi / 180,
		Near:         0.1,
		Far:          1000,
	}
}

// Orbit is the camera controller. It keeps a spherical pose around a
// target point; every operation clamps back into the safe ranges, so
// the pose can never reach the poles or collapse onto the target.
type Orbit struct {
	Target    math.Vec3
	Azimuth   float32 // radians, wrapped into [0, 2pi)
	Elevation float32 // radians, clamped to config limits
	Distance  float32 // clamped to [MinDistance, MaxDistance]

	cfg Config
}

// New creates a camera with the canonical default pose.
func New(cfg Config) *Orbit {
	c := &Orbit{cfg: cfg}
	c.Reset()
	return c
}

// Config returns the camera's limits.
func (c *Orbit) Config() Config { return c.cfg }

// Reset restores the canonical default pose.
func (c *Orbit) Reset() {
	c.Target = math.Vec3{}
	c.Azimuth = wrapAngle(DefaultAzimuth)
	c.Elevation = c.clampElevation(DefaultElevation)
	c.Distance = c.clampDistance(15)
}

// Orbit adds azimuth/elevation deltas, wrapping azimuth and clamping
// elevation into the safe interval.
func (c *Orbit) Orbit(deltaAzimuth, deltaElevation float32) {
	c.Azimuth = wrapAngle(c.Azimuth + deltaAzimuth)
	c.Elevation = c.clampElevation(c.Elevation + deltaElevation)
}

// Zoom adjusts distance by an additive delta, clamped to the limits.
func (c *Orbit) Zoom(deltaDistance float32) {
	c.Distance = c.clampDistance(c.Distance + deltaDistance)
}

// ZoomScale multiplies the distance, clamped to the limits. Factors
// below one move in, above one move out.
func (c *Orbit) ZoomScale(factor float32) {
	if factor <= 0 {
		return
	}
	c.Distance = c.clampDistance(c.Distance * factor)
}

// Pan translates the target in the camera's local right/up plane.
// Deltas are scaled by distance so panning feels constant on screen.
func (c *Orbit) Pan(deltaX, deltaY float32) {
	look := c.Target.Sub(c.Eye()).Normalize()
	right := look.Cross(math.Vec3{Y: 1}).Normalize()
	up := right.Cross(look)

	scale := c.Distance
	c.Target = c.Target.Add(right.Scale(deltaX * scale)).Add(up.Scale(deltaY * scale))
}

// FrameBounds recomputes target and distance so the box's bounding
// sphere fits the vertical field of view with the configured margin.
// Azimuth and elevation are preserved: reframing after a parameter
// edit must not snap the viewpoint away from where the user was
// looking. A zero-volume box gets the minimum distance.
func (c *Orbit) FrameBounds(box math.Box3) {
	c.Target = box.Center()

	radius := box.Diagonal() / 2
	if radius <= 0 {
		c.Distance = c.cfg.MinDistance
		return
	}
	c.Distance = c.clampDistance(radius / math32.Sin(c.cfg.FOV/2) * c.cfg.MarginFactor)
}

// FrameBoundsCanonical frames the box from the canonical viewing angle,
// choosing the elevation from the object's proportions: a high angle
// for tall objects, a low one for wide ones.
func (c *Orbit) FrameBoundsCanonical(box math.Box3) {
	c.Azimuth = wrapAngle(DefaultAzimuth)

	elevation := float32(DefaultElevation)
	size := box.Size()
	footprint := math32.Max(size.X, size.Z)
	if footprint > 0 {
		switch aspect := size.Y / footprint; {
		case aspect > 2:
			elevation = 30 * math32.Pi / 180
		case aspect < 0.5:
			elevation = 15 * math32.Pi / 180
		}
	}
	c.Elevation = c.clampElevation(elevation)

	c.FrameBounds(box)
}

// Eye returns the camera position in world space.
func (c *Orbit) Eye() math.Vec3 {
	cosEl := math32.Cos(c.Elevation)
	return c.Target.Add(math.Vec3{
		X: c.Distance * cosEl * math32.Sin(c.Azimuth),
		Y: c.Distance * math32.Sin(c.Elevation),
		Z: c.Distance * cosEl * math32.Cos(c.Azimuth),
	})
}

// Look returns the normalized look direction from eye to target.
func (c *Orbit) Look() math.Vec3 {
	return c.Target.Sub(c.Eye()).Normalize()
}

// Up returns the camera's up vector.
func (c *Orbit) Up() math.Vec3 { return math.Vec3{Y: 1} }

// ViewMatrix returns the view matrix for the current pose.
func (c *Orbit) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye(), c.Target, c.Up())
}

// ProjectionMatrix returns the perspective projection for the given
// aspect ratio.
func (c *Orbit) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.cfg.FOV, aspect, c.cfg.Near, c.cfg.Far)
}

func (c *Orbit) clampElevation(e float32) float32 {
	return math32.Min(math32.Max(e, c.cfg.MinElevation), c.cfg.MaxElevation)
}

func (c *Orbit) clampDistance(d float32) float32 {
	return math32.Min(math32.Max(d, c.cfg.MinDistance), c.cfg.MaxDistance)
}

// wrapAngle wraps an angle into [0, 2pi).
func wrapAngle(a float32) float32 {
	const tau = 2 * math32.Pi
	a = math32.Mod(a, tau)
	if a < 0 {
		a += tau
	}
	return a
}
