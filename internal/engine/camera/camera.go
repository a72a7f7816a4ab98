// Package camera provides the orbit camera used to inspect a built model.
package camera

import (
	gomath "math"

	"github.com/Faultbox/repairguide/internal/engine/geometry"
	"github.com/Faultbox/repairguide/pkg/math"
)

// Viewer defaults: the camera starts at (0, 2, 5) looking at the origin.
const (
	DefaultFOV  = 75.0
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

var initialPitch = float32(gomath.Atan2(2, 5))

// Orbit orbits around a target point using spherical coordinates.
type Orbit struct {
	Target math.Vec3

	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	FOV       float32 // degrees
	Near, Far float32

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbit returns a camera at the viewer's initial position.
func NewOrbit() *Orbit {
	c := &Orbit{
		FOV:             DefaultFOV,
		Near:            DefaultNear,
		Far:             DefaultFar,
		MinDistance:     0.5,
		MaxDistance:     100,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
	c.Reset()
	return c
}

// Reset returns to (0, 2, 5) looking at the origin.
func (c *Orbit) Reset() {
	c.Target = math.Vec3{}
	c.Distance = float32(gomath.Hypot(2, 5))
	c.Pitch = initialPitch
	c.Yaw = 0
}

// Position returns the camera position in world space.
func (c *Orbit) Position() math.Vec3 {
	pitch, yaw := float64(c.Pitch), float64(c.Yaw)
	return c.Target.Add(math.Vec3{
		X: c.Distance * float32(gomath.Cos(pitch)*gomath.Sin(yaw)),
		Y: c.Distance * float32(gomath.Sin(pitch)),
		Z: c.Distance * float32(gomath.Cos(pitch)*gomath.Cos(yaw)),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *Orbit) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection for the given aspect.
func (c *Orbit) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	fov := float32(float64(c.FOV) * gomath.Pi / 180)
	return math.Perspective(fov, aspect, c.Near, c.Far)
}

// Drag rotates the camera by a pointer delta in pixels.
func (c *Orbit) Drag(dx, dy float32) {
	c.Yaw -= dx * c.DragSensitivity
	c.Pitch = clamp(c.Pitch+dy*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// Zoom moves towards the target for positive delta and away for negative.
func (c *Orbit) Zoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// Fit centres the target on b, restores the initial viewing angle and backs
// off until the whole box fits the vertical field of view. Empty bounds reset
// the camera.
func (c *Orbit) Fit(b geometry.Bounds) {
	size := b.Size()
	radius := float32(gomath.Sqrt(float64(size[0]*size[0]+size[1]*size[1]+size[2]*size[2]))) / 2
	if radius == 0 {
		c.Reset()
		return
	}

	c.Target = math.Vec3{
		X: (b.Min[0] + b.Max[0]) / 2,
		Y: (b.Min[1] + b.Max[1]) / 2,
		Z: (b.Min[2] + b.Max[2]) / 2,
	}
	half := float64(c.FOV) * gomath.Pi / 360
	dist := radius / float32(gomath.Sin(half))
	if dist > c.MaxDistance {
		c.MaxDistance = dist
	}
	c.Distance = clamp(dist, c.MinDistance, c.MaxDistance)
	c.Pitch = initialPitch
	c.Yaw = 0
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
