// Package orbit implements damped orbit controls: the camera rotates and
// zooms around a target point, easing toward the requested position.
package orbit

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"

	"pointsheet/internal/camera"
)

const (
	defaultAutoRotateSpeed = 2.0
	defaultFrequency       = 6.0
	defaultDamping         = 1.0
	polarEpsilon           = 1e-4
	zoomBase               = 0.95
)

// Controls orbits a camera around Target.
type Controls struct {
	cam    *camera.Camera
	Target mgl32.Vec3

	autoRotate      bool
	AutoRotateSpeed float64 // 2.0 is one orbit per 30s at the nominal frame rate
	RotateSpeed     float64
	MinDistance     float64
	MaxDistance     float64

	fps    int
	spring harmonica.Spring

	// goal spherical coordinates; theta is azimuth around +Y, phi is polar from +Y
	goalTheta, goalPhi, goalRadius float64
	theta, phi, radius             float64
	velTheta, velPhi, velRadius    float64
}

// New creates controls for cam at the camera's current position. fps is the
// nominal number of Update calls per second.
func New(cam *camera.Camera, fps int) *Controls {
	if fps < 1 {
		fps = 60
	}
	c := &Controls{
		cam:             cam,
		Target:          cam.Target,
		AutoRotateSpeed: defaultAutoRotateSpeed,
		RotateSpeed:     1,
		MinDistance:     1,
		MaxDistance:     float64(cam.Far) * 0.9,
		fps:             fps,
		spring:          harmonica.NewSpring(harmonica.FPS(fps), defaultFrequency, defaultDamping),
	}
	offset := cam.Position.Sub(c.Target)
	c.radius = float64(offset.Len())
	if c.radius > 0 {
		c.theta = math.Atan2(float64(offset.X()), float64(offset.Z()))
		c.phi = math.Acos(clamp(float64(offset.Y())/c.radius, -1, 1))
	}
	c.goalTheta, c.goalPhi, c.goalRadius = c.theta, c.phi, c.radius
	return c
}

// SetAutoRotate toggles continuous rotation around the target.
func (c *Controls) SetAutoRotate(on bool) {
	c.autoRotate = on
}

// AutoRotate reports whether continuous rotation is enabled.
func (c *Controls) AutoRotate() bool {
	return c.autoRotate
}

// Rotate turns the goal orientation by a pointer drag of dx, dy pixels.
func (c *Controls) Rotate(dx, dy float64) {
	_, h := c.cam.Viewport()
	if h < 1 {
		h = 1
	}
	c.goalTheta -= 2 * math.Pi * dx / float64(h) * c.RotateSpeed
	c.goalPhi -= 2 * math.Pi * dy / float64(h) * c.RotateSpeed
	c.goalPhi = clamp(c.goalPhi, polarEpsilon, math.Pi-polarEpsilon)
}

// Zoom moves the goal distance in for positive steps and out for negative.
func (c *Controls) Zoom(steps float64) {
	c.goalRadius *= math.Pow(zoomBase, steps)
	c.goalRadius = clamp(c.goalRadius, c.MinDistance, c.MaxDistance)
}

// Update advances the damped motion by one frame and moves the camera.
func (c *Controls) Update() {
	if c.autoRotate {
		c.goalTheta -= 2 * math.Pi / float64(c.fps) / 60 * c.AutoRotateSpeed
	}
	c.goalPhi = clamp(c.goalPhi, polarEpsilon, math.Pi-polarEpsilon)
	c.goalRadius = clamp(c.goalRadius, c.MinDistance, c.MaxDistance)

	c.theta, c.velTheta = c.spring.Update(c.theta, c.velTheta, c.goalTheta)
	c.phi, c.velPhi = c.spring.Update(c.phi, c.velPhi, c.goalPhi)
	c.radius, c.velRadius = c.spring.Update(c.radius, c.velRadius, c.goalRadius)

	sinPhi := math.Sin(c.phi)
	offset := mgl32.Vec3{
		float32(c.radius * sinPhi * math.Sin(c.theta)),
		float32(c.radius * math.Cos(c.phi)),
		float32(c.radius * sinPhi * math.Cos(c.theta)),
	}
	c.cam.Target = c.Target
	c.cam.Position = c.Target.Add(offset)
}

// Spherical returns the current azimuth, polar angle, and distance.
func (c *Controls) Spherical() (theta, phi, radius float64) {
	return c.theta, c.phi, c.radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
