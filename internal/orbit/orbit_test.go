package orbit_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"pointsheet/internal/camera"
	"pointsheet/internal/orbit"
)

func newControls() (*camera.Camera, *orbit.Controls) {
	cam := camera.New(75, 0.1, 300, mgl32.Vec3{40, 20, 40})
	cam.SetViewport(800, 600)
	return cam, orbit.New(cam, 60)
}

func TestControls(t *testing.T) {
	t.Run("update without input keeps the camera in place", func(t *testing.T) {
		cam, c := newControls()
		before := cam.Position
		for i := 0; i < 10; i++ {
			c.Update()
		}
		assert.InDelta(t, 0, cam.Position.Sub(before).Len(), 1e-3)
	})
	t.Run("auto rotate moves the azimuth and keeps the distance", func(t *testing.T) {
		cam, c := newControls()
		c.SetAutoRotate(true)
		theta0, _, r0 := c.Spherical()
		for i := 0; i < 120; i++ {
			c.Update()
		}
		theta1, _, r1 := c.Spherical()
		assert.Less(t, theta1, theta0)
		assert.InDelta(t, r0, r1, 1e-3)
		assert.InDelta(t, r0, float64(cam.Position.Len()), 1e-2)
	})
	t.Run("rotation eases toward the goal", func(t *testing.T) {
		_, c := newControls()
		theta0, _, _ := c.Spherical()
		c.Rotate(100, 0)
		c.Update()
		theta1, _, _ := c.Spherical()
		for i := 0; i < 600; i++ {
			c.Update()
		}
		theta2, _, _ := c.Spherical()
		goal := theta0 - 2*math.Pi*100/600
		assert.Greater(t, math.Abs(theta1-goal), math.Abs(theta2-goal))
		assert.InDelta(t, goal, theta2, 1e-3)
	})
	t.Run("polar angle stays off the poles", func(t *testing.T) {
		_, c := newControls()
		c.Rotate(0, 1e6)
		for i := 0; i < 600; i++ {
			c.Update()
		}
		_, phi, _ := c.Spherical()
		assert.Greater(t, phi, 0.0)
		assert.Less(t, phi, math.Pi)
	})
	t.Run("zoom is clamped", func(t *testing.T) {
		_, c := newControls()
		c.Zoom(1000)
		for i := 0; i < 600; i++ {
			c.Update()
		}
		_, _, r := c.Spherical()
		assert.InDelta(t, c.MinDistance, r, 1e-3)
	})
}
