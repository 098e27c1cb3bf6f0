package camera_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pointsheet/internal/camera"
)

func newCamera() *camera.Camera {
	c := camera.New(75, 0.1, 300, mgl32.Vec3{40, 20, 40})
	c.SetViewport(800, 600)
	return c
}

func TestProjector(t *testing.T) {
	t.Run("target projects to the viewport center", func(t *testing.T) {
		c := newCamera()
		sx, sy, depth, ok := c.Projector().Project(0, 0, 0)
		require.True(t, ok)
		assert.InDelta(t, 400, sx, 0.01)
		assert.InDelta(t, 300, sy, 0.01)
		assert.InDelta(t, mgl32.Vec3{40, 20, 40}.Len(), depth, 0.01)
	})
	t.Run("points behind the camera are rejected", func(t *testing.T) {
		c := newCamera()
		_, _, _, ok := c.Projector().Project(80, 40, 80)
		assert.False(t, ok)
	})
	t.Run("points past the far plane are rejected", func(t *testing.T) {
		c := newCamera()
		_, _, _, ok := c.Projector().Project(-400, -200, -400)
		assert.False(t, ok)
	})
	t.Run("higher points appear higher on screen", func(t *testing.T) {
		c := newCamera()
		p := c.Projector()
		_, y0, _, _ := p.Project(0, 0, 0)
		_, y1, _, _ := p.Project(0, 5, 0)
		assert.Less(t, y1, y0)
	})
}

func TestRayFromNDC(t *testing.T) {
	t.Run("center ray points at the target", func(t *testing.T) {
		c := newCamera()
		r := c.RayFromNDC(0, 0)
		want := mgl32.Vec3{-40, -20, -40}.Normalize()
		assert.InDelta(t, 1, r.Direction.Dot(want), 1e-4)
		assert.Equal(t, c.Position, r.Origin)
	})
	t.Run("ray through a projected point passes near it", func(t *testing.T) {
		c := newCamera()
		p := c.Projector()
		sx, sy, _, ok := p.Project(3, 1, -2)
		require.True(t, ok)
		w, h := c.Viewport()
		r := c.RayFromNDC(sx/float32(w)*2-1, 1-sy/float32(h)*2)
		d2, _ := r.DistanceSqToPoint(mgl32.Vec3{3, 1, -2})
		assert.Less(t, d2, float32(1e-3))
	})
}

func TestRay(t *testing.T) {
	r := camera.Ray{Origin: mgl32.Vec3{0, 0, 10}, Direction: mgl32.Vec3{0, 0, -1}}
	t.Run("distance to a point off the ray", func(t *testing.T) {
		d2, tt := r.DistanceSqToPoint(mgl32.Vec3{1, 0, 0})
		assert.InDelta(t, 1, d2, 1e-6)
		assert.InDelta(t, 10, tt, 1e-6)
	})
	t.Run("points behind the origin clamp to the origin", func(t *testing.T) {
		d2, tt := r.DistanceSqToPoint(mgl32.Vec3{0, 0, 12})
		assert.InDelta(t, 4, d2, 1e-6)
		assert.Zero(t, tt)
	})
	t.Run("box test", func(t *testing.T) {
		assert.True(t, r.IntersectsBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}))
		assert.False(t, r.IntersectsBox(mgl32.Vec3{2, 2, -1}, mgl32.Vec3{3, 3, 1}))
	})
}
