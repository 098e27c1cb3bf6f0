// Package camera implements the perspective camera used to draw and pick the
// point sheet.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking at Target.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	FovY   float32 // vertical field of view in degrees
	Aspect float32
	Near   float32
	Far    float32

	width, height int
}

// New returns a camera at position looking at the origin.
func New(fovY, near, far float32, position mgl32.Vec3) *Camera {
	return &Camera{
		Position: position,
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     fovY,
		Aspect:   1,
		Near:     near,
		Far:      far,
		width:    1,
		height:   1,
	}
}

// SetViewport updates the viewport size in pixels and the aspect ratio.
func (c *Camera) SetViewport(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.width, c.height = width, height
	c.Aspect = float32(width) / float32(height)
}

// Viewport returns the viewport size in pixels.
func (c *Camera) Viewport() (int, int) {
	return c.width, c.height
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// RayFromNDC returns the ray from the camera through the normalized device
// coordinates (x, y), both in [-1, 1] with y pointing up.
func (c *Camera) RayFromNDC(x, y float32) Ray {
	inv := c.ViewProjection().Inv()
	p := inv.Mul4x1(mgl32.Vec4{x, y, 0.5, 1})
	if p.W() != 0 {
		p = p.Mul(1 / p.W())
	}
	return Ray{
		Origin:    c.Position,
		Direction: p.Vec3().Sub(c.Position).Normalize(),
	}
}

// Projector returns a snapshot of the camera for projecting many points.
func (c *Camera) Projector() Projector {
	return Projector{
		viewProj: c.ViewProjection(),
		width:    float32(c.width),
		height:   float32(c.height),
		near:     c.Near,
		focal:    float32(float64(c.height) / 2 / math.Tan(float64(mgl32.DegToRad(c.FovY))/2)),
	}
}

// Projector maps world positions to viewport pixels.
type Projector struct {
	viewProj      mgl32.Mat4
	width, height float32
	near          float32
	focal         float32
}

// Project returns the pixel position of the world point and its distance
// along the view axis. ok is false when the point is outside the view
// frustum depth range.
func (p Projector) Project(x, y, z float32) (sx, sy, depth float32, ok bool) {
	m := &p.viewProj
	cx := m[0]*x + m[4]*y + m[8]*z + m[12]
	cy := m[1]*x + m[5]*y + m[9]*z + m[13]
	cz := m[2]*x + m[6]*y + m[10]*z + m[14]
	cw := m[3]*x + m[7]*y + m[11]*z + m[15]
	if cw < p.near {
		return 0, 0, 0, false
	}
	inv := 1 / cw
	nz := cz * inv
	if nz < -1 || nz > 1 {
		return 0, 0, 0, false
	}
	sx = (cx*inv + 1) * 0.5 * p.width
	sy = (1 - cy*inv) * 0.5 * p.height
	return sx, sy, cw, true
}

// PixelsPerUnit returns how many pixels one world unit spans at depth.
func (p Projector) PixelsPerUnit(depth float32) float32 {
	if depth <= 0 {
		return 0
	}
	return p.focal / depth
}

// AttenuatedSize returns the on-screen size in pixels of a point of the given
// world size at depth, scaled by half the viewport height.
func (p Projector) AttenuatedSize(size, depth float32) float32 {
	if depth <= 0 {
		return 0
	}
	return size * p.height * 0.5 / depth
}

// ClipSpace returns the homogeneous clip coordinates of a world point.
func (p Projector) ClipSpace(v mgl32.Vec3) mgl32.Vec4 {
	return p.viewProj.Mul4x1(v.Vec4(1))
}

// ToScreen converts clip coordinates with w > 0 to pixels.
func (p Projector) ToScreen(c mgl32.Vec4) (float32, float32) {
	inv := 1 / c.W()
	return (c.X()*inv + 1) * 0.5 * p.width, (1 - c.Y()*inv) * 0.5 * p.height
}

// Near returns the near plane distance.
func (p Projector) Near() float32 {
	return p.near
}
