package camera

import "github.com/go-gl/mathgl/mgl32"

// Ray is a half-line with a unit Direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ClosestParam returns the ray parameter of the point on the ray closest to
// p, clamped to zero for points behind the origin.
func (r Ray) ClosestParam(p mgl32.Vec3) float32 {
	t := p.Sub(r.Origin).Dot(r.Direction)
	if t < 0 {
		return 0
	}
	return t
}

// DistanceSqToPoint returns the squared distance from p to the ray and the
// ray parameter of the closest point.
func (r Ray) DistanceSqToPoint(p mgl32.Vec3) (float32, float32) {
	t := r.ClosestParam(p)
	d := r.At(t).Sub(p)
	return d.Dot(d), t
}

// IntersectsBox reports whether the ray passes through the axis-aligned box.
func (r Ray) IntersectsBox(min, max mgl32.Vec3) bool {
	tmin := float32(0)
	tmax := float32(3.4e38)
	for a := 0; a < 3; a++ {
		o, d := r.Origin[a], r.Direction[a]
		if d == 0 {
			if o < min[a] || o > max[a] {
				return false
			}
			continue
		}
		inv := 1 / d
		t0 := (min[a] - o) * inv
		t1 := (max[a] - o) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmin > tmax {
			return false
		}
	}
	return true
}
