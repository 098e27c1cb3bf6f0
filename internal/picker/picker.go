// Package picker finds the point of the sheet under the pointer and keeps a
// marker on it.
package picker

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"pointsheet/internal/camera"
	"pointsheet/internal/pointsheet"
)

// DefaultThreshold is the world-space radius around the ray within which a
// point counts as hit.
const DefaultThreshold = 0.3

// Hit is one point intersected by a ray.
type Hit struct {
	Index    int
	Point    mgl32.Vec3 // position of the point
	Distance float32    // from the ray origin to the closest point on the ray
}

// Intersect returns every point of g within threshold of the ray whose
// distance along the ray lies in [near, far], nearest first.
func Intersect(ray camera.Ray, g *pointsheet.Geometry, threshold, near, far float32) []Hit {
	if g == nil || g.Len() == 0 {
		return nil
	}
	pad := mgl32.Vec3{threshold, threshold, threshold}
	min := mgl32.Vec3{g.Min[0], g.Min[1], g.Min[2]}.Sub(pad)
	max := mgl32.Vec3{g.Max[0], g.Max[1], g.Max[2]}.Add(pad)
	if !ray.IntersectsBox(min, max) {
		return nil
	}

	limit := threshold * threshold
	var hits []Hit
	for i, n := 0, g.Len(); i < n; i++ {
		x, y, z := g.Point(i)
		p := mgl32.Vec3{x, y, z}
		d2, t := ray.DistanceSqToPoint(p)
		if d2 >= limit {
			continue
		}
		dist := ray.At(t).Sub(ray.Origin).Len()
		if dist < near || dist > far {
			continue
		}
		hits = append(hits, Hit{Index: i, Point: p, Distance: dist})
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Distance < hits[b].Distance
	})
	return hits
}

// Picker moves a marker to the nearest point under the pointer.
type Picker struct {
	Threshold float32
	Near, Far float32

	marker mgl32.Vec3
	last   Hit
	hit    bool
}

// New returns a picker with the default threshold and the given depth range.
func New(near, far float32) *Picker {
	return &Picker{Threshold: DefaultThreshold, Near: near, Far: far}
}

// Update casts ray against g. On a hit the marker moves to the nearest
// point; on a miss it stays where it was.
func (p *Picker) Update(ray camera.Ray, g *pointsheet.Geometry) bool {
	hits := Intersect(ray, g, p.Threshold, p.Near, p.Far)
	p.hit = len(hits) > 0
	if !p.hit {
		return false
	}
	p.last = hits[0]
	p.marker = hits[0].Point
	return true
}

// Marker returns the marker position.
func (p *Picker) Marker() mgl32.Vec3 {
	return p.marker
}

// SetMarker places the marker explicitly.
func (p *Picker) SetMarker(v mgl32.Vec3) {
	p.marker = v
}

// LastHit returns the hit from the most recent Update and whether that
// update hit anything.
func (p *Picker) LastHit() (Hit, bool) {
	return p.last, p.hit
}
