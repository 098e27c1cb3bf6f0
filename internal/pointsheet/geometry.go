package pointsheet

import "math"

// Geometry holds one generation of the point cloud. Positions and Colors are
// flat xyz/rgb triples indexed by point.
type Geometry struct {
	Params    Params
	Positions []float32
	Colors    []float32

	// Min and Max bound every position.
	Min, Max [3]float32

	disposed bool
}

// Len returns the number of points.
func (g *Geometry) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Positions) / 3
}

// Point returns the position of point i, or zeros when i is out of range or
// the geometry was disposed.
func (g *Geometry) Point(i int) (x, y, z float32) {
	if i < 0 || i >= g.Len() {
		return 0, 0, 0
	}
	base := 3 * i
	return g.Positions[base], g.Positions[base+1], g.Positions[base+2]
}

// Color returns the color of point i. Like Point it returns the zero value
// for indexes a disposed geometry no longer holds.
func (g *Geometry) Color(i int) Color {
	if i < 0 || i >= len(g.Colors)/3 {
		return Color{}
	}
	base := 3 * i
	return Color{R: g.Colors[base], G: g.Colors[base+1], B: g.Colors[base+2]}
}

// Dispose releases the buffers. The geometry must not be drawn afterwards.
func (g *Geometry) Dispose() {
	g.Positions = nil
	g.Colors = nil
	g.disposed = true
}

// Disposed reports whether Dispose was called.
func (g *Geometry) Disposed() bool {
	return g.disposed
}

func (g *Geometry) computeBounds() {
	if len(g.Positions) < 3 {
		return
	}
	for a := 0; a < 3; a++ {
		g.Min[a] = float32(math.Inf(1))
		g.Max[a] = float32(math.Inf(-1))
	}
	for i := 0; i+2 < len(g.Positions); i += 3 {
		for a := 0; a < 3; a++ {
			v := g.Positions[i+a]
			if v < g.Min[a] {
				g.Min[a] = v
			}
			if v > g.Max[a] {
				g.Max[a] = v
			}
		}
	}
}
