// Package pointsheet generates the colored point grid that forms the wave
// surface. Generation is a pure function of Params.
package pointsheet

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is returned when the parameters would produce an empty or
// non-finite point cloud.
var ErrInvalidParams = errors.New("invalid point sheet parameters")

// Params controls the shape of the sheet.
type Params struct {
	WaveAmplitude float64
	Width         int
	Depth         int
	Compactness   float64
}

// DefaultParams returns the parameters the viewer starts with.
func DefaultParams() Params {
	return Params{
		WaveAmplitude: 5,
		Width:         200,
		Depth:         200,
		Compactness:   2,
	}
}

// Validate reports whether p can be generated.
func (p Params) Validate() error {
	switch {
	case p.Width <= 0:
		return fmt.Errorf("width %d: %w", p.Width, ErrInvalidParams)
	case p.Depth <= 0:
		return fmt.Errorf("depth %d: %w", p.Depth, ErrInvalidParams)
	case math.IsNaN(p.Compactness) || math.IsInf(p.Compactness, 0) || p.Compactness <= 0:
		return fmt.Errorf("compactness %v: %w", p.Compactness, ErrInvalidParams)
	case math.IsNaN(p.WaveAmplitude) || math.IsInf(p.WaveAmplitude, 0):
		return fmt.Errorf("wave amplitude %v: %w", p.WaveAmplitude, ErrInvalidParams)
	}
	return nil
}

// Points returns the number of points p generates.
func (p Params) Points() int {
	return p.Width * p.Depth
}

// Color is an RGB triple with components in [0,1].
type Color struct {
	R, G, B float32
}

var bandColors = [3]Color{
	{R: 1},
	{G: 1},
	{B: 1},
}

// Band returns the color band of column i in a sheet of the given width.
// The sheet is split into three contiguous bands along the width axis.
func Band(i, width int) int {
	band := int(math.Floor(float64(i) / (float64(width) / 3)))
	if band < 0 {
		return 0
	}
	if band > len(bandColors)-1 {
		return len(bandColors) - 1
	}
	return band
}

// BandColor returns the color assigned to band b.
func BandColor(b int) Color {
	if b < 0 {
		b = 0
	} else if b > len(bandColors)-1 {
		b = len(bandColors) - 1
	}
	return bandColors[b]
}

// Wave is the height function of the sheet before amplitude scaling.
func Wave(x, z float64) float64 {
	return math.Sin(x/5) + math.Cos(z/5)
}

// Generate builds the point cloud for p.
func Generate(p Params) (*Geometry, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := p.Points()
	positions := make([]float32, 3*n)
	colors := make([]float32, 3*n)

	offsetX := float64(p.Width) / 4
	offsetZ := float64(p.Depth) / 4
	count := 0
	for i := 0; i < p.Width; i++ {
		clr := BandColor(Band(i, p.Width))
		for k := 0; k < p.Depth; k++ {
			x := float64(i) / p.Compactness
			z := float64(k) / p.Compactness
			y := Wave(x, z)

			base := 3 * count
			positions[base] = float32(x - offsetX)
			positions[base+1] = float32(y * p.WaveAmplitude)
			positions[base+2] = float32(z - offsetZ)

			colors[base] = clr.R
			colors[base+1] = clr.G
			colors[base+2] = clr.B
			count++
		}
	}
	g := &Geometry{Params: p, Positions: positions, Colors: colors}
	g.computeBounds()
	return g, nil
}

// FromBuffers wraps buffers produced outside Generate, such as on a GPU.
// Both buffers must hold 3*Width*Depth values.
func FromBuffers(p Params, positions, colors []float32) (*Geometry, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	want := 3 * p.Points()
	if len(positions) != want || len(colors) != want {
		return nil, fmt.Errorf("buffer lengths %d/%d, want %d", len(positions), len(colors), want)
	}
	g := &Geometry{Params: p, Positions: positions, Colors: colors}
	g.computeBounds()
	return g, nil
}
