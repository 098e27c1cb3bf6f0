package pointsheet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pointsheet/internal/pointsheet"
)

func TestGenerate(t *testing.T) {
	t.Run("buffers hold three values per point", func(t *testing.T) {
		for _, tc := range []struct{ width, depth int }{
			{1, 1}, {1, 7}, {9, 1}, {10, 3}, {200, 200},
		} {
			p := pointsheet.Params{WaveAmplitude: 5, Width: tc.width, Depth: tc.depth, Compactness: 2}
			g, err := pointsheet.Generate(p)
			require.NoError(t, err)
			assert.Len(t, g.Positions, 3*tc.width*tc.depth)
			assert.Len(t, g.Colors, 3*tc.width*tc.depth)
			assert.Equal(t, tc.width*tc.depth, g.Len())
		}
	})
	t.Run("same parameters give identical buffers", func(t *testing.T) {
		p := pointsheet.DefaultParams()
		a, err := pointsheet.Generate(p)
		require.NoError(t, err)
		b, err := pointsheet.Generate(p)
		require.NoError(t, err)
		assert.Equal(t, a.Positions, b.Positions)
		assert.Equal(t, a.Colors, b.Colors)
	})
	t.Run("changing width and back reproduces the buffers", func(t *testing.T) {
		p := pointsheet.DefaultParams()
		first, err := pointsheet.Generate(p)
		require.NoError(t, err)
		p.Width = 300
		_, err = pointsheet.Generate(p)
		require.NoError(t, err)
		p.Width = 200
		again, err := pointsheet.Generate(p)
		require.NoError(t, err)
		require.Equal(t, len(first.Positions), len(again.Positions))
		for i := range first.Positions {
			assert.Equal(t, math.Float32bits(first.Positions[i]), math.Float32bits(again.Positions[i]))
			assert.Equal(t, math.Float32bits(first.Colors[i]), math.Float32bits(again.Colors[i]))
		}
	})
	t.Run("first point sits at the wave crest", func(t *testing.T) {
		p := pointsheet.Params{WaveAmplitude: 3.5, Width: 8, Depth: 4, Compactness: 2}
		g, err := pointsheet.Generate(p)
		require.NoError(t, err)
		x, y, z := g.Point(0)
		assert.Equal(t, float32(-2), x)
		assert.Equal(t, float32(3.5), y)
		assert.Equal(t, float32(-1), z)
	})
	t.Run("points follow row-major order", func(t *testing.T) {
		p := pointsheet.Params{WaveAmplitude: 1, Width: 3, Depth: 4, Compactness: 1}
		g, err := pointsheet.Generate(p)
		require.NoError(t, err)
		// point 5 is i=1, k=1
		x, y, z := g.Point(5)
		assert.InDelta(t, 1-0.75, x, 1e-6)
		assert.InDelta(t, 1-1.0, z, 1e-6)
		assert.InDelta(t, math.Sin(0.2)+math.Cos(0.2), y, 1e-6)
	})
	t.Run("bounds enclose every point", func(t *testing.T) {
		g, err := pointsheet.Generate(pointsheet.Params{WaveAmplitude: 2, Width: 20, Depth: 30, Compactness: 1.5})
		require.NoError(t, err)
		for i := 0; i < g.Len(); i++ {
			x, y, z := g.Point(i)
			assert.True(t, x >= g.Min[0] && x <= g.Max[0])
			assert.True(t, y >= g.Min[1] && y <= g.Max[1])
			assert.True(t, z >= g.Min[2] && z <= g.Max[2])
		}
	})
}

func TestGenerateRejectsInvalidParams(t *testing.T) {
	cases := map[string]pointsheet.Params{
		"zero width":       {WaveAmplitude: 5, Width: 0, Depth: 10, Compactness: 2},
		"negative depth":   {WaveAmplitude: 5, Width: 10, Depth: -1, Compactness: 2},
		"zero compactness": {WaveAmplitude: 5, Width: 10, Depth: 10, Compactness: 0},
		"nan compactness":  {WaveAmplitude: 5, Width: 10, Depth: 10, Compactness: math.NaN()},
		"inf amplitude":    {WaveAmplitude: math.Inf(1), Width: 10, Depth: 10, Compactness: 2},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := pointsheet.Generate(p)
			assert.ErrorIs(t, err, pointsheet.ErrInvalidParams)
			assert.Nil(t, g)
		})
	}
}

func TestBand(t *testing.T) {
	t.Run("width divisible by three", func(t *testing.T) {
		want := []int{0, 0, 0, 1, 1, 1, 2, 2, 2}
		for i, b := range want {
			assert.Equal(t, b, pointsheet.Band(i, 9), "i=%d", i)
		}
	})
	t.Run("last column of an uneven width stays in range", func(t *testing.T) {
		assert.Equal(t, 2, pointsheet.Band(9, 10))
		for i := 0; i < 10; i++ {
			b := pointsheet.Band(i, 10)
			assert.True(t, b >= 0 && b <= 2)
		}
	})
	t.Run("bands map to primaries", func(t *testing.T) {
		g, err := pointsheet.Generate(pointsheet.Params{WaveAmplitude: 1, Width: 9, Depth: 2, Compactness: 1})
		require.NoError(t, err)
		assert.Equal(t, pointsheet.Color{R: 1}, g.Color(0))
		assert.Equal(t, pointsheet.Color{G: 1}, g.Color(3*2))
		assert.Equal(t, pointsheet.Color{B: 1}, g.Color(8*2+1))
	})
}

func TestFromBuffers(t *testing.T) {
	p := pointsheet.Params{WaveAmplitude: 1, Width: 2, Depth: 2, Compactness: 1}
	t.Run("accepts matching buffers", func(t *testing.T) {
		g, err := pointsheet.FromBuffers(p, make([]float32, 12), make([]float32, 12))
		require.NoError(t, err)
		assert.Equal(t, 4, g.Len())
	})
	t.Run("rejects mismatched buffers", func(t *testing.T) {
		_, err := pointsheet.FromBuffers(p, make([]float32, 12), make([]float32, 9))
		assert.Error(t, err)
	})
}

func TestDispose(t *testing.T) {
	g, err := pointsheet.Generate(pointsheet.DefaultParams())
	require.NoError(t, err)
	x, _, _ := g.Point(0)
	require.NotZero(t, x)
	g.Dispose()
	assert.True(t, g.Disposed())
	assert.Zero(t, g.Len())

	x, y, z := g.Point(0)
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Zero(t, z)
	assert.Equal(t, pointsheet.Color{}, g.Color(0))
	assert.Equal(t, pointsheet.Color{}, g.Color(-1))
}
