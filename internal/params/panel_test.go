package params_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pointsheet/internal/params"
)

// selectField moves the panel cursor to key.
func selectField(t *testing.T, p *params.Panel, key string) {
	t.Helper()
	for range p.Fields() {
		if p.Fields()[p.Selected()].Key == key {
			return
		}
		p.Next()
	}
	t.Fatalf("no field %q", key)
}

func recordChanges(p *params.Panel) *[]params.Values {
	var got []params.Values
	p.Changed.AddListener(func(_ context.Context, v params.Values) {
		got = append(got, v)
	})
	return &got
}

func TestPanel(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := params.NewPanel(params.DefaultValues())
		v := p.Values()
		assert.Equal(t, 200, v.Sheet.Width)
		assert.Equal(t, 200, v.Sheet.Depth)
		assert.Equal(t, 2.0, v.Sheet.Compactness)
		assert.Equal(t, 5.0, v.Sheet.WaveAmplitude)
		assert.True(t, v.Rotate)
		assert.False(t, v.ShowAxes)
		assert.True(t, p.Visible())
	})
	t.Run("initial values are clamped to field ranges", func(t *testing.T) {
		v := params.DefaultValues()
		v.Sheet.Width = 100000
		v.Sheet.Depth = -3
		v.Sheet.Compactness = 0.2
		v.Sheet.WaveAmplitude = -12.5
		p := params.NewPanel(v)
		got := p.Values().Sheet
		assert.Equal(t, 800, got.Width)
		assert.Equal(t, 1, got.Depth)
		assert.Equal(t, 1.0, got.Compactness)
		assert.Equal(t, -12.5, got.WaveAmplitude)
		assert.NoError(t, got.Validate())
	})
	t.Run("stepping width notifies with the new values", func(t *testing.T) {
		p := params.NewPanel(params.DefaultValues())
		got := recordChanges(p)
		selectField(t, p, "width")
		p.Step(1)
		require.Len(t, *got, 1)
		assert.Equal(t, 300, (*got)[0].Sheet.Width)
		assert.Equal(t, 300, p.Values().Sheet.Width)
	})
	t.Run("steps clamp to the declared range", func(t *testing.T) {
		p := params.NewPanel(params.DefaultValues())
		selectField(t, p, "compactness")
		for i := 0; i < 20; i++ {
			p.Step(1)
		}
		assert.Equal(t, 5.0, p.Values().Sheet.Compactness)
		for i := 0; i < 20; i++ {
			p.Step(-1)
		}
		assert.Equal(t, 1.0, p.Values().Sheet.Compactness)

		selectField(t, p, "depth")
		for i := 0; i < 5; i++ {
			p.Step(-1)
		}
		assert.Equal(t, 1, p.Values().Sheet.Depth)
	})
	t.Run("no notification when the value does not change", func(t *testing.T) {
		p := params.NewPanel(params.DefaultValues())
		got := recordChanges(p)
		require.NoError(t, p.Set("width", 800))
		require.NoError(t, p.Set("width", 900))
		assert.Len(t, *got, 1)
	})
	t.Run("view flags do not regenerate", func(t *testing.T) {
		p := params.NewPanel(params.DefaultValues())
		got := recordChanges(p)
		require.NoError(t, p.SetBool("axes", true))
		selectField(t, p, "rotation")
		p.Toggle()
		assert.Empty(t, *got)
		assert.True(t, p.Values().ShowAxes)
		assert.False(t, p.Values().Rotate)
	})
	t.Run("amplitude is open ended", func(t *testing.T) {
		p := params.NewPanel(params.DefaultValues())
		require.NoError(t, p.Set("amplitude", 1234.5))
		assert.Equal(t, 1234.5, p.Values().Sheet.WaveAmplitude)
		assert.Error(t, p.Set("amplitude", math.Inf(1)))
	})
	t.Run("unknown fields are rejected", func(t *testing.T) {
		p := params.NewPanel(params.DefaultValues())
		assert.ErrorIs(t, p.Set("nope", 1), params.ErrUnknownField)
		assert.Error(t, p.SetBool("width", true))
	})
	t.Run("visibility toggles", func(t *testing.T) {
		p := params.NewPanel(params.DefaultValues())
		p.ToggleVisible()
		assert.False(t, p.Visible())
		p.ToggleVisible()
		assert.True(t, p.Visible())
	})
	t.Run("selection wraps", func(t *testing.T) {
		p := params.NewPanel(params.DefaultValues())
		p.Prev()
		assert.Equal(t, len(p.Fields())-1, p.Selected())
		p.Next()
		assert.Equal(t, 0, p.Selected())
	})
	t.Run("format", func(t *testing.T) {
		p := params.NewPanel(params.DefaultValues())
		byKey := map[string]params.Field{}
		for _, f := range p.Fields() {
			byKey[f.Key] = f
		}
		assert.Equal(t, "[x]", p.Format(byKey["rotation"]))
		assert.Equal(t, "200", p.Format(byKey["width"]))
		assert.Equal(t, "2", p.Format(byKey["compactness"]))
		assert.False(t, byKey["amplitude"].Bounded())
		assert.True(t, byKey["width"].Bounded())
	})
}
