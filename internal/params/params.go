// Package params holds the live viewer parameters and the debug panel model
// that edits them.
package params

import (
	"math"

	"pointsheet/internal/pointsheet"
)

// Values is the full live parameter set.
type Values struct {
	Sheet    pointsheet.Params
	Rotate   bool
	ShowAxes bool
}

// DefaultValues returns the startup parameters.
func DefaultValues() Values {
	return Values{
		Sheet:  pointsheet.DefaultParams(),
		Rotate: true,
	}
}

// Kind is the value type of a Field.
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindBool
)

// Folder names group fields in the panel.
const (
	FolderDebug  = "Debugging Options"
	FolderSheet  = "Point Sheet Controls"
	panelTitle   = "Demo"
	boolTrue     = 1.0
	boolFalse    = 0.0
	unboundedMin = -math.MaxFloat64
	unboundedMax = math.MaxFloat64
)

// Field describes one editable parameter.
type Field struct {
	Key    string
	Label  string
	Folder string
	Kind   Kind

	Min, Max, Step float64

	// Regenerates is set for fields that change the sheet geometry.
	Regenerates bool

	get func(*Values) float64
	set func(*Values, float64)
}

// Bounded reports whether the field has a declared range.
func (f Field) Bounded() bool {
	return f.Min > unboundedMin || f.Max < unboundedMax
}

func (f Field) normalize(v float64) float64 {
	switch f.Kind {
	case KindBool:
		if v != 0 {
			return boolTrue
		}
		return boolFalse
	case KindInt:
		v = math.Round(v)
	}
	if v < f.Min {
		v = f.Min
	}
	if v > f.Max {
		v = f.Max
	}
	return v
}

func (f Field) snap(v float64) float64 {
	if f.Step <= 0 || f.Kind == KindBool {
		return v
	}
	return math.Round(v/f.Step) * f.Step
}

func boolValue(b bool) float64 {
	if b {
		return boolTrue
	}
	return boolFalse
}

// defaultFields lists the panel in display order.
func defaultFields() []Field {
	return []Field{
		{
			Key: "axes", Label: "Show Axes Helper", Folder: FolderDebug, Kind: KindBool,
			Min: 0, Max: 1,
			get: func(v *Values) float64 { return boolValue(v.ShowAxes) },
			set: func(v *Values, x float64) { v.ShowAxes = x != 0 },
		},
		{
			Key: "rotation", Label: "Rotate", Folder: FolderDebug, Kind: KindBool,
			Min: 0, Max: 1,
			get: func(v *Values) float64 { return boolValue(v.Rotate) },
			set: func(v *Values, x float64) { v.Rotate = x != 0 },
		},
		{
			Key: "compactness", Label: "Points Separation", Folder: FolderSheet, Kind: KindFloat,
			Min: 1, Max: 5, Step: 0.5, Regenerates: true,
			get: func(v *Values) float64 { return v.Sheet.Compactness },
			set: func(v *Values, x float64) { v.Sheet.Compactness = x },
		},
		{
			Key: "width", Label: "Sheet Width", Folder: FolderSheet, Kind: KindInt,
			Min: 1, Max: 800, Step: 100, Regenerates: true,
			get: func(v *Values) float64 { return float64(v.Sheet.Width) },
			set: func(v *Values, x float64) { v.Sheet.Width = int(x) },
		},
		{
			Key: "depth", Label: "Sheet Depth", Folder: FolderSheet, Kind: KindInt,
			Min: 1, Max: 800, Step: 100, Regenerates: true,
			get: func(v *Values) float64 { return float64(v.Sheet.Depth) },
			set: func(v *Values, x float64) { v.Sheet.Depth = int(x) },
		},
		{
			// open-ended: any finite amplitude is accepted
			Key: "amplitude", Label: "Wave Amplitude", Folder: FolderSheet, Kind: KindFloat,
			Min: unboundedMin, Max: unboundedMax, Step: 0.5, Regenerates: true,
			get: func(v *Values) float64 { return v.Sheet.WaveAmplitude },
			set: func(v *Values, x float64) { v.Sheet.WaveAmplitude = x },
		},
	}
}
