// Package scene owns the installed point cloud and the marker, and drives the
// per-frame update order.
package scene

import (
	"context"
	"log"
	"time"

	"pointsheet/internal/params"
	"pointsheet/internal/picker"
	"pointsheet/internal/pointsheet"
)

// Generator builds a point cloud for the given parameters.
type Generator func(pointsheet.Params) (*pointsheet.Geometry, error)

// Scene holds the live point cloud. The cloud is replaced wholesale on every
// parameter change and never patched in place.
type Scene struct {
	generate Generator
	geometry *pointsheet.Geometry
	picker   *picker.Picker

	generation int
}

// New generates the initial cloud. A nil gen uses pointsheet.Generate.
func New(gen Generator, p pointsheet.Params, pk *picker.Picker) (*Scene, error) {
	if gen == nil {
		gen = pointsheet.Generate
	}
	g, err := gen(p)
	if err != nil {
		return nil, err
	}
	return &Scene{generate: gen, geometry: g, picker: pk, generation: 1}, nil
}

// Geometry returns the installed point cloud.
func (s *Scene) Geometry() *pointsheet.Geometry {
	return s.geometry
}

// Picker returns the marker picker.
func (s *Scene) Picker() *picker.Picker {
	return s.picker
}

// Generation counts successful installs, starting at 1.
func (s *Scene) Generation() int {
	return s.generation
}

// Regenerate builds a cloud for p and installs it, disposing the previous
// one. On error the previous cloud stays installed.
func (s *Scene) Regenerate(p pointsheet.Params) error {
	start := time.Now()
	g, err := s.generate(p)
	if err != nil {
		return err
	}
	old := s.geometry
	s.geometry = g
	s.generation++
	if old != nil {
		old.Dispose()
	}
	log.Printf("Point sheet regenerated: %dx%d, %d points in %v", p.Width, p.Depth, g.Len(), time.Since(start))
	return nil
}

// Subscribe regenerates the cloud whenever the panel reports a change.
func (s *Scene) Subscribe(panel *params.Panel) {
	panel.Changed.AddListener(func(_ context.Context, v params.Values) {
		if err := s.Regenerate(v.Sheet); err != nil {
			log.Printf("Point sheet regeneration failed: %v", err)
		}
	})
}
