package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"pointsheet/internal/camera"
	"pointsheet/internal/params"
	"pointsheet/internal/pointsheet"
)

// Clock supplies elapsed time in seconds.
type Clock interface {
	ElapsedTime() float64
}

// Controls moves the camera each frame.
type Controls interface {
	Update()
	SetAutoRotate(bool)
}

// RayCaster turns pointer coordinates into a picking ray.
type RayCaster interface {
	RayFromNDC(x, y float32) camera.Ray
}

// Pointer is the last pointer position in normalized device coordinates.
type Pointer struct {
	X, Y float32
}

// Frame is the state a render host draws after a tick.
type Frame struct {
	Tick     uint64
	Elapsed  float64
	Geometry *pointsheet.Geometry
	Marker   mgl32.Vec3
	Hit      bool
	ShowAxes bool
}

// Loop runs one animation tick at a time. It has no stop state; the host
// calls Tick once per frame for as long as it runs.
type Loop struct {
	Clock    Clock
	Controls Controls
	Camera   RayCaster
	Scene    *Scene
	Panel    *params.Panel

	ticks uint64
}

// Tick reads the clock, updates the controls, picks under the pointer, and
// applies the live rotation flag. The returned frame is ready to render.
func (l *Loop) Tick(ptr Pointer) Frame {
	l.ticks++
	elapsed := l.Clock.ElapsedTime()

	l.Controls.Update()

	g := l.Scene.Geometry()
	pk := l.Scene.Picker()
	hit := pk.Update(l.Camera.RayFromNDC(ptr.X, ptr.Y), g)

	v := l.Panel.Values()
	l.Controls.SetAutoRotate(v.Rotate)

	return Frame{
		Tick:     l.ticks,
		Elapsed:  elapsed,
		Geometry: g,
		Marker:   pk.Marker(),
		Hit:      hit,
		ShowAxes: v.ShowAxes,
	}
}
