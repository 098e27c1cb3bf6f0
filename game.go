package main

import (
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-gl/mathgl/mgl32"

	"pointsheet/internal/camera"
	"pointsheet/internal/clock"
	"pointsheet/internal/orbit"
	"pointsheet/internal/params"
	"pointsheet/internal/picker"
	"pointsheet/internal/pointsheet"
	"pointsheet/internal/scene"
)

// Game wires the scene, camera, controls, and debug panel to Ebitengine.
type Game struct {
	clock    *clock.Clock
	cam      *camera.Camera
	controls *orbit.Controls
	panel    *params.Panel
	scene    *scene.Scene
	loop     *scene.Loop

	frame   scene.Frame
	pointer scene.Pointer

	dragging           bool
	lastCurX, lastCurY int

	screenW, screenH int
	fb               *frameBuffer
	workers          *projectionWorkers

	lastDrawDuration time.Duration
	lastStatsLog     time.Time

	gpuGenerator *openCLSheetGenerator
}

// initialValues builds the startup parameters from flags.
func initialValues() params.Values {
	v := params.DefaultValues()
	v.Sheet = pointsheet.Params{
		WaveAmplitude: *amplitudeFlag,
		Width:         *widthFlag,
		Depth:         *depthFlag,
		Compactness:   *compactnessFlag,
	}
	v.Rotate = *rotateFlag
	v.ShowAxes = *showAxesFlag
	return v
}

// newGame constructs a fully initialized Game instance.
func newGame() (*Game, error) {
	initial := initialValues()
	g := &Game{
		clock:   clock.New(),
		panel:   params.NewPanel(initial),
		workers: newProjectionWorkers(*workersFlag),
		fb:      newFrameBuffer(windowWidth, windowHeight),
	}
	if got := g.panel.Values(); got != initial {
		log.Printf("Flag values clamped to panel ranges: %+v", got.Sheet)
	}
	if *hidePanelFlag {
		g.panel.ToggleVisible()
	}

	g.cam = camera.New(cameraFovDegrees, cameraNear, cameraFar, mgl32.Vec3{cameraStartX, cameraStartY, cameraStartZ})
	g.cam.SetViewport(windowWidth, windowHeight)
	g.screenW, g.screenH = windowWidth, windowHeight
	g.controls = orbit.New(g.cam, defaultTPS)

	gen := scene.Generator(pointsheet.Generate)
	if *openCLFlag {
		if solver, err := newOpenCLSheetGenerator(); err != nil {
			log.Printf("OpenCL generator unavailable, using CPU: %v", err)
		} else {
			log.Printf("OpenCL generator enabled (device: %s)", solver.DeviceName())
			g.gpuGenerator = solver
			gen = solver.Generate
		}
	}

	sc, err := scene.New(gen, g.panel.Values().Sheet, picker.New(cameraNear, cameraFar))
	if err != nil {
		g.Close()
		return nil, err
	}
	sc.Subscribe(g.panel)
	g.scene = sc
	log.Printf("Point sheet ready: %s points", humanize.Comma(int64(sc.Geometry().Len())))

	g.loop = &scene.Loop{
		Clock:    g.clock,
		Controls: g.controls,
		Camera:   g.cam,
		Scene:    g.scene,
		Panel:    g.panel,
	}
	g.controls.SetAutoRotate(g.panel.Values().Rotate)
	return g, nil
}

// Update handles input and runs one animation tick.
func (g *Game) Update() error {
	g.handleKeys()
	g.handlePointer()
	g.frame = g.loop.Tick(g.pointer)
	if *debugFlag {
		g.logFrameStats()
	}
	return nil
}

// Close releases the optional GPU generator.
func (g *Game) Close() {
	if g.gpuGenerator != nil {
		g.gpuGenerator.Close()
		g.gpuGenerator = nil
	}
}

func (g *Game) logFrameStats() {
	now := time.Now()
	if now.Sub(g.lastStatsLog) < debugLogInterval {
		return
	}
	g.lastStatsLog = now
	log.Printf("Frame %d: %s points, draw %.2f ms, marker %v (hit %v)",
		g.frame.Tick, humanize.Comma(int64(g.frame.Geometry.Len())),
		g.lastDrawDuration.Seconds()*1000, g.frame.Marker, g.frame.Hit)
}
