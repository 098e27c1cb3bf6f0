package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pointsheet/internal/camera"
	"pointsheet/internal/params"
	"pointsheet/internal/pointsheet"
)

var (
	panelBackground = color.RGBA{R: 20, G: 20, B: 26, A: 220}
	axisColors      = [3][3]byte{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}}
)

// Draw renders the point sheet, marker, optional axes, and overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	geo := g.frame.Geometry
	if geo == nil {
		geo = g.scene.Geometry()
	}

	g.fb.resize(g.screenW, g.screenH)
	g.fb.clear()
	pr := g.cam.Projector()

	g.drawPoints(geo, pr)
	g.drawMarker(pr)
	if g.frame.ShowAxes {
		g.drawAxes(pr)
	}
	screen.WritePixels(g.fb.pixels)

	if g.panel.Visible() {
		g.drawPanel(screen)
	}
	if *debugFlag {
		g.drawDebug(screen, geo)
	}
	g.lastDrawDuration = time.Since(start)
}

// Layout tracks the window size in device pixels and keeps the camera aspect
// in sync with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if scale > maxPixelRatio {
		scale = maxPixelRatio
	} else if scale < 1 {
		scale = 1
	}
	w := int(float64(outsideWidth) * scale)
	h := int(float64(outsideHeight) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w != g.screenW || h != g.screenH {
		g.screenW, g.screenH = w, h
		g.cam.SetViewport(w, h)
		log.Printf("Resized to %dx%d", w, h)
	}
	return w, h
}

// drawPoints rasterizes the sheet with size attenuation and depth testing.
func (g *Game) drawPoints(geo *pointsheet.Geometry, pr camera.Projector) {
	if geo == nil || geo.Len() == 0 {
		return
	}
	pts := g.workers.project(geo, pr)
	colors := geo.Colors
	for i, p := range pts {
		if !p.visible {
			continue
		}
		size := int(pr.AttenuatedSize(pointSize, p.depth) + 0.5)
		size = clampCoord(size, 1, maxPointPixels)
		base := 3 * i
		g.fb.fillSquare(p.x, p.y, size, p.depth,
			colorByte(colors[base]), colorByte(colors[base+1]), colorByte(colors[base+2]))
	}
}

// drawMarker renders the pointer marker as a depth-tested red disc.
func (g *Game) drawMarker(pr camera.Projector) {
	m := g.frame.Marker
	sx, sy, depth, ok := pr.Project(m.X(), m.Y(), m.Z())
	if !ok {
		return
	}
	radius := markerPixelRadius(pr.PixelsPerUnit(depth), g.screenW, g.screenH)
	front := depth - markerRadius
	g.fb.fillDisc(int(sx), int(sy), markerFootprint(radius), front, 255, 0, 0)
}

// drawAxes renders the X, Y, and Z axes from the origin.
func (g *Game) drawAxes(pr camera.Projector) {
	origin := pr.ClipSpace(mgl32.Vec3{})
	for axis := 0; axis < 3; axis++ {
		var end mgl32.Vec3
		end[axis] = axesLength
		a, b, ok := clipDepthRange(origin, pr.ClipSpace(end), pr.Near(), cameraFar)
		if !ok {
			continue
		}
		x0, y0 := pr.ToScreen(a)
		x1, y1 := pr.ToScreen(b)
		t0, t1, ok := clipSegment(x0, y0, x1, y1, 0, 0, float32(g.screenW-1), float32(g.screenH-1))
		if !ok {
			continue
		}
		dx, dy, dd := x1-x0, y1-y0, b.W()-a.W()
		clr := axisColors[axis]
		drawLine(g.fb,
			int(x0+dx*t0), int(y0+dy*t0), int(x0+dx*t1), int(y0+dy*t1),
			a.W()+dd*t0, a.W()+dd*t1, clr[0], clr[1], clr[2])
	}
}

// clipDepthRange trims a clip-space segment to near <= w <= far.
func clipDepthRange(a, b mgl32.Vec4, near, far float32) (mgl32.Vec4, mgl32.Vec4, bool) {
	wa, wb := a.W(), b.W()
	if (wa < near && wb < near) || (wa > far && wb > far) {
		return a, b, false
	}
	at := func(w float32) mgl32.Vec4 {
		return a.Add(b.Sub(a).Mul((w - wa) / (wb - wa)))
	}
	na, nb := a, b
	if wa < near {
		na = at(near)
	} else if wa > far {
		na = at(far)
	}
	if wb < near {
		nb = at(near)
	} else if wb > far {
		nb = at(far)
	}
	return na, nb, true
}

// clipSegment returns the parameter range of the segment inside the
// rectangle using Liang-Barsky clipping.
func clipSegment(x0, y0, x1, y1, xmin, ymin, xmax, ymax float32) (float32, float32, bool) {
	t0, t1 := float32(0), float32(1)
	dx, dy := x1-x0, y1-y0
	p := [4]float32{-dx, dx, -dy, dy}
	q := [4]float32{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return t0, t1, true
}

// drawLine plots a depth-tested line segment using Bresenham's integer
// algorithm, interpolating depth along the steps.
func drawLine(fb *frameBuffer, x0, y0, x1, y1 int, d0, d1 float32, r, g, b byte) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	total := dx
	if -dy > total {
		total = -dy
	}
	err := dx + dy
	for step := 0; ; step++ {
		depth := d0
		if total > 0 {
			depth = d0 + (d1-d0)*float32(step)/float32(total)
		}
		fb.plot(x0, y0, depth, r, g, b)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// panelLines renders the debug panel as text rows.
func panelLines(p *params.Panel) []string {
	lines := []string{p.Title()}
	folder := ""
	for i, f := range p.Fields() {
		if f.Folder != folder {
			folder = f.Folder
			lines = append(lines, "", folder)
		}
		cursor := "  "
		if i == p.Selected() {
			cursor = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%-18s %s", cursor, f.Label, p.Format(f)))
	}
	lines = append(lines, "", "arrows: select/adjust  space: toggle", "h: hide panel  p: pause clock")
	return lines
}

// drawPanel renders the debug panel in the top right corner.
func (g *Game) drawPanel(screen *ebiten.Image) {
	lines := panelLines(g.panel)
	x := g.screenW - panelWidth - panelX
	if x < 0 {
		x = 0
	}
	height := len(lines)*panelLineHeight + 8
	vector.DrawFilledRect(screen, float32(x), panelY, panelWidth, float32(height), panelBackground, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+6, panelY+4+i*panelLineHeight)
	}
}

// drawDebug renders the FPS and frame statistics overlay.
func (g *Game) drawDebug(screen *ebiten.Image, geo *pointsheet.Geometry) {
	clockState := "running"
	if !g.clock.Running() {
		clockState = "paused"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&b, "Points: %s (generation %d)\n", humanize.Comma(int64(geo.Len())), g.scene.Generation())
	fmt.Fprintf(&b, "Elapsed: %.2fs (%s)\n", g.frame.Elapsed, clockState)
	fmt.Fprintf(&b, "Draw: %.2f ms\n", g.lastDrawDuration.Seconds()*1000)
	m := g.frame.Marker
	fmt.Fprintf(&b, "Marker: %.2f %.2f %.2f", m.X(), m.Y(), m.Z())
	ebitenutil.DebugPrint(screen, b.String())
}
