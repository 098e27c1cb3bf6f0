package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleKeys processes the panel, visibility, and clock hotkeys.
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.panel.ToggleVisible()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.clock.Toggle()
		if g.clock.Running() {
			log.Printf("Clock resumed at %.2fs", g.clock.ElapsedTime())
		} else {
			log.Printf("Clock paused at %.2fs", g.clock.ElapsedTime())
		}
	}
	if !g.panel.Visible() {
		return
	}
	if repeatPressed(ebiten.KeyArrowDown) {
		g.panel.Next()
	}
	if repeatPressed(ebiten.KeyArrowUp) {
		g.panel.Prev()
	}
	if repeatPressed(ebiten.KeyArrowRight) {
		g.panel.Step(1)
	}
	if repeatPressed(ebiten.KeyArrowLeft) {
		g.panel.Step(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.panel.Toggle()
	}
}

// repeatPressed reports a key press on the first frame and then at a steady
// repeat rate while held.
func repeatPressed(key ebiten.Key) bool {
	const (
		delay    = 20
		interval = 4
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

// handlePointer tracks the pointer in normalized device coordinates and turns
// drags and wheel motion into orbit input.
func (g *Game) handlePointer() {
	cx, cy := ebiten.CursorPosition()
	g.pointer.X, g.pointer.Y = pointerNDC(cx, cy, g.screenW, g.screenH)

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			dx := float64(cx - g.lastCurX)
			dy := float64(cy - g.lastCurY)
			if dx != 0 || dy != 0 {
				g.controls.Rotate(dx*dragRotateScale, dy*dragRotateScale)
			}
		}
		g.dragging = true
		g.lastCurX, g.lastCurY = cx, cy
	} else {
		g.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.controls.Zoom(wy * wheelZoomScale)
	}
}

// pointerNDC maps a cursor position in screen pixels to [-1, 1] with y up.
func pointerNDC(x, y, width, height int) (float32, float32) {
	if width < 1 || height < 1 {
		return 0, 0
	}
	nx := float32(x)/float32(width)*2 - 1
	ny := -float32(y)/float32(height)*2 + 1
	return nx, ny
}
