package main

import "time"

// Viewer configuration constants. These values define the window, camera,
// materials, and timing of the point sheet viewer.
const (
	windowWidth       = 1280
	windowHeight      = 720
	maxPixelRatio     = 2.0
	defaultTPS        = 60
	cameraFovDegrees  = 75
	cameraNear        = 0.1
	cameraFar         = 300
	cameraStartX      = 40
	cameraStartY      = 20
	cameraStartZ      = 40
	pointSize         = 0.1
	maxPointPixels    = 4
	markerRadius      = 0.5
	axesLength        = 1000
	dragRotateScale   = 1.0
	wheelZoomScale    = 1.0
	panelX            = 8
	panelY            = 8
	panelWidth        = 340
	panelLineHeight   = 16
	debugLogInterval  = 5 * time.Second
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
)

// Background color of the canvas.
var clearColor = [4]byte{0, 0, 0, 255}
