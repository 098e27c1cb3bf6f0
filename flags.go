package main

import "flag"

// Command-line flags that control the initial sheet parameters and optional
// runtime behavior.
var (
	// widthFlag sets the initial number of grid columns.
	widthFlag = flag.Int("width", 200, "initial sheet width in points (1-800)")

	// depthFlag sets the initial number of grid rows.
	depthFlag = flag.Int("depth", 200, "initial sheet depth in points (1-800)")

	// compactnessFlag sets the inverse spacing between points.
	compactnessFlag = flag.Float64("compactness", 2, "initial points separation (1-5)")

	// amplitudeFlag scales the wave height.
	amplitudeFlag = flag.Float64("amplitude", 5, "initial wave amplitude")

	// rotateFlag enables orbit auto-rotation at startup.
	rotateFlag = flag.Bool("rotate", true, "auto-rotate the camera around the sheet")

	// showAxesFlag shows the axes helper at startup.
	showAxesFlag = flag.Bool("show-axes", false, "show the axes helper")

	// hidePanelFlag starts with the debug panel hidden ('h' toggles it).
	hidePanelFlag = flag.Bool("hide-panel", false, "start with the debug panel hidden")

	// debugFlag enables the FPS and frame statistics overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and frame statistics overlay")

	// workersFlag sets how many goroutines project points each frame.
	workersFlag = flag.Int("workers", 0, "point projection workers (0 = one per CPU)")

	// openCLFlag generates the sheet with OpenCL when built with -tags opencl.
	openCLFlag = flag.Bool("opencl", false, "generate the point sheet on an OpenCL device (requires -tags opencl)")

	// logFileFlag writes the log to a rotating file instead of stderr.
	logFileFlag = flag.String("log-file", "", "write log output to this file with rotation")

	// cpuProfileFlag writes a CPU profile for the whole session.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)
