package main

import "math"

// frameBuffer stores the color and depth targets the rasterizer draws into.
type frameBuffer struct {
	width, height int
	pixels        []byte
	depth         []float32
}

// newFrameBuffer allocates a frameBuffer with properly sized buffers.
func newFrameBuffer(width, height int) *frameBuffer {
	f := &frameBuffer{}
	f.resize(width, height)
	return f
}

// resize reallocates the buffers when the viewport size changes.
func (f *frameBuffer) resize(width, height int) {
	if width == f.width && height == f.height {
		return
	}
	f.width, f.height = width, height
	f.pixels = make([]byte, width*height*4)
	f.depth = make([]float32, width*height)
}

// clear fills the color buffer with the background and resets depth.
func (f *frameBuffer) clear() {
	for i := 0; i < len(f.pixels); i += 4 {
		f.pixels[i] = clearColor[0]
		f.pixels[i+1] = clearColor[1]
		f.pixels[i+2] = clearColor[2]
		f.pixels[i+3] = clearColor[3]
	}
	inf := float32(math.Inf(1))
	for i := range f.depth {
		f.depth[i] = inf
	}
}

// plot writes a pixel if it is nearer than what is already there.
func (f *frameBuffer) plot(x, y int, depth float32, r, g, b byte) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	idx := y*f.width + x
	if depth >= f.depth[idx] {
		return
	}
	f.depth[idx] = depth
	base := idx * 4
	f.pixels[base] = r
	f.pixels[base+1] = g
	f.pixels[base+2] = b
	f.pixels[base+3] = 255
}

// fillSquare plots a size x size square centered on (cx, cy).
func (f *frameBuffer) fillSquare(cx, cy float32, size int, depth float32, r, g, b byte) {
	x0 := int(cx) - size/2
	y0 := int(cy) - size/2
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			f.plot(x, y, depth, r, g, b)
		}
	}
}

// fillDisc plots the rows of a disc centered on (cx, cy), clipping each row
// to the viewport before touching any pixel.
func (f *frameBuffer) fillDisc(cx, cy int, rows []discRow, depth float32, r, g, b byte) {
	for _, row := range rows {
		y := cy + row.dy
		if y < 0 || y >= f.height {
			continue
		}
		x0 := max(cx-row.half, 0)
		x1 := min(cx+row.half, f.width-1)
		for x := x0; x <= x1; x++ {
			f.plot(x, y, depth, r, g, b)
		}
	}
}
