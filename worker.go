package main

import (
	"runtime"
	"sync"

	"pointsheet/internal/camera"
	"pointsheet/internal/pointsheet"
)

// minPointsPerWorker keeps tiny sheets on a single goroutine.
const minPointsPerWorker = 4096

// projectedPoint is a point of the sheet in viewport pixels.
type projectedPoint struct {
	x, y, depth float32
	visible     bool
}

// projectionWorkers projects the installed geometry in parallel. Workers only
// read the geometry and each writes a disjoint range of out.
type projectionWorkers struct {
	count int
	out   []projectedPoint
}

// newProjectionWorkers sizes the pool; count < 1 uses one worker per CPU.
func newProjectionWorkers(count int) *projectionWorkers {
	if count < 1 {
		count = runtime.NumCPU()
	}
	return &projectionWorkers{count: count}
}

// project returns the projection of every point of g. The returned slice is
// reused by the next call.
func (p *projectionWorkers) project(g *pointsheet.Geometry, pr camera.Projector) []projectedPoint {
	n := g.Len()
	if cap(p.out) < n {
		p.out = make([]projectedPoint, n)
	}
	p.out = p.out[:n]

	workers := p.count
	if limit := (n + minPointsPerWorker - 1) / minPointsPerWorker; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		projectRange(g, pr, p.out, 0, n)
		return p.out
	}
	per := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * per
		if start >= n {
			break
		}
		end := start + per
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			projectRange(g, pr, p.out, s, e)
		}(start, end)
	}
	wg.Wait()
	return p.out
}

// projectRange projects points [start, end) into out.
func projectRange(g *pointsheet.Geometry, pr camera.Projector, out []projectedPoint, start, end int) {
	pos := g.Positions
	for i := start; i < end; i++ {
		base := 3 * i
		sx, sy, depth, ok := pr.Project(pos[base], pos[base+1], pos[base+2])
		out[i] = projectedPoint{x: sx, y: sy, depth: depth, visible: ok}
	}
}
