package main

import "math"

// maxCachedMarkerRadius bounds the footprint cache. Larger discs only appear
// when the camera is close to the marker and are rebuilt each frame, which
// costs one row per pixel of radius.
const maxCachedMarkerRadius = 64

// discRow is one horizontal span of a disc: pixels dx in [-half, half] on
// row dy.
type discRow struct {
	dy   int
	half int
}

var markerFootprints [maxCachedMarkerRadius + 1][]discRow

// markerFootprint returns the rows covered by a disc of radius pixels.
func markerFootprint(radius int) []discRow {
	if radius < 1 {
		radius = 1
	}
	if radius > maxCachedMarkerRadius {
		return precomputeDiscRows(radius)
	}
	if fp := markerFootprints[radius]; fp != nil {
		return fp
	}
	fp := precomputeDiscRows(radius)
	markerFootprints[radius] = fp
	return fp
}

func precomputeDiscRows(radius int) []discRow {
	rows := make([]discRow, 0, 2*radius+1)
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		half := int(math.Sqrt(float64(r2 - dy*dy)))
		rows = append(rows, discRow{dy: dy, half: half})
	}
	return rows
}

// markerPixelRadius converts the marker's world radius at depth to pixels,
// capped so a disc never spans more than the viewport.
func markerPixelRadius(ppu float32, width, height int) int {
	radius := int(math.Round(float64(markerRadius * ppu)))
	if limit := max(width, height); radius > limit {
		radius = limit
	}
	return radius
}
