package main

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// colorByte converts a [0,1] color component to a byte.
func colorByte(c float32) byte {
	return byte(clampCoord(int(c*255+0.5), 0, 255))
}
