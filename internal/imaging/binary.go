package imaging

import "image"

// BinaryMap is a 2-D grid of booleans derived from a raster image by
// thresholding. True cells are foreground (marked ink after the inverted
// adaptive threshold), false cells are background.
//
// One BinaryMap is produced per input image. It is consumed by bubble
// detection and re-sampled for fill-ratio measurement; it is never mutated
// after Preprocess returns.
type BinaryMap struct {
	Width  int
	Height int

	// pixels is row-major: pixels[y][x].
	pixels [][]bool
}

// NewBinaryMap creates an all-background map of the given dimensions.
func NewBinaryMap(width, height int) *BinaryMap {
	pixels := make([][]bool, height)
	for y := range pixels {
		pixels[y] = make([]bool, width)
	}
	return &BinaryMap{Width: width, Height: height, pixels: pixels}
}

// At reports whether the pixel at (x, y) is foreground.
// Coordinates outside the map are background.
func (m *BinaryMap) At(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.pixels[y][x]
}

// Set marks the pixel at (x, y) as foreground or background.
// Out-of-bounds coordinates are ignored.
func (m *BinaryMap) Set(x, y int, foreground bool) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.pixels[y][x] = foreground
}

// FillRatio returns the fraction of pixels inside r that are foreground.
//
// The rectangle is clipped to the map bounds first. An empty intersection
// yields 0 rather than dividing by zero.
func (m *BinaryMap) FillRatio(r image.Rectangle) float64 {
	clipped := r.Intersect(image.Rect(0, 0, m.Width, m.Height))
	total := clipped.Dx() * clipped.Dy()
	if total == 0 {
		return 0
	}

	filled := 0
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			if m.pixels[y][x] {
				filled++
			}
		}
	}
	return float64(filled) / float64(total)
}
