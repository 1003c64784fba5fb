package detection

import (
	"image"

	"github.com/gradescan/omr-engine/internal/imaging"
)

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Bubble is a candidate mark region: one answer option on the sheet.
//
// Bubbles are created by FindBubbles and consumed by GroupRows; they are
// never mutated after creation.
type Bubble struct {
	// Bounds is the bounding box of the connected region.
	Bounds image.Rectangle `json:"bounds"`

	// Area is the number of foreground pixels in the region. Note this is
	// the pixel count of the component itself, not the bounding-box area.
	Area int `json:"area"`

	// Center is the center point of the bounding box.
	Center Point `json:"center"`
}

// Filter holds the acceptance criteria for candidate bubbles.
type Filter struct {
	// MinArea and MaxArea bound the foreground pixel count of a region.
	// Defaults 20 and 400.
	MinArea int
	MaxArea int

	// MinAspect and MaxAspect bound the bounding-box width/height ratio.
	// Defaults 0.7 and 1.3.
	MinAspect float64
	MaxAspect float64
}

// DefaultFilter returns the production acceptance band.
func DefaultFilter() Filter {
	return Filter{
		MinArea:   20,
		MaxArea:   400,
		MinAspect: 0.7,
		MaxAspect: 1.3,
	}
}

// FindBubbles locates candidate bubbles in a binary map.
//
// The map is scanned top-to-bottom, left-to-right; each unvisited foreground
// pixel seeds a flood fill that collects its 8-connected component. The
// component's pixel count and bounding box are checked against the filter,
// and survivors become Bubbles.
//
// The returned order is the scan order of each component's seed pixel, which
// is stable for a given input. No ordering beyond that is guaranteed;
// GroupRows imposes the row/column order.
func FindBubbles(bin *imaging.BinaryMap, f Filter) []Bubble {
	visited := make([][]bool, bin.Height)
	for y := range visited {
		visited[y] = make([]bool, bin.Width)
	}

	var bubbles []Bubble

	for y := 0; y < bin.Height; y++ {
		for x := 0; x < bin.Width; x++ {
			if !bin.At(x, y) || visited[y][x] {
				continue
			}

			area, bounds := floodFill(bin, visited, x, y)

			if area < f.MinArea || area > f.MaxArea {
				continue
			}

			w := bounds.Dx()
			h := bounds.Dy()
			if h == 0 {
				continue
			}
			aspect := float64(w) / float64(h)
			if aspect < f.MinAspect || aspect > f.MaxAspect {
				continue
			}

			bubbles = append(bubbles, Bubble{
				Bounds: bounds,
				Area:   area,
				Center: Point{
					X: bounds.Min.X + w/2,
					Y: bounds.Min.Y + h/2,
				},
			})
		}
	}

	return bubbles
}

// floodFill collects the 8-connected foreground component containing the
// start pixel, marking it visited. It returns the component's pixel count and
// bounding box.
//
// Uses a stack-based approach (not recursive) to avoid stack overflow on
// large components.
func floodFill(bin *imaging.BinaryMap, visited [][]bool, startX, startY int) (int, image.Rectangle) {
	stack := []Point{{X: startX, Y: startY}}

	area := 0
	minX, minY := startX, startY
	maxX, maxY := startX, startY

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= bin.Width || p.Y < 0 || p.Y >= bin.Height {
			continue
		}
		if visited[p.Y][p.X] || !bin.At(p.X, p.Y) {
			continue
		}

		visited[p.Y][p.X] = true
		area++

		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)

		// 8-connected neighbors
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}

	return area, image.Rect(minX, minY, maxX+1, maxY+1)
}
