package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gradescan/omr-engine/internal/detection"
	"github.com/gradescan/omr-engine/internal/grading"
)

// AnnotateResult contains the graded-overlay image encoded as base64 PNG.
type AnnotateResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// statusColor returns the overlay tint for a per-question status. Hues are
// picked in HSV for even perceptual weight: green for correct, red for
// incorrect, amber for invalid, gray for everything else.
func statusColor(status string) color.RGBA {
	var c colorful.Color
	switch status {
	case grading.StatusCorrect:
		c = colorful.Hsv(120, 0.75, 0.80)
	case grading.StatusIncorrect:
		c = colorful.Hsv(0, 0.75, 0.90)
	case grading.StatusInvalid:
		c = colorful.Hsv(40, 0.85, 0.95)
	default:
		c = colorful.Hsv(0, 0, 0.55)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Annotate draws each detected question row's bounding box onto a copy of the
// sheet image, tinted by that question's status, and returns the result as a
// base64 PNG.
//
// Row position (1-based) is matched against the statuses map the same way
// the extractor assigns question numbers, so overlays line up with the
// grading the caller received. Rows with no status entry (beyond the key's
// question count) are drawn in the neutral color.
func Annotate(img image.Image, rows []detection.Row, statuses map[string]string) (*AnnotateResult, error) {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	const margin = 3

	for i, row := range rows {
		if len(row.Bubbles) == 0 {
			continue
		}
		box := row.Bubbles[0].Bounds
		for _, b := range row.Bubbles[1:] {
			box = box.Union(b.Bounds)
		}
		box = box.Inset(-margin).Intersect(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

		c := statusColor(statuses[strconv.Itoa(i+1)])
		drawRect(out, box.Add(bounds.Min), c)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encoding annotated image: %w", err)
	}

	return &AnnotateResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// drawRect draws a one-pixel rectangle outline.
func drawRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}
