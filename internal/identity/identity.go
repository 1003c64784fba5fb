// Package identity extracts student name and roll number from the header of
// a sheet image using Tesseract OCR.
//
// This is collaborator glue for batch grading, not part of the recognition
// core: the grading engine never imports it, and a failed or missing identity
// never blocks scoring. Tesseract and its language data must be installed on
// the system.
package identity

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Unknown is the fallback value when a field cannot be read.
const Unknown = "Unknown"

// Config locates the header regions to read and the OCR language.
type Config struct {
	// NameRegion and RollRegion are the sheet areas holding the student name
	// and roll number. A zero rectangle selects a default strip across the
	// top of the image: left half for the name, right half for the roll.
	NameRegion image.Rectangle
	RollRegion image.Rectangle

	// Language is the Tesseract language code. Default "eng".
	Language string
}

// Info is the extracted student identity.
type Info struct {
	Name       string  `json:"name"`
	RollNumber string  `json:"roll_number"`
	Confidence float64 `json:"confidence_score,omitempty"`
}

// Extract reads the student identity from the header regions of img.
//
// Each region is cropped, handed to Tesseract through a temporary PNG
// (Tesseract wants a file path), and the recognized text is collapsed to a
// single line. Fields that come back empty are set to Unknown. Confidence is
// the mean word confidence across both regions, 0 when no words were read.
func Extract(img image.Image, cfg Config) (*Info, error) {
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	bounds := img.Bounds()
	if cfg.NameRegion.Empty() {
		cfg.NameRegion = image.Rect(bounds.Min.X, bounds.Min.Y,
			bounds.Min.X+bounds.Dx()/2, bounds.Min.Y+bounds.Dy()/10)
	}
	if cfg.RollRegion.Empty() {
		cfg.RollRegion = image.Rect(bounds.Min.X+bounds.Dx()/2, bounds.Min.Y,
			bounds.Max.X, bounds.Min.Y+bounds.Dy()/10)
	}

	name, nameConf, err := readRegion(img, cfg.NameRegion, cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("reading name region: %w", err)
	}
	roll, rollConf, err := readRegion(img, cfg.RollRegion, cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("reading roll region: %w", err)
	}

	info := &Info{
		Name:       orUnknown(name),
		RollNumber: orUnknown(roll),
	}
	samples := 0
	if nameConf > 0 {
		info.Confidence += nameConf
		samples++
	}
	if rollConf > 0 {
		info.Confidence += rollConf
		samples++
	}
	if samples > 0 {
		info.Confidence /= float64(samples)
	}
	return info, nil
}

// readRegion OCRs one rectangular region of the image and returns the
// recognized text with the mean word confidence (0..1).
func readRegion(img image.Image, region image.Rectangle, language string) (string, float64, error) {
	cropped := imaging.Crop(img, region)

	tmp, err := os.CreateTemp("", "omr-identity-*.png")
	if err != nil {
		return "", 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmp, cropped); err != nil {
		tmp.Close()
		return "", 0, fmt.Errorf("encoding region: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", 0, fmt.Errorf("closing temp file: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return "", 0, fmt.Errorf("setting OCR language: %w", err)
	}
	if err := client.SetImage(tmpPath); err != nil {
		return "", 0, fmt.Errorf("setting OCR image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("OCR failed: %w", err)
	}

	confidence := 0.0
	if boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD); err == nil && len(boxes) > 0 {
		words := 0
		for _, box := range boxes {
			if box.Word == "" {
				continue
			}
			confidence += box.Confidence / 100.0
			words++
		}
		if words > 0 {
			confidence /= float64(words)
		}
	}

	return strings.Join(strings.Fields(text), " "), confidence, nil
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
