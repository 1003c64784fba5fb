package sheet

import (
	"github.com/gradescan/omr-engine/internal/detection"
	"github.com/gradescan/omr-engine/internal/grading"
	"github.com/gradescan/omr-engine/internal/imaging"
)

// Processor grades one sheet image against an answer key.
//
// Implementations must be safe for concurrent use and must not retain state
// between calls: processing one image never observes the result of another,
// and re-running the same image and key yields an identical result.
type Processor interface {
	Process(imagePath string, key grading.AnswerKey) (*grading.Result, error)
}

// Config holds every tunable of the recognition pipeline. The zero value is
// not useful; start from DefaultConfig.
type Config struct {
	// Preprocess controls grayscale/blur/threshold (see imaging package).
	Preprocess imaging.PreprocessOptions

	// Filter is the bubble acceptance band (see detection package).
	Filter detection.Filter

	// RowTolerance is the vertical clustering tolerance in pixels.
	RowTolerance int

	// OptionsPerQuestion is the expected bubble count per row; rows with any
	// other count are degenerate.
	OptionsPerQuestion int

	// FillThreshold is the minimum fill ratio a bubble must exceed to count
	// as marked.
	FillThreshold float64
}

// DefaultConfig returns the production parameters: 5x5 blur, 11x11 adaptive
// threshold window, area band [20, 400], aspect band [0.7, 1.3], 30px row
// tolerance, 5 options per question, 0.65 fill threshold.
func DefaultConfig() Config {
	return Config{
		Preprocess:         imaging.DefaultPreprocessOptions(),
		Filter:             detection.DefaultFilter(),
		RowTolerance:       30,
		OptionsPerQuestion: 5,
		FillThreshold:      0.65,
	}
}
