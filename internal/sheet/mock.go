package sheet

import "github.com/gradescan/omr-engine/internal/grading"

// MethodMock names the mock preprocessing method in result diagnostics.
const MethodMock = "mock_processing"

// Mock is a stand-in processor that never opens the image: it grades a fixed
// set of marked answers through the same evaluation path as the real engine.
// Useful for exercising servers, batch runners, and report writers without
// image fixtures or detection tuning.
type Mock struct {
	// Marked is the canned per-question answer set. Questions absent from
	// the answer key are ignored by evaluation; key questions absent here
	// come out not attempted.
	Marked grading.MarkedAnswers
}

// NewMock returns a Mock with a representative spread of outcomes: mostly
// answered questions, a couple left blank.
func NewMock() *Mock {
	return &Mock{
		Marked: grading.MarkedAnswers{
			"1":  "A",
			"2":  "C",
			"3":  "C",
			"4":  "D",
			"5":  "A",
			"6":  "",
			"7":  "B",
			"8":  "D",
			"9":  "",
			"10": "A",
		},
	}
}

// Process evaluates the canned answers against key. The image path is
// accepted for interface compatibility and ignored.
func (m *Mock) Process(imagePath string, key grading.AnswerKey) (*grading.Result, error) {
	answered := 0
	for _, a := range m.Marked {
		if a != "" {
			answered++
		}
	}
	info := &grading.ProcessingInfo{
		DetectionThreshold: DefaultConfig().FillThreshold,
		BubblesDetected:    answered,
		Method:             MethodMock,
	}
	return grading.Evaluate(m.Marked, key, info), nil
}
