package grading

import (
	"sort"
	"strconv"
)

// Per-question outcome vocabulary.
//
// StatusInvalid is reserved for multiple simultaneous marks. The current
// extractor never emits it (ties collapse to the left-most bubble), but the
// constant is part of the result contract.
const (
	StatusCorrect      = "correct"
	StatusIncorrect    = "incorrect"
	StatusNotAttempted = "not_attempted"
	StatusInvalid      = "invalid"
)

// AnswerKey maps question identifiers (1-based, as text) to the correct
// option letter. Immutable once loaded; the total question count is the key
// size.
type AnswerKey map[string]string

// Questions returns the key's question identifiers in numeric order.
// Non-numeric identifiers sort after numeric ones, lexically.
func (k AnswerKey) Questions() []string {
	qs := make([]string, 0, len(k))
	for q := range k {
		qs = append(qs, q)
	}
	sort.Slice(qs, func(i, j int) bool {
		ni, erri := strconv.Atoi(qs[i])
		nj, errj := strconv.Atoi(qs[j])
		switch {
		case erri == nil && errj == nil:
			return ni < nj
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return qs[i] < qs[j]
		}
	})
	return qs
}

// MarkedAnswers maps question identifiers to the selected option letter, or
// the empty string when no mark was detected. Produced once per image.
type MarkedAnswers map[string]string

// ProcessingInfo is an optional diagnostic block attached to a Result.
type ProcessingInfo struct {
	// DetectionThreshold is the fill-ratio cutoff that was applied.
	DetectionThreshold float64 `json:"detection_threshold"`

	// BubblesDetected is the number of candidate bubbles that survived
	// filtering, before row grouping.
	BubblesDetected int `json:"total_bubbles_detected"`

	// Method names the preprocessing method used, e.g. "adaptive_threshold".
	Method string `json:"image_processing"`
}

// Result is a scored sheet: the evaluation of one image against one key.
//
// Invariant: every question identifier present in CorrectAnswers appears
// exactly once in MarkedAnswers and in Statuses.
type Result struct {
	// Score is the count of correct answers.
	Score int `json:"score"`

	// Total is the question count, equal to the answer key size.
	Total int `json:"total"`

	// Percentage is Score/Total*100 rounded to two decimals; zero when the
	// key is empty.
	Percentage float64 `json:"percentage"`

	// MarkedAnswers holds the detected answer per question, "" if none.
	MarkedAnswers MarkedAnswers `json:"marked_answers"`

	// CorrectAnswers echoes the answer key.
	CorrectAnswers AnswerKey `json:"correct_answers"`

	// Statuses holds the per-question outcome, one of the Status constants.
	Statuses map[string]string `json:"result"`

	// ProcessingInfo carries detection diagnostics; nil when the producer
	// has none (e.g. the mock processor run without an image).
	ProcessingInfo *ProcessingInfo `json:"processing_info,omitempty"`
}
