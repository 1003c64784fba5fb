package grading

import "math"

// Evaluate compares extracted answers to an answer key and produces a scored
// result.
//
// For every question in the key: a missing or empty marked answer yields
// StatusNotAttempted; a marked letter equal to the key's letter yields
// StatusCorrect and increments the score; anything else yields
// StatusIncorrect. Questions the extractor never saw (degenerate or missing
// rows) are filled into the result's marked-answers map as "", so the result
// always covers the full key.
//
// Percentage is score/total*100 rounded to two decimals, defined as zero for
// an empty key. info may be nil.
func Evaluate(marked MarkedAnswers, key AnswerKey, info *ProcessingInfo) *Result {
	total := len(key)
	score := 0
	statuses := make(map[string]string, total)
	complete := make(MarkedAnswers, total)

	for question, correct := range key {
		answer := marked[question]
		complete[question] = answer

		switch {
		case answer == "":
			statuses[question] = StatusNotAttempted
		case answer == correct:
			statuses[question] = StatusCorrect
			score++
		default:
			statuses[question] = StatusIncorrect
		}
	}

	percentage := 0.0
	if total > 0 {
		percentage = math.Round(float64(score)/float64(total)*100*100) / 100
	}

	return &Result{
		Score:          score,
		Total:          total,
		Percentage:     percentage,
		MarkedAnswers:  complete,
		CorrectAnswers: key,
		Statuses:       statuses,
		ProcessingInfo: info,
	}
}
