package grading

import (
	"math"
	"reflect"
	"strconv"
	"testing"
)

func TestEvaluateEndToEndScenario(t *testing.T) {
	key := AnswerKey{"1": "A", "2": "B", "3": "C"}
	marked := MarkedAnswers{"1": "A", "2": "C", "3": ""}

	result := Evaluate(marked, key, nil)

	if result.Score != 1 {
		t.Errorf("score = %d, want 1", result.Score)
	}
	if result.Total != 3 {
		t.Errorf("total = %d, want 3", result.Total)
	}
	if result.Percentage != 33.33 {
		t.Errorf("percentage = %v, want 33.33", result.Percentage)
	}
	wantStatuses := map[string]string{
		"1": StatusCorrect,
		"2": StatusIncorrect,
		"3": StatusNotAttempted,
	}
	if !reflect.DeepEqual(result.Statuses, wantStatuses) {
		t.Errorf("statuses = %v, want %v", result.Statuses, wantStatuses)
	}
}

func TestEvaluateFillsMissingQuestions(t *testing.T) {
	key := AnswerKey{"1": "A", "2": "B", "3": "C", "4": "D"}
	// Questions 2-4 never detected (e.g. degenerate rows).
	marked := MarkedAnswers{"1": "A"}

	result := Evaluate(marked, key, nil)

	for _, q := range key.Questions() {
		if _, ok := result.MarkedAnswers[q]; !ok {
			t.Errorf("question %s missing from marked answers", q)
		}
		if _, ok := result.Statuses[q]; !ok {
			t.Errorf("question %s missing from statuses", q)
		}
	}
	if result.MarkedAnswers["3"] != "" {
		t.Errorf("undetected question must be filled with the empty marker")
	}
	if result.Statuses["4"] != StatusNotAttempted {
		t.Errorf("undetected question status = %q, want %q", result.Statuses["4"], StatusNotAttempted)
	}
	if len(result.MarkedAnswers) != len(key) || len(result.Statuses) != len(key) {
		t.Errorf("result maps must cover exactly the key: %d marked, %d statuses, %d key",
			len(result.MarkedAnswers), len(result.Statuses), len(key))
	}
}

func TestEvaluateEmptyKey(t *testing.T) {
	result := Evaluate(MarkedAnswers{}, AnswerKey{}, nil)
	if result.Score != 0 || result.Total != 0 {
		t.Errorf("empty key: score=%d total=%d, want 0 0", result.Score, result.Total)
	}
	if result.Percentage != 0 {
		t.Errorf("empty key percentage = %v, want 0 (no division by zero)", result.Percentage)
	}
}

func TestEvaluatePercentageRounding(t *testing.T) {
	tests := []struct {
		correct int
		total   int
		want    float64
	}{
		{1, 3, 33.33},
		{2, 3, 66.67},
		{1, 7, 14.29},
		{7, 7, 100},
		{0, 5, 0},
	}

	for _, tt := range tests {
		key := make(AnswerKey)
		marked := make(MarkedAnswers)
		for i := 1; i <= tt.total; i++ {
			q := strconv.Itoa(i)
			key[q] = "A"
			if i <= tt.correct {
				marked[q] = "A"
			} else {
				marked[q] = "B"
			}
		}

		result := Evaluate(marked, key, nil)
		if result.Percentage != tt.want {
			t.Errorf("%d/%d: percentage = %v, want %v", tt.correct, tt.total, result.Percentage, tt.want)
		}
		if result.Percentage < 0 || result.Percentage > 100 {
			t.Errorf("%d/%d: percentage %v out of [0,100]", tt.correct, tt.total, result.Percentage)
		}
		want := math.Round(float64(result.Score)/float64(result.Total)*100*100) / 100
		if result.Percentage != want {
			t.Errorf("%d/%d: percentage %v does not equal round(score/total*100, 2) = %v",
				tt.correct, tt.total, result.Percentage, want)
		}
	}
}

func TestEvaluateCarriesProcessingInfo(t *testing.T) {
	info := &ProcessingInfo{DetectionThreshold: 0.65, BubblesDetected: 50, Method: "adaptive_threshold"}
	result := Evaluate(MarkedAnswers{}, AnswerKey{"1": "A"}, info)
	if result.ProcessingInfo != info {
		t.Errorf("processing info not carried through")
	}
}

func TestAnswerKeyQuestionsNumericOrder(t *testing.T) {
	key := AnswerKey{"10": "A", "2": "B", "1": "C", "11": "D", "3": "E"}
	got := key.Questions()
	want := []string{"1", "2", "3", "10", "11"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Questions() = %v, want %v", got, want)
	}
}
