package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/gradescan/omr-engine/internal/grading"
	"github.com/gradescan/omr-engine/internal/identity"
	"github.com/gradescan/omr-engine/internal/sheet"
)

func TestGradeLetter(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{80, "A"},
		{70, "B+"},
		{60, "B"},
		{50, "C"},
		{40, "D"},
		{39.99, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		if got := GradeLetter(tt.percentage); got != tt.want {
			t.Errorf("GradeLetter(%v) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	records := []StudentRecord{
		{
			Identity: identity.Info{Name: "Ada Lovelace", RollNumber: "R-101"},
			Item: sheet.BatchItem{
				ImagePath: "sheets/ada.png",
				Result:    &grading.Result{Score: 9, Total: 10, Percentage: 90},
			},
		},
		{
			Identity: identity.Info{Name: identity.Unknown, RollNumber: identity.Unknown},
			Item: sheet.BatchItem{
				ImagePath: "sheets/blurry.png",
				Error:     "image load failed",
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteSummaryCSV(&buf, records); err != nil {
		t.Fatalf("WriteSummaryCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2 records", len(rows))
	}

	wantHeader := []string{"name", "roll_number", "image", "score", "total", "percentage", "grade", "error"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	graded := rows[1]
	if graded[0] != "Ada Lovelace" || graded[3] != "9" || graded[5] != "90.00" || graded[6] != "A+" {
		t.Errorf("graded row = %v", graded)
	}
	if graded[7] != "" {
		t.Errorf("graded row should have no error, got %q", graded[7])
	}

	failed := rows[2]
	if failed[7] != "image load failed" {
		t.Errorf("failed row error = %q", failed[7])
	}
	if failed[3] != "" || failed[6] != "" {
		t.Errorf("failed row should have empty score and grade columns, got %v", failed)
	}
}

func TestWriteSummaryCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummaryCSV(&buf, nil); err != nil {
		t.Fatalf("WriteSummaryCSV failed: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("empty batch should still write the header, got %d rows", len(rows))
	}
}
