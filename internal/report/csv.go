// Package report renders batch grading results as CSV summaries and
// annotated sheet images. The recognition core has no awareness of this
// package; it consumes finished results only.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gradescan/omr-engine/internal/identity"
	"github.com/gradescan/omr-engine/internal/sheet"
)

// StudentRecord pairs one batch item with the student it belongs to.
type StudentRecord struct {
	Identity identity.Info
	Item     sheet.BatchItem
}

// GradeLetter maps a percentage to a letter grade on the standard scale:
// A+ >= 90, A >= 80, B+ >= 70, B >= 60, C >= 50, D >= 40, F below.
func GradeLetter(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C"
	case percentage >= 40:
		return "D"
	default:
		return "F"
	}
}

// WriteSummaryCSV writes one row per student: identity, score, percentage,
// grade letter, and the error message for sheets that failed to process.
// Failed sheets keep their row so a batch summary always covers every input.
func WriteSummaryCSV(w io.Writer, records []StudentRecord) error {
	cw := csv.NewWriter(w)

	header := []string{"name", "roll_number", "image", "score", "total", "percentage", "grade", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Identity.Name,
			rec.Identity.RollNumber,
			rec.Item.ImagePath,
			"", "", "", "",
			rec.Item.Error,
		}
		if r := rec.Item.Result; r != nil {
			row[3] = fmt.Sprintf("%d", r.Score)
			row[4] = fmt.Sprintf("%d", r.Total)
			row[5] = fmt.Sprintf("%.2f", r.Percentage)
			row[6] = GradeLetter(r.Percentage)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
