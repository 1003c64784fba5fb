package grading

import (
	"strconv"

	"github.com/gradescan/omr-engine/internal/detection"
	"github.com/gradescan/omr-engine/internal/imaging"
)

// OptionLetter returns the letter assigned to a bubble by its left-to-right
// position in a row: 0 -> "A", 1 -> "B", and so on.
func OptionLetter(index int) string {
	return string(rune('A' + index))
}

// ExtractAnswers decides, for every row, which option (if any) is filled.
//
// Row position (1-based) is treated as the question number. For each valid
// row the binary map is re-sampled inside every bubble's bounding box to
// compute its fill ratio; the bubble with the maximum ratio is selected when
// that maximum exceeds threshold. Ties at the maximum pick the first bubble
// in left-to-right order.
//
// Degenerate rows — bubble count different from optionsPerQuestion — are
// skipped entirely: the corresponding question gets no entry, which the
// evaluator later reads as not attempted. Skipping rather than failing keeps
// a noisy row from aborting the rest of the sheet.
func ExtractAnswers(bin *imaging.BinaryMap, rows []detection.Row, optionsPerQuestion int, threshold float64) MarkedAnswers {
	marked := make(MarkedAnswers)

	for i, row := range rows {
		question := strconv.Itoa(i + 1)

		if !row.Valid(optionsPerQuestion) {
			continue
		}

		best := -1
		bestRatio := 0.0
		for j, b := range row.Bubbles {
			ratio := bin.FillRatio(b.Bounds)
			if best == -1 || ratio > bestRatio {
				best = j
				bestRatio = ratio
			}
		}

		if bestRatio > threshold {
			marked[question] = OptionLetter(best)
		}
	}

	return marked
}
