package detection

import "sort"

// Row is an ordered, left-to-right sequence of bubbles representing one
// question's option set.
type Row struct {
	// Bubbles are the row members, sorted by horizontal position.
	Bubbles []Bubble

	// RefY is the vertical reference coordinate the row was clustered
	// around: the Y of its first (topmost-seen) member.
	RefY int
}

// Valid reports whether the row can be used for answer extraction, i.e. its
// bubble count equals the configured number of options per question. Rows
// failing this are degenerate and yield "not attempted" for safety.
func (r Row) Valid(optionsPerQuestion int) bool {
	return len(r.Bubbles) == optionsPerQuestion
}

// GroupRows clusters bubbles into question rows.
//
// Bubbles are sorted by vertical position, then swept once: each bubble joins
// the current row while its Y coordinate differs from the row's reference Y
// by less than tolerance; otherwise the current row is closed (sorted
// left-to-right) and the bubble starts a new row with its own Y as the new
// reference.
//
// The sweep has no backtracking and the reference is fixed at the first
// member, so a slowly drifting skew can merge or split rows; this is an
// accepted approximation. Row position in the returned slice (1-based) is
// treated as the question number by the extractor.
//
// A non-positive tolerance falls back to the default of 30 pixels.
func GroupRows(bubbles []Bubble, tolerance int) []Row {
	if len(bubbles) == 0 {
		return nil
	}
	if tolerance <= 0 {
		tolerance = 30
	}

	sorted := make([]Bubble, len(bubbles))
	copy(sorted, bubbles)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Bounds.Min.Y != sorted[j].Bounds.Min.Y {
			return sorted[i].Bounds.Min.Y < sorted[j].Bounds.Min.Y
		}
		return sorted[i].Bounds.Min.X < sorted[j].Bounds.Min.X
	})

	var rows []Row
	current := Row{Bubbles: []Bubble{sorted[0]}, RefY: sorted[0].Bounds.Min.Y}

	for _, b := range sorted[1:] {
		if abs(b.Bounds.Min.Y-current.RefY) < tolerance {
			current.Bubbles = append(current.Bubbles, b)
			continue
		}
		rows = append(rows, closeRow(current))
		current = Row{Bubbles: []Bubble{b}, RefY: b.Bounds.Min.Y}
	}
	rows = append(rows, closeRow(current))

	return rows
}

// closeRow finalizes a row by ordering its members left to right.
func closeRow(r Row) Row {
	sort.SliceStable(r.Bubbles, func(i, j int) bool {
		return r.Bubbles[i].Bounds.Min.X < r.Bubbles[j].Bounds.Min.X
	})
	return r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
