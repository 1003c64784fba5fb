package detection

import (
	"image"
	"testing"
)

// bubbleAt builds a bubble with a 10x10 bounding box at (x, y).
func bubbleAt(x, y int) Bubble {
	return Bubble{
		Bounds: image.Rect(x, y, x+10, y+10),
		Area:   100,
		Center: Point{X: x + 5, Y: y + 5},
	}
}

func TestGroupRowsBasic(t *testing.T) {
	// Two rows of three bubbles each, given out of order.
	bubbles := []Bubble{
		bubbleAt(40, 102), bubbleAt(0, 100), bubbleAt(80, 104),
		bubbleAt(80, 200), bubbleAt(0, 203), bubbleAt(40, 201),
	}

	rows := GroupRows(bubbles, 30)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	for i, row := range rows {
		if len(row.Bubbles) != 3 {
			t.Fatalf("row %d has %d bubbles, want 3", i, len(row.Bubbles))
		}
		for j := 1; j < len(row.Bubbles); j++ {
			if row.Bubbles[j].Bounds.Min.X < row.Bubbles[j-1].Bounds.Min.X {
				t.Errorf("row %d not sorted left to right", i)
			}
		}
	}
	if rows[0].RefY != 100 {
		t.Errorf("row 0 reference Y = %d, want 100", rows[0].RefY)
	}
	if rows[1].RefY != 200 {
		t.Errorf("row 1 reference Y = %d, want 200", rows[1].RefY)
	}
}

func TestGroupRowsToleranceBoundary(t *testing.T) {
	// The contract is strict less-than: a bubble exactly `tolerance` below
	// the reference starts a new row; one pixel closer joins the row.
	tests := []struct {
		name     string
		deltaY   int
		wantRows int
	}{
		{"well within tolerance", 10, 1},
		{"one below tolerance", 29, 1},
		{"exactly tolerance", 30, 2},
		{"beyond tolerance", 45, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bubbles := []Bubble{bubbleAt(0, 100), bubbleAt(40, 100+tt.deltaY)}
			rows := GroupRows(bubbles, 30)
			if len(rows) != tt.wantRows {
				t.Errorf("deltaY=%d: got %d rows, want %d", tt.deltaY, len(rows), tt.wantRows)
			}
		})
	}
}

func TestGroupRowsReferenceIsFirstMember(t *testing.T) {
	// The reference Y is fixed at the row's first member: bubbles drifting
	// within tolerance of the *reference* stay in the row even as members
	// drift apart from each other.
	bubbles := []Bubble{
		bubbleAt(0, 100), bubbleAt(20, 120), bubbleAt(40, 129),
		// 131 is 31 from the reference even though only 2 from its neighbor.
		bubbleAt(60, 131),
	}

	rows := GroupRows(bubbles, 30)
	if len(rows) != 2 {
		t.Fatalf("expected drift past the reference to split the row, got %d rows", len(rows))
	}
	if len(rows[0].Bubbles) != 3 || len(rows[1].Bubbles) != 1 {
		t.Errorf("unexpected split: %d and %d bubbles", len(rows[0].Bubbles), len(rows[1].Bubbles))
	}
}

func TestGroupRowsEmpty(t *testing.T) {
	if rows := GroupRows(nil, 30); rows != nil {
		t.Errorf("expected nil rows for no bubbles, got %v", rows)
	}
}

func TestRowValid(t *testing.T) {
	row := Row{Bubbles: []Bubble{bubbleAt(0, 0), bubbleAt(20, 0), bubbleAt(40, 0), bubbleAt(60, 0)}}
	if row.Valid(5) {
		t.Errorf("4-bubble row must be degenerate when 5 options are expected")
	}
	if !row.Valid(4) {
		t.Errorf("4-bubble row must be valid when 4 options are expected")
	}
}
