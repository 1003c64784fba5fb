package imaging

import (
	"image"
	"testing"
)

func TestBinaryMapAtOutOfBounds(t *testing.T) {
	m := NewBinaryMap(4, 4)
	m.Set(1, 1, true)

	if !m.At(1, 1) {
		t.Errorf("expected (1,1) to be foreground")
	}
	for _, p := range []struct{ x, y int }{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if m.At(p.x, p.y) {
			t.Errorf("expected out-of-bounds (%d,%d) to read as background", p.x, p.y)
		}
	}

	// Out-of-bounds Set must be a no-op, not a panic.
	m.Set(-1, 0, true)
	m.Set(10, 10, true)
}

func TestFillRatio(t *testing.T) {
	m := NewBinaryMap(10, 10)
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			m.Set(x, y, true)
		}
	}

	tests := []struct {
		name string
		rect image.Rectangle
		want float64
	}{
		{"full map half filled", image.Rect(0, 0, 10, 10), 0.5},
		{"filled half only", image.Rect(0, 0, 10, 5), 1.0},
		{"empty half only", image.Rect(0, 5, 10, 10), 0.0},
		{"clipped outside bounds", image.Rect(5, 0, 20, 5), 1.0},
		{"fully outside bounds", image.Rect(20, 20, 30, 30), 0.0},
		{"zero-size rect", image.Rect(3, 3, 3, 3), 0.0},
	}

	for _, tt := range tests {
		if got := m.FillRatio(tt.rect); got != tt.want {
			t.Errorf("%s: FillRatio(%v) = %v, want %v", tt.name, tt.rect, got, tt.want)
		}
	}
}
