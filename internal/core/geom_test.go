package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(10, 10, 20, 20),
			b:        NewBox(20, 20, 20, 20),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(10, 10, 20, 20),
			b:        NewBox(50, 10, 20, 20),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(10, 10, 20, 20),
			b:        NewBox(10, 50, 20, 20),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(10, 10, 20, 20),
			b:        NewBox(30, 10, 20, 20),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(50, 50, 100, 100),
			b:        NewBox(50, 50, 10, 10),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.9, 0, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := tc.a.Intersects(tc.b); result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			if result := tc.b.Intersects(tc.a); result != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(100, 50, 32, 48)

	if b.Left() != 84 || b.Right() != 116 {
		t.Errorf("horizontal edges = (%v, %v), expected (84, 116)", b.Left(), b.Right())
	}
	if b.Top() != 26 || b.Bottom() != 74 {
		t.Errorf("vertical edges = (%v, %v), expected (26, 74)", b.Top(), b.Bottom())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.lo, tc.hi); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampFloat(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 16.0, 304.0, 16.0},
		{400.0, 16.0, 304.0, 304.0},
		{160.25, 16.0, 304.0, 160.25},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.lo, tc.hi); result != tc.expected {
			t.Errorf("Clamp(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestFrameDeltaMs(t *testing.T) {
	if d := (RuntimeConfig{TickRate: 50}).FrameDeltaMs(); d != 20 {
		t.Errorf("FrameDeltaMs at 50fps = %v, expected 20", d)
	}
	if d := (RuntimeConfig{}).FrameDeltaMs(); d != 1000.0/60.0 {
		t.Errorf("FrameDeltaMs with zero rate should fall back to 60fps, got %v", d)
	}
}
