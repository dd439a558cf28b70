package core

import "testing"

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        Rect{0, 0, 10, 10},
			b:        Rect{5, 5, 10, 10},
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        Rect{0, 0, 10, 10},
			b:        Rect{15, 0, 10, 10},
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        Rect{0, 0, 10, 10},
			b:        Rect{0, 15, 10, 10},
			expected: false,
		},
		{
			name:     "touching horizontal edge",
			a:        Rect{0, 0, 10, 10},
			b:        Rect{10, 0, 10, 10},
			expected: true,
		},
		{
			name:     "touching vertical edge",
			a:        Rect{0, 0, 10, 10},
			b:        Rect{0, 10, 10, 10},
			expected: true,
		},
		{
			name:     "single shared corner",
			a:        Rect{0, 0, 10, 10},
			b:        Rect{10, 10, 10, 10},
			expected: true,
		},
		{
			name:     "gap just past corner",
			a:        Rect{0, 0, 10, 10},
			b:        Rect{10.001, 10.001, 10, 10},
			expected: false,
		},
		{
			name:     "contained rect",
			a:        Rect{0, 0, 20, 20},
			b:        Rect{5, 5, 5, 5},
			expected: true,
		},
		{
			name:     "centred constructor",
			a:        RectAround(50, 50, 20, 20),
			b:        RectAround(70, 70, 20, 20),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := RectAround(15, 17.5, 20, 15)

	if r.X != 5 || r.Y != 10 {
		t.Errorf("RectAround origin = (%v, %v), expected (5, 10)", r.X, r.Y)
	}
	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestCircleHitsSquare(t *testing.T) {
	tests := []struct {
		name         string
		cx, cy       float64
		sx, sy, size float64
		expected     bool
	}{
		{"same centre small", 100, 100, 100, 100, 1, true},
		{"same centre large", 100, 100, 100, 100, 84, true},
		{"inside square", 110, 95, 100, 100, 40, true},
		{"on edge", 120, 100, 100, 100, 40, true},
		{"just outside edge", 120.5, 100, 100, 100, 40, true},
		{"beyond half size from edge", 141, 100, 100, 100, 40, false},
		{"diagonal near corner", 125, 125, 100, 100, 40, true},
		{"diagonal far from corner", 135, 135, 100, 100, 40, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CircleHitsSquare(tc.cx, tc.cy, tc.sx, tc.sy, tc.size)
			if result != tc.expected {
				t.Errorf("CircleHitsSquare() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestCircleHitsSquareCoincidentCentres(t *testing.T) {
	for _, size := range []float64{0.01, 1, 16, 36, 84, 1000} {
		if !CircleHitsSquare(-3, 7, -3, 7, size) {
			t.Errorf("CircleHitsSquare with equal centres and size %v = false, expected true", size)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
