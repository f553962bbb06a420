package core

import "testing"

func TestRectIntersects(t *testing.T) {
	// Track-shaped rectangles: same x-span, different vertical extents.
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "bar covers fish",
			a:        NewRect(128, 400, 54, 108),
			b:        NewRect(128, 420, 54, 40),
			expected: true,
		},
		{
			name:     "fish above bar",
			a:        NewRect(128, 400, 54, 108),
			b:        NewRect(128, 300, 54, 40),
			expected: false,
		},
		{
			name:     "fish bottom touches bar top",
			a:        NewRect(128, 400, 54, 108),
			b:        NewRect(128, 360, 54, 40),
			expected: false,
		},
		{
			name:     "one shared row at bar top",
			a:        NewRect(128, 400, 54, 108),
			b:        NewRect(128, 361, 54, 40),
			expected: true,
		},
		{
			name:     "one shared row at bar bottom",
			a:        NewRect(128, 400, 54, 108),
			b:        NewRect(128, 507, 54, 40),
			expected: true,
		},
		{
			name:     "fish top touches bar bottom",
			a:        NewRect(128, 400, 54, 108),
			b:        NewRect(128, 508, 54, 40),
			expected: false,
		},
		{
			name:     "side by side",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "zero height never collides",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 5, 10, 0),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside top", 15, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{55.5, 0, 100, 55.5},
		{-0.4, 0, 100, 0},
		{102.0, 0, 100, 100},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
