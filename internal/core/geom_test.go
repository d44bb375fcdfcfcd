package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestVecLerp(t *testing.T) {
	from := Vec{X: 100, Y: 200}
	to := Vec{X: 200, Y: 100}

	got := from.Lerp(to, 0.3)
	if math.Abs(got.X-130) > 1e-9 || math.Abs(got.Y-170) > 1e-9 {
		t.Errorf("Lerp() = %+v, expected {130 170}", got)
	}

	if from.Lerp(to, 0) != from {
		t.Error("Lerp with t=0 should not move")
	}
}

func TestVecDist(t *testing.T) {
	a := Vec{X: 0, Y: 0}
	b := Vec{X: 3, Y: 4}
	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist() = %f, expected 5", d)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should keep in-range values")
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Error("Clamp should raise values below min")
	}
	if ClampF(12.5, 0, 10) != 10 {
		t.Error("ClampF should lower values above max")
	}
}
