package vtrace

import (
	"math"
	"testing"
)

func TestRemoveStaircaseCollapsesAlternatingRun(t *testing.T) {
	// A run of 3+ alternating unit right/down steps approximating a
	// diagonal should collapse to its endpoints.
	path := []Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}, {3, 2}}
	got := removeStaircase(path)
	want := []Point{{0, 0}, {3, 2}}
	if len(got) != len(want) || got[0] != want[0] || got[len(got)-1] != want[len(want)-1] {
		t.Errorf("removeStaircase() = %v, want endpoints %v", got, want)
	}
}

func TestRemoveStaircaseKeepsRealCorner(t *testing.T) {
	// A single turn (not a staircase run of 3+) must survive untouched.
	path := []Point{{0, 0}, {2, 0}, {2, 2}}
	got := removeStaircase(path)
	if len(got) != 3 {
		t.Errorf("removeStaircase() = %v, a lone corner should not be collapsed", got)
	}
}

func TestTriangleAreaOfCollinearPointsIsZero(t *testing.T) {
	a := PointF{0, 0}
	b := PointF{1, 0}
	c := PointF{2, 0}
	if got := triangleArea(a, b, c); got != 0 {
		t.Errorf("triangleArea(collinear) = %v, want 0", got)
	}
}

func TestTriangleAreaRightTriangle(t *testing.T) {
	a := PointF{0, 0}
	b := PointF{4, 0}
	c := PointF{0, 3}
	got := triangleArea(a, b, c)
	if math.Abs(got-6) > 1e-9 {
		t.Errorf("triangleArea() = %v, want 6", got)
	}
}

func TestDecimateRemovesNearlyCollinearPoints(t *testing.T) {
	points := []PointF{{0, 0}, {1, 0.01}, {2, 0}, {3, 0.01}, {4, 0}, {5, 0}}
	got := decimate(points, 10)
	if len(got) >= len(points) {
		t.Errorf("decimate() should remove points with negligible deviation, got %d of %d", len(got), len(points))
	}
	if got[0] != points[0] || got[len(got)-1] != points[len(points)-1] {
		t.Error("decimate() must preserve the chain's endpoints")
	}
}

func TestDecimateKeepsSharpDeviation(t *testing.T) {
	points := []PointF{{0, 0}, {10, 50}, {20, 0}}
	got := decimate(points, 10)
	if len(got) != 3 {
		t.Errorf("decimate() removed a sharply deviating point: %v", got)
	}
}
