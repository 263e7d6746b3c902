package vtrace

import "testing"

func TestFindBoundaryStartScansRowMajor(t *testing.T) {
	img := newBinaryImage(3, 3)
	img.Set(2, 1, true)
	img.Set(0, 2, true)
	start, ok := findBoundaryStart(img)
	if !ok || start != (Point{X: 2, Y: 1}) {
		t.Errorf("findBoundaryStart() = %+v, ok=%v, want {2 1}/true", start, ok)
	}
}

func TestFindBoundaryStartEmptyImage(t *testing.T) {
	img := newBinaryImage(2, 2)
	if _, ok := findBoundaryStart(img); ok {
		t.Error("findBoundaryStart() on an empty image should report not found")
	}
}

func TestWalkPathSinglePixelIsAFourCornerLoop(t *testing.T) {
	img := newBinaryImage(1, 1)
	img.Set(0, 0, true)
	start, ok := findBoundaryStart(img)
	if !ok {
		t.Fatal("expected a boundary start")
	}

	cw := walkPath(img, start, true)
	ccw := walkPath(img, start, false)

	if len(cw) != 4 || len(ccw) != 4 {
		t.Fatalf("walkPath lengths = %d/%d, want 4/4", len(cw), len(ccw))
	}
	for i := range cw {
		if cw[i] != ccw[len(ccw)-1-i] {
			t.Fatalf("clockwise path should be the exact reverse of counter-clockwise: %v vs %v", cw, ccw)
		}
	}

	seen := map[Point]bool{}
	for _, p := range cw {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Errorf("corner %+v outside the single pixel's corner lattice", p)
		}
		seen[p] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct corners, got %d", len(seen))
	}

	for i := range cw {
		next := cw[(i+1)%len(cw)]
		dx, dy := next.X-cw[i].X, next.Y-cw[i].Y
		if dx*dx+dy*dy != 1 {
			t.Errorf("segment %+v -> %+v is not a unit step", cw[i], next)
		}
	}
}
