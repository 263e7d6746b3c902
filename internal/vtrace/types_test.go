package vtrace

import "testing"

func TestColorHex(t *testing.T) {
	c := Color{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}
	if got := c.Hex(); got != "#1a2b3c" {
		t.Errorf("Hex() = %q, want #1a2b3c", got)
	}
}

func TestColorSumAverage(t *testing.T) {
	var s ColorSum
	if got := s.Average(); got != (Color{0, 0, 0, 255}) {
		t.Errorf("empty sum average = %+v, want opaque black", got)
	}

	s.Add(Color{R: 10, G: 20, B: 30, A: 255})
	s.Add(Color{R: 20, G: 40, B: 60, A: 255})
	got := s.Average()
	want := Color{R: 15, G: 30, B: 45, A: 255}
	if got != want {
		t.Errorf("Average() = %+v, want %+v", got, want)
	}
}

func TestManhattan(t *testing.T) {
	a := Color{R: 10, G: 10, B: 10}
	b := Color{R: 20, G: 5, B: 10}
	if got := manhattan(a, b); got != 15 {
		t.Errorf("manhattan() = %d, want 15", got)
	}
}

func TestRectAddXYAndMerge(t *testing.T) {
	var r Rect
	if !r.Empty() {
		t.Fatal("zero Rect should be empty")
	}
	r = r.AddXY(2, 3)
	r = r.AddXY(5, 1)
	if r.Left != 2 || r.Right != 6 || r.Top != 1 || r.Bottom != 4 {
		t.Errorf("AddXY produced %+v", r)
	}
	if r.Width() != 4 || r.Height() != 3 {
		t.Errorf("Width/Height = %d/%d, want 4/3", r.Width(), r.Height())
	}

	other := Rect{Left: 10, Top: 10, Right: 12, Bottom: 12}
	merged := Merge(r, other)
	if merged.Left != 2 || merged.Top != 1 || merged.Right != 12 || merged.Bottom != 12 {
		t.Errorf("Merge produced %+v", merged)
	}
}

func TestPointFNormalize(t *testing.T) {
	p := PointF{X: 3, Y: 4}
	n := p.Normalize()
	if n.X != 0.6 || n.Y != 0.8 {
		t.Errorf("Normalize() = %+v, want {0.6 0.8}", n)
	}

	zero := PointF{}.Normalize()
	if zero != (PointF{}) {
		t.Errorf("Normalize() of zero vector = %+v, want zero", zero)
	}
}
