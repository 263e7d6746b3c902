// Package vtrace converts an RGBA pixel buffer into a layered SVG document
// of filled color paths. The pipeline is color clustering, hierarchical
// region merge, boundary tracing, staircase removal, path smoothing, and
// cubic-Bézier fitting — see Trace.
package vtrace

import "math"

// Color is an 8-bit RGBA tuple. Equality is componentwise.
type Color struct {
	R, G, B, A uint8
}

// Hex formats the RGB channels as "#RRGGBB".
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	buf := [7]byte{'#'}
	put := func(i int, v uint8) {
		buf[i] = digits[v>>4]
		buf[i+1] = digits[v&0xf]
	}
	put(1, c.R)
	put(3, c.G)
	put(5, c.B)
	return string(buf[:])
}

// ColorSum accumulates channel totals for averaging.
type ColorSum struct {
	R, G, B uint64
	Count   uint64
}

// Add folds one color into the sum.
func (s *ColorSum) Add(c Color) {
	s.R += uint64(c.R)
	s.G += uint64(c.G)
	s.B += uint64(c.B)
	s.Count++
}

// AddSum folds another sum into this one.
func (s *ColorSum) AddSum(o ColorSum) {
	s.R += o.R
	s.G += o.G
	s.B += o.B
	s.Count += o.Count
}

// Average returns the integer-truncated mean color, opaque. An empty sum
// yields opaque black.
func (s ColorSum) Average() Color {
	if s.Count == 0 {
		return Color{0, 0, 0, 255}
	}
	return Color{
		R: uint8(s.R / s.Count),
		G: uint8(s.G / s.Count),
		B: uint8(s.B / s.Count),
		A: 255,
	}
}

// manhattan returns the sum of absolute channel differences between two
// average colors — the distance metric used by the hierarchical merge.
func manhattan(a, b Color) int {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) + d(a.G, b.G) + d(a.B, b.B)
}

// Rect is a half-open integer bounding box [Left,Right) x [Top,Bottom).
type Rect struct {
	Left, Top, Right, Bottom int
}

// Empty reports whether the rect contains no cells.
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// AddXY expands the rect to include pixel cell [x,x+1)x[y,y+1).
func (r Rect) AddXY(x, y int) Rect {
	if r.Empty() {
		return Rect{x, y, x + 1, y + 1}
	}
	if x < r.Left {
		r.Left = x
	}
	if x+1 > r.Right {
		r.Right = x + 1
	}
	if y < r.Top {
		r.Top = y
	}
	if y+1 > r.Bottom {
		r.Bottom = y + 1
	}
	return r
}

// Merge returns the union of two rects.
func Merge(a, b Rect) Rect {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	return Rect{
		Left:   min(a.Left, b.Left),
		Top:    min(a.Top, b.Top),
		Right:  max(a.Right, b.Right),
		Bottom: max(a.Bottom, b.Bottom),
	}
}

// Width and Height are the rect's pixel-cell extents.
func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Point is an integer pixel-corner coordinate.
type Point struct {
	X, Y int
}

// PointF is a floating 2D coordinate used by smoothing and Bézier fitting.
type PointF struct {
	X, Y float64
}

func (p PointF) Add(q PointF) PointF   { return PointF{p.X + q.X, p.Y + q.Y} }
func (p PointF) Sub(q PointF) PointF   { return PointF{p.X - q.X, p.Y - q.Y} }
func (p PointF) Scale(s float64) PointF { return PointF{p.X * s, p.Y * s} }
func (p PointF) Norm() float64         { return math.Hypot(p.X, p.Y) }

// Normalize returns the unit vector, or the zero vector if the norm is
// below the numerical guard threshold.
func (p PointF) Normalize() PointF {
	n := p.Norm()
	if n < 1e-10 {
		return PointF{}
	}
	return PointF{p.X / n, p.Y / n}
}

func (p Point) toF() PointF { return PointF{float64(p.X), float64(p.Y)} }
