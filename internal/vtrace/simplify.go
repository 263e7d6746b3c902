package vtrace

import "math"

// decimateTolerance is the Heron's-formula triangle-area budget a run of
// removed vertices may spend before a point must be kept (spec §4.11).
const decimateTolerance = 1.0

// removeStaircase collapses runs of alternating unit horizontal/vertical
// steps — the pixel-grid artifact of a near-45-degree edge — into a single
// straight chord spanning the run (spec §4.10). A run needs at least three
// alternating segments before it's treated as a staircase rather than a
// real corner.
func removeStaircase(path []Point) []Point {
	n := len(path)
	if n < 4 {
		return path
	}
	out := make([]Point, 0, n)
	out = append(out, path[0])

	i := 0
	for i < n-1 {
		axis, unit := stepAxis(path[i], path[i+1])
		if !unit {
			out = append(out, path[i+1])
			i++
			continue
		}
		expect := !axis
		runEnd := i + 1
		for runEnd+1 < n {
			ax, u := stepAxis(path[runEnd], path[runEnd+1])
			if !u || ax != expect {
				break
			}
			expect = !ax
			runEnd++
		}
		if runEnd-i >= 3 {
			out = append(out, path[runEnd])
			i = runEnd
		} else {
			out = append(out, path[i+1])
			i++
		}
	}
	return out
}

// stepAxis reports whether a->b is a unit horizontal step (true) or unit
// vertical step (false), and whether it's a unit axis-aligned step at all.
func stepAxis(a, b Point) (horizontal, unit bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dy == 0 && (dx == 1 || dx == -1):
		return true, true
	case dx == 0 && (dy == 1 || dy == -1):
		return false, true
	default:
		return false, false
	}
}

// decimate repeatedly runs a penalty-bounded simplification pass over the
// path until a pass removes nothing or maxIterations is reached (spec
// §4.11). Each removed vertex spends its triangle-area penalty against a
// running budget that resets whenever a vertex is kept.
func decimate(points []PointF, maxIterations int) []PointF {
	cur := points
	for iter := 0; iter < maxIterations; iter++ {
		next, changed := decimationPass(cur)
		cur = next
		if !changed {
			break
		}
	}
	return cur
}

func decimationPass(points []PointF) ([]PointF, bool) {
	if len(points) < 3 {
		return points, false
	}
	out := make([]PointF, 0, len(points))
	out = append(out, points[0])
	changed := false
	penalty := 0.0

	for i := 1; i < len(points)-1; i++ {
		prev := out[len(out)-1]
		cur := points[i]
		next := points[i+1]
		area := triangleArea(prev, cur, next)
		if penalty+area <= decimateTolerance {
			penalty += area
			changed = true
			continue
		}
		out = append(out, cur)
		penalty = 0
	}
	out = append(out, points[len(points)-1])
	return out, changed
}

// triangleArea computes the area of triangle abc via Heron's formula from
// its side lengths, clamping the radicand at zero to absorb floating-point
// error on near-degenerate (collinear) triangles.
func triangleArea(a, b, c PointF) float64 {
	ab := b.Sub(a).Norm()
	bc := c.Sub(b).Norm()
	ca := a.Sub(c).Norm()
	s := (ab + bc + ca) / 2
	v := s * (s - ab) * (s - bc) * (s - ca)
	if v < 0 {
		v = 0
	}
	return math.Sqrt(v)
}
