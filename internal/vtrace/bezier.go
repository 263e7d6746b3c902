package vtrace

import "math"

// BezierCurve is one cubic segment: P0 and P3 are on the traced boundary,
// P1 and P2 are the fitted control points.
type BezierCurve struct {
	P0, P1, P2, P3 PointF
}

// fitSpline splits a closed, smoothed polyline at its splice points — the
// vertices whose turn angle exceeds SpliceThreshold — and fits each
// resulting open chain with one cubic Bézier, so sharp turns become hard
// joins between curves instead of being smoothed away (spec §4.13).
func fitSpline(points []PointF, cfg Config) []BezierCurve {
	n := len(points)
	if n < 3 {
		return nil
	}

	spliceFlags := detectCorners(points, cfg.SpliceThreshold)
	idxs := []int{0}
	for i := 1; i < n; i++ {
		if spliceFlags[i] {
			idxs = append(idxs, i)
		}
	}

	curves := make([]BezierCurve, 0, len(idxs))
	for k, start := range idxs {
		end := idxs[(k+1)%len(idxs)]
		chain := extractChain(points, start, end)
		if len(chain) < 2 {
			continue
		}
		curves = append(curves, fitBezier(chain))
	}
	return curves
}

func extractChain(points []PointF, start, end int) []PointF {
	n := len(points)
	var chain []PointF
	for i := start; ; i = (i + 1) % n {
		chain = append(chain, points[i])
		if i == end {
			break
		}
	}
	return chain
}

// fitBezier fits a single cubic to an open chain using chord-length
// parameterization and the classic 2x2 normal-equation solve for the two
// control-point offsets along the endpoint tangents (spec §4.13). Curves
// whose system is near-singular, or whose solved offset would retract
// into an S-turn (a negative or wildly oversized handle), fall back to a
// third-of-chord-length handle — the standard degenerate-fit fallback.
func fitBezier(points []PointF) BezierCurve {
	n := len(points)
	p0, p3 := points[0], points[n-1]
	if n == 2 {
		return straightBezier(p0, p3)
	}

	t0 := estimateTangent(points, 0, 1)
	t3 := estimateTangent(points, n-1, -1)
	chordLen := chordLength(points)
	fallback := chordLen / 3

	if t0 == (PointF{}) || t3 == (PointF{}) {
		return BezierCurve{p0, p0.Add(t0.Scale(fallback)), p3.Add(t3.Scale(fallback)), p3}
	}

	u := chordLengthParams(points)

	var c00, c01, c11, x0, x1 float64
	for i, ui := range u {
		b0, b1, b2, b3 := bernstein(ui)
		a0 := t0.Scale(b1)
		a1 := t3.Scale(b2)
		c00 += dot(a0, a0)
		c01 += dot(a0, a1)
		c11 += dot(a1, a1)

		base := p0.Scale(b0 + b1).Add(p3.Scale(b2 + b3))
		tmp := points[i].Sub(base)
		x0 += dot(a0, tmp)
		x1 += dot(a1, tmp)
	}

	det := c00*c11 - c01*c01
	alphaL, alphaR := fallback, fallback
	if math.Abs(det) > 1e-10 {
		al := (c11*x0 - c01*x1) / det
		ar := (c00*x1 - c01*x0) / det
		if al > 0 && al < 10*chordLen {
			alphaL = al
		}
		if ar > 0 && ar < 10*chordLen {
			alphaR = ar
		}
	}

	return BezierCurve{
		P0: p0,
		P1: p0.Add(t0.Scale(alphaL)),
		P2: p3.Add(t3.Scale(alphaR)),
		P3: p3,
	}
}

func straightBezier(p0, p3 PointF) BezierCurve {
	third := p3.Sub(p0).Scale(1.0 / 3)
	return BezierCurve{P0: p0, P1: p0.Add(third), P2: p3.Sub(third), P3: p3}
}

// estimateTangent returns the unit vector from points[idx] toward its
// neighbor in direction dir (+1 or -1), used as the fixed tangent
// direction at a chain endpoint.
func estimateTangent(points []PointF, idx, dir int) PointF {
	j := idx + dir
	if j < 0 || j >= len(points) {
		return PointF{}
	}
	return points[j].Sub(points[idx]).Normalize()
}

func chordLength(points []PointF) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i].Sub(points[i-1]).Norm()
	}
	return total
}

// chordLengthParams assigns each point a parameter in [0,1] proportional
// to its cumulative distance along the chain.
func chordLengthParams(points []PointF) []float64 {
	u := make([]float64, len(points))
	total := chordLength(points)
	if total == 0 {
		return u
	}
	cum := 0.0
	for i := 1; i < len(points); i++ {
		cum += points[i].Sub(points[i-1]).Norm()
		u[i] = cum / total
	}
	return u
}

func bernstein(u float64) (b0, b1, b2, b3 float64) {
	mu := 1 - u
	b0 = mu * mu * mu
	b1 = 3 * mu * mu * u
	b2 = 3 * mu * u * u
	b3 = u * u * u
	return
}

func dot(a, b PointF) float64 { return a.X*b.X + a.Y*b.Y }
