package vtrace

import "math"

// fourPointWeight is the interior/exterior tap weight of the Dyn-Levin-
// Gregory 4-point subdivision stencil.
const fourPointWeight = 1.0 / 16.0

// smoothPath refines a closed polyline with corner-preserving 4-point
// subdivision (spec §4.12): each pass doubles the vertex count along
// segments still longer than LengthThreshold, using the standard 4-tap
// stencil away from corners and a plain midpoint across them so a
// detected corner is never rounded off.
func smoothPath(points []PointF, cfg Config, passes int) []PointF {
	if len(points) < 4 {
		return points
	}
	cur := points
	corners := detectCorners(cur, cfg.CornerThreshold)
	for p := 0; p < passes; p++ {
		next, nextCorners := subdivideOnce(cur, corners, cfg.LengthThreshold)
		if len(next) == len(cur) {
			break
		}
		cur, corners = next, nextCorners
	}
	return cur
}

// detectCorners marks each vertex of a closed polyline whose turn angle
// (the angle between its incoming and outgoing direction) exceeds
// thresholdDeg, the way a sharp corner's interior angle stands out from
// the gentle turns along a smooth curve.
func detectCorners(points []PointF, thresholdDeg float64) []bool {
	n := len(points)
	corners := make([]bool, n)
	for i := 0; i < n; i++ {
		prev := points[(i-1+n)%n]
		cur := points[i]
		next := points[(i+1)%n]
		dirIn := cur.Sub(prev).Normalize()
		dirOut := next.Sub(cur).Normalize()
		corners[i] = turnAngleDeg(dirIn, dirOut) > thresholdDeg
	}
	return corners
}

func turnAngleDeg(dirIn, dirOut PointF) float64 {
	dot := dirIn.X*dirOut.X + dirIn.Y*dirOut.Y
	if dot > 1 {
		dot = 1
	}
	if dot < -1 {
		dot = -1
	}
	return math.Acos(dot) * 180 / math.Pi
}

func subdivideOnce(points []PointF, corners []bool, lengthThreshold float64) ([]PointF, []bool) {
	n := len(points)
	out := make([]PointF, 0, n*2)
	outCorners := make([]bool, 0, n*2)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		out = append(out, points[i])
		outCorners = append(outCorners, corners[i])

		if points[j].Sub(points[i]).Norm() <= lengthThreshold {
			continue
		}

		var mid PointF
		if corners[i] || corners[j] {
			mid = points[i].Add(points[j]).Scale(0.5)
		} else {
			pm1 := points[(i-1+n)%n]
			p2 := points[(j+1)%n]
			mid = fourPointInsert(pm1, points[i], points[j], p2)
		}
		out = append(out, mid)
		outCorners = append(outCorners, false)
	}
	return out, outCorners
}

func fourPointInsert(pm1, p0, p1, p2 PointF) PointF {
	inner := p0.Add(p1).Scale(0.5 + fourPointWeight)
	outer := pm1.Add(p2).Scale(fourPointWeight)
	return inner.Sub(outer)
}
