package vtrace

// maxBoundarySteps bounds a single walk so a malformed mask can never loop
// forever (spec §4.9).
const maxBoundarySteps = 10_000_000

type boundaryDir int

const (
	dirUp boundaryDir = iota
	dirRight
	dirDown
	dirLeft
)

var boundaryDelta = map[boundaryDir]Point{
	dirUp:    {X: 0, Y: -1},
	dirRight: {X: 1, Y: 0},
	dirDown:  {X: 0, Y: 1},
	dirLeft:  {X: -1, Y: 0},
}

// boundaryMove is the marching-squares lookup for crack-following a
// boundary on the pixel-corner lattice: given which of the four pixels
// touching a corner are foreground (a=upper-left, b=upper-right,
// c=lower-left, d=lower-right), it returns the direction to step next.
// Cases 6 and 9 are saddle points (diagonal pixels set, the other diagonal
// clear) with no unambiguous direction; they're resolved using the
// direction the walk arrived from, which keeps paths from crossing
// themselves at those corners.
func boundaryMove(a, b, c, d bool, from boundaryDir) (boundaryDir, bool) {
	bits := 0
	if a {
		bits |= 1
	}
	if b {
		bits |= 2
	}
	if c {
		bits |= 4
	}
	if d {
		bits |= 8
	}
	switch bits {
	case 1, 5, 13:
		return dirUp, true
	case 2, 3, 7:
		return dirRight, true
	case 4, 12, 14:
		return dirLeft, true
	case 8, 10, 11:
		return dirDown, true
	case 6:
		if from == dirUp {
			return dirLeft, true
		}
		return dirRight, true
	case 9:
		if from == dirRight {
			return dirUp, true
		}
		return dirDown, true
	default: // 0 or 15: no boundary here
		return 0, false
	}
}

// findBoundaryStart returns the top-left corner of the first foreground
// pixel in scan order. That corner always has both its upper neighbors and
// its left neighbor unset, so it's always a valid, unambiguous walk start.
func findBoundaryStart(img *BinaryImage) (Point, bool) {
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if img.Get(x, y) {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// walkPath traces the closed boundary loop containing start, returning the
// corner-lattice vertices in order. The loop produced by boundaryMove winds
// counter-clockwise around foreground pixels; clockwise reverses it so
// callers can request either winding directly (spec §4.8: outer contours
// clockwise, hole contours counter-clockwise).
func walkPath(img *BinaryImage, start Point, clockwise bool) []Point {
	cx, cy := start.X, start.Y
	path := []Point{{X: cx, Y: cy}}
	from := dirUp

	for steps := 0; steps < maxBoundarySteps; steps++ {
		a := img.Get(cx-1, cy-1)
		b := img.Get(cx, cy-1)
		c := img.Get(cx-1, cy)
		d := img.Get(cx, cy)

		next, ok := boundaryMove(a, b, c, d, from)
		if !ok {
			break
		}
		delta := boundaryDelta[next]
		cx += delta.X
		cy += delta.Y
		from = next

		if cx == start.X && cy == start.Y {
			break
		}
		path = append(path, Point{X: cx, Y: cy})
	}

	if !clockwise {
		return path
	}
	reversed := make([]Point, len(path))
	for i, p := range path {
		reversed[len(path)-1-i] = p
	}
	return reversed
}
