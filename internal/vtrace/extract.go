package vtrace

// Subpath is one outer contour and its nested holes, all in image-pixel
// corner coordinates (spec §4.8). A cluster can produce more than one
// Subpath when cutout-mode claiming fragments it into disjoint pieces.
type Subpath struct {
	Outer []Point
	Holes [][]Point
}

// CompoundPath is everything extracted for a single emitted cluster: its
// fill color and every disjoint piece of its region.
type CompoundPath struct {
	Color    Color
	Subpaths []Subpath
}

// extractPaths turns each emitted cluster's reassigned pixel set into a
// CompoundPath, in emission order (spec §4.8).
func extractPaths(pixelsOf map[int][]int, saved map[int]SavedMeta, emitted []int, width int) []CompoundPath {
	var out []CompoundPath
	for _, c := range emitted {
		pixels := pixelsOf[c]
		if len(pixels) == 0 {
			continue
		}
		rect := tightRect(pixels, width)
		mask := buildMask(pixels, width, rect)

		cp := CompoundPath{Color: saved[c].Color}
		for _, comp := range mask.ToClusters() {
			start := firstScanPoint(comp.Points)
			outer := translate(walkPath(mask, start, true), rect.Left, rect.Top)
			cp.Subpaths = append(cp.Subpaths, Subpath{Outer: outer})
		}

		assignHoles(&cp, mask, rect)
		out = append(out, cp)
	}
	return out
}

func tightRect(pixels []int, width int) Rect {
	var r Rect
	for _, p := range pixels {
		r = r.AddXY(p%width, p/width)
	}
	return r
}

func buildMask(pixels []int, width int, rect Rect) *BinaryImage {
	mask := newBinaryImage(rect.Width(), rect.Height())
	for _, p := range pixels {
		x, y := p%width, p/width
		mask.Set(x-rect.Left, y-rect.Top, true)
	}
	return mask
}

func firstScanPoint(points []Point) Point {
	best := points[0]
	for _, p := range points[1:] {
		if p.Y < best.Y || (p.Y == best.Y && p.X < best.X) {
			best = p
		}
	}
	return best
}

func translate(points []Point, dx, dy int) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

// assignHoles finds background components enclosed within mask's
// rectangle (as opposed to the one touching its border, which is the
// surrounding background) and files each as a hole of the subpath whose
// outer rect contains it.
func assignHoles(cp *CompoundPath, mask *BinaryImage, rect Rect) {
	w, h := mask.Width, mask.Height
	neg := mask.Negative()
	for _, comp := range neg.ToClusters() {
		if touchesBorder(comp, w, h) {
			continue
		}
		holeMask := newBinaryImage(w, h)
		for _, p := range comp.Points {
			holeMask.Set(p.X, p.Y, true)
		}
		start := firstScanPoint(comp.Points)
		hole := translate(walkPath(holeMask, start, false), rect.Left, rect.Top)

		owner := -1
		for i, sp := range cp.Subpaths {
			if subpathContains(sp, comp.Rect, rect) {
				owner = i
				break
			}
		}
		if owner < 0 {
			owner = 0
		}
		cp.Subpaths[owner].Holes = append(cp.Subpaths[owner].Holes, hole)
	}
}

func touchesBorder(comp BinaryCluster, w, h int) bool {
	for _, p := range comp.Points {
		if p.X == 0 || p.Y == 0 || p.X == w-1 || p.Y == h-1 {
			return true
		}
	}
	return false
}

// subpathContains reports whether a hole's local-mask rect falls inside
// the bounding rect of the outer contour sp, both expressed relative to
// the shared mask origin.
func subpathContains(sp Subpath, holeLocalRect Rect, rect Rect) bool {
	outerRect := tightOuterRect(sp.Outer, rect)
	hole := Rect{
		Left:   holeLocalRect.Left + rect.Left,
		Top:    holeLocalRect.Top + rect.Top,
		Right:  holeLocalRect.Right + rect.Left,
		Bottom: holeLocalRect.Bottom + rect.Top,
	}
	return outerRect.Left <= hole.Left && outerRect.Top <= hole.Top &&
		outerRect.Right >= hole.Right && outerRect.Bottom >= hole.Bottom
}

func tightOuterRect(outer []Point, _ Rect) Rect {
	var r Rect
	for _, p := range outer {
		r = r.AddXY(p.X, p.Y)
	}
	return r
}
