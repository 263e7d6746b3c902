package vtrace

// BinaryImage is a width*height bit field used by compound-path extraction
// to mark which pixels belong to the cluster currently being traced.
// Out-of-bounds reads report false and out-of-bounds writes are no-ops, so
// callers never need edge guards while walking neighbor offsets (spec §4.8).
type BinaryImage struct {
	Width, Height int
	bits          []bool
}

func newBinaryImage(width, height int) *BinaryImage {
	return &BinaryImage{Width: width, Height: height, bits: make([]bool, width*height)}
}

func (b *BinaryImage) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

func (b *BinaryImage) Get(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.bits[y*b.Width+x]
}

func (b *BinaryImage) Set(x, y int, v bool) {
	if !b.inBounds(x, y) {
		return
	}
	b.bits[y*b.Width+x] = v
}

// Negative returns a new image with every bit flipped, same dimensions.
func (b *BinaryImage) Negative() *BinaryImage {
	out := newBinaryImage(b.Width, b.Height)
	for i, v := range b.bits {
		out.bits[i] = !v
	}
	return out
}

// BinaryCluster is one 4-connected component of set bits within a
// BinaryImage, discovered by ToClusters.
type BinaryCluster struct {
	Rect   Rect
	Points []Point
}

// ToClusters labels the image's 4-connected components of set bits and
// returns one BinaryCluster per component, in scan order of each
// component's first pixel (spec §4.8 "decompose into 4-connected pieces").
func (b *BinaryImage) ToClusters() []BinaryCluster {
	visited := make([]bool, len(b.bits))
	var clusters []BinaryCluster

	var stack []Point
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			i := y*b.Width + x
			if !b.bits[i] || visited[i] {
				continue
			}
			var cl BinaryCluster
			stack = stack[:0]
			stack = append(stack, Point{X: x, Y: y})
			visited[i] = true
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cl.Points = append(cl.Points, p)
				cl.Rect = cl.Rect.AddXY(p.X, p.Y)

				for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nx, ny := p.X+d[0], p.Y+d[1]
					if !b.inBounds(nx, ny) {
						continue
					}
					ni := ny*b.Width + nx
					if !b.bits[ni] || visited[ni] {
						continue
					}
					visited[ni] = true
					stack = append(stack, Point{X: nx, Y: ny})
				}
			}
			clusters = append(clusters, cl)
		}
	}
	return clusters
}
