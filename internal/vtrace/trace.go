package vtrace

import "fmt"

// Result is the output of Trace: the assembled SVG document plus a count
// of the filled layers it contains, useful for quick reporting without
// re-parsing the markup.
type Result struct {
	SVG    string
	Layers int
}

// Trace converts an RGBA8 pixel buffer into a layered SVG document. It
// runs the full pipeline: transparency keying, optional binarization,
// connected-component clustering, hierarchical region merge, pixel
// reassignment, compound-path extraction, and — per cfg.Mode — either
// polygon or smoothed-and-fitted spline path emission (spec §§1-9 in
// their entirety; see the package doc for the stage list).
//
// pixels is mutated in place by the keying/binarization stages; callers
// that need the original buffer preserved must pass a copy (spec §5).
func Trace(pixels []byte, width, height int, cfg Config) (Result, error) {
	if width < 0 || height < 0 {
		return Result{}, fmt.Errorf("vtrace: negative dimensions %dx%d", width, height)
	}
	if width == 0 || height == 0 {
		return Result{SVG: AssembleSVG(0, 0, nil, cfg), Layers: 0}, nil
	}
	want := width * height * 4
	if len(pixels) != want {
		return Result{}, fmt.Errorf("vtrace: pixel buffer length %d, want %d for %dx%d RGBA", len(pixels), want, width, height)
	}

	cfg = cfg.normalize()

	usedKeyColor := false
	if shouldKey(pixels, width, height) {
		key := findUnusedColor(pixels, width, height)
		applyKeyColor(pixels, key)
		usedKeyColor = true
	}
	if cfg.ColorMode == ColorModeBinary {
		applyBinaryMode(pixels, width, height)
	}

	table, labels, adj := buildClusters(pixels, width, height, cfg)
	emitted, mergedInto, saved := hierarchicalMerge(table, adj, width, height, cfg, usedKeyColor)
	pixelsOf := reassignPixels(labels, mergedInto, emitted, cfg.Hierarchical)
	paths := extractPaths(pixelsOf, saved, emitted, width)

	svg := AssembleSVG(width, height, paths, cfg)
	return Result{SVG: svg, Layers: len(paths)}, nil
}
