package vtrace

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderedRing is one traced boundary after simplification, ready for
// path-data output in whichever representation the active Mode calls for.
type RenderedRing struct {
	Polygon []PointF      // set when Mode is ModePolygon
	Curves  []BezierCurve // set when Mode is ModeSpline
}

// processRing runs one traced boundary (outer contour or hole) through
// staircase removal, penalty-bounded decimation, and — for spline mode —
// corner-preserving subdivision and Bézier fitting (spec §§4.10-4.13).
func processRing(points []Point, cfg Config) RenderedRing {
	simplified := removeStaircase(points)
	decimated := decimate(toPointF(simplified), cfg.MaxIterations)

	if cfg.Mode == ModePolygon {
		return RenderedRing{Polygon: decimated}
	}

	const subdivisionPasses = 2
	smoothed := smoothPath(decimated, cfg, subdivisionPasses)
	return RenderedRing{Curves: fitSpline(smoothed, cfg)}
}

func toPointF(points []Point) []PointF {
	out := make([]PointF, len(points))
	for i, p := range points {
		out[i] = p.toF()
	}
	return out
}

// ringPathData renders one ring's "d" command list — it never includes
// the leading "M" of a compound path's first ring beyond its own start,
// since every ring (outer or hole) begins its own closed subpath.
func ringPathData(r RenderedRing, precision int) string {
	var b strings.Builder
	if len(r.Curves) > 0 {
		start := r.Curves[0].P0
		fmt.Fprintf(&b, "M%s,%s", fnum(start.X, precision), fnum(start.Y, precision))
		for _, c := range r.Curves {
			fmt.Fprintf(&b, "C%s,%s,%s,%s,%s,%s",
				fnum(c.P1.X, precision), fnum(c.P1.Y, precision),
				fnum(c.P2.X, precision), fnum(c.P2.Y, precision),
				fnum(c.P3.X, precision), fnum(c.P3.Y, precision))
		}
	} else {
		for i, p := range r.Polygon {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&b, "%s%s,%s", cmd, fnum(p.X, precision), fnum(p.Y, precision))
		}
	}
	b.WriteString("Z ")
	return b.String()
}

func fnum(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// compoundPathData renders every subpath of a cluster's region into one
// "d" attribute. Outer contours trace clockwise and holes counter-
// clockwise, so the default nonzero fill rule punches the holes without
// needing fill-rule="evenodd" (spec §4.8, §4.14).
func compoundPathData(cp CompoundPath, cfg Config) string {
	var b strings.Builder
	for _, sp := range cp.Subpaths {
		b.WriteString(ringPathData(processRing(sp.Outer, cfg), cfg.PathPrecision))
		for _, hole := range sp.Holes {
			b.WriteString(ringPathData(processRing(hole, cfg), cfg.PathPrecision))
		}
	}
	return b.String()
}

// AssembleSVG renders the final layered document: one <path> per emitted
// cluster, drawn in emission order so later (generally larger) layers
// paint over earlier ones under stacked hierarchical mode (spec §4.15).
func AssembleSVG(width, height int, paths []CompoundPath, cfg Config) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(&b, `<svg version="1.1" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`, width, height, width, height)
	for _, cp := range paths {
		d := compoundPathData(cp, cfg)
		if d == "" {
			continue
		}
		fmt.Fprintf(&b, `<path d="%s" fill="%s"/>`, d, cp.Color.Hex())
	}
	b.WriteString(`</svg>`)
	return b.String()
}
