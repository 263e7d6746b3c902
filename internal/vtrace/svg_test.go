package vtrace

import (
	"strings"
	"testing"
)

func TestFnumFormatsFixedPrecision(t *testing.T) {
	if got := fnum(1.0/3, 2); got != "0.33" {
		t.Errorf("fnum() = %q, want 0.33", got)
	}
}

func TestRingPathDataPolygonCommands(t *testing.T) {
	r := RenderedRing{Polygon: []PointF{{0, 0}, {1, 0}, {1, 1}}}
	d := ringPathData(r, 0)
	if !strings.HasPrefix(d, "M0,0") {
		t.Errorf("path data = %q, want to start with M0,0", d)
	}
	if !strings.HasSuffix(d, "Z ") {
		t.Errorf("path data = %q, want to end with \"Z \"", d)
	}
	if strings.Count(d, "L") != 2 {
		t.Errorf("path data = %q, want exactly 2 line commands", d)
	}
}

func TestRingPathDataCurveCommands(t *testing.T) {
	r := RenderedRing{Curves: []BezierCurve{
		{P0: PointF{0, 0}, P1: PointF{1, 0}, P2: PointF{1, 1}, P3: PointF{2, 2}},
	}}
	d := ringPathData(r, 0)
	if !strings.HasPrefix(d, "M0,0") || !strings.Contains(d, "C") || !strings.HasSuffix(d, "Z ") {
		t.Errorf("curve path data = %q", d)
	}
}

func TestAssembleSVGIncludesEveryLayerColor(t *testing.T) {
	paths := []CompoundPath{
		{Color: Color{R: 255, A: 255}, Subpaths: []Subpath{{Outer: []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}}},
	}
	cfg := DefaultConfig().normalize()
	svg := AssembleSVG(10, 10, paths, cfg)
	if !strings.Contains(svg, `viewBox="0 0 10 10"`) {
		t.Errorf("svg missing viewBox: %s", svg)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Errorf("svg missing expected fill color: %s", svg)
	}
	if !strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8"?><svg version="1.1"`) {
		t.Errorf("svg missing XML declaration / version attribute: %s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Errorf("svg malformed envelope: %s", svg)
	}
}

func TestAssembleSVGEmptyPathsProducesEmptyDocument(t *testing.T) {
	svg := AssembleSVG(0, 0, nil, DefaultConfig())
	if strings.Contains(svg, "<path") {
		t.Errorf("empty input should produce no path elements: %s", svg)
	}
}
