package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnyUserName/vtrace-cli/internal/manifest"
)

func TestValidateManifestDetectsMissingSVG(t *testing.T) {
	m := manifest.New("icon")
	m.Assets["a"] = manifest.Asset{
		Original:    manifest.OriginalInfo{Width: 4, Height: 4},
		ThumbHash:   "xx",
		AspectRatio: 1,
		SVG:         manifest.SVGInfo{Layers: 1, Hash: "h1", Path: "a.h1.svg"},
	}
	m.ComputeStats()

	errs := validateManifest(m, t.TempDir())
	found := false
	for _, e := range errs {
		if strings.Contains(e, "svg file not found") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a missing-file error, got %v", errs)
	}
}

func TestValidateManifestPassesOnConsistentManifest(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "a.h1.svg")
	if err := os.WriteFile(svgPath, []byte("<svg></svg>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m := manifest.New("icon")
	m.Assets["a"] = manifest.Asset{
		Original:    manifest.OriginalInfo{Width: 4, Height: 4},
		ThumbHash:   "xx",
		AspectRatio: 1,
		SVG:         manifest.SVGInfo{Layers: 1, Size: 11, Hash: "h1", Path: "a.h1.svg"},
	}
	m.ComputeStats()

	if errs := validateManifest(m, dir); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateManifestDetectsDuplicatePaths(t *testing.T) {
	m := manifest.New("icon")
	m.Assets["a"] = manifest.Asset{ThumbHash: "x", AspectRatio: 1, Original: manifest.OriginalInfo{Width: 1, Height: 1},
		SVG: manifest.SVGInfo{Path: "shared.svg", Hash: "h"}}
	m.Assets["b"] = manifest.Asset{ThumbHash: "x", AspectRatio: 1, Original: manifest.OriginalInfo{Width: 1, Height: 1},
		SVG: manifest.SVGInfo{Path: "shared.svg", Hash: "h"}}
	m.ComputeStats()

	errs := validateManifest(m, t.TempDir())
	dup := false
	for _, e := range errs {
		if strings.Contains(e, "duplicate svg path") {
			dup = true
		}
	}
	if !dup {
		t.Errorf("expected a duplicate-path error, got %v", errs)
	}
}
