package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestManifestRoundtrip(t *testing.T) {
	m := New("icon")
	m.BuildInfo = &BuildInfo{Workers: 4, PoolEntryKB: 167}
	m.Assets["test/image"] = Asset{
		Original: OriginalInfo{
			Width: 64, Height: 64,
			Format: "png", Size: 2048, HasAlpha: true,
		},
		ThumbHash:   "YJqGPQw7sFlslqhFafSE+Q6oJ1h2iA==",
		AspectRatio: 1.0,
		SVG: SVGInfo{
			Layers: 3,
			Size:   900,
			Hash:   "abcd1234abcd1234",
			Path:   "test/image.abcd1234abcd1234.svg",
		},
	}
	m.ComputeStats()

	dir := t.TempDir()
	path := filepath.Join(dir, "vtrace.manifest.json")
	if err := WriteJSON(m, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var m2 Manifest
	if err := json.Unmarshal(data, &m2); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if m2.Version != SupportedManifestVersion {
		t.Errorf("version: got %d, want %d", m2.Version, SupportedManifestVersion)
	}
	if m2.Profile != "icon" {
		t.Errorf("profile: got %q", m2.Profile)
	}
	if m2.BuildInfo == nil || m2.BuildInfo.Workers != 4 {
		t.Fatal("build_info not roundtripped")
	}

	a, ok := m2.Assets["test/image"]
	if !ok {
		t.Fatal("asset test/image missing")
	}
	if a.SVG.Layers != 3 {
		t.Errorf("svg layers: got %d", a.SVG.Layers)
	}
	if a.ThumbHash != "YJqGPQw7sFlslqhFafSE+Q6oJ1h2iA==" {
		t.Errorf("thumbhash: got %q", a.ThumbHash)
	}

	if m2.Stats.TotalAssets != 1 {
		t.Errorf("total_assets: got %d", m2.Stats.TotalAssets)
	}
	if m2.Stats.TotalLayers != 3 {
		t.Errorf("total_layers: got %d", m2.Stats.TotalLayers)
	}
}

func TestManifestVersion(t *testing.T) {
	m := New("v-test")
	if m.Version != SupportedManifestVersion {
		t.Errorf("new manifest version: got %d, want %d", m.Version, SupportedManifestVersion)
	}
}

func TestComputeStatsPreservesSkippedErrors(t *testing.T) {
	m := New("test")
	m.Stats.SkippedErrors = 2
	m.Assets["a"] = Asset{Original: OriginalInfo{Size: 10}, SVG: SVGInfo{Size: 5, Layers: 1}}
	m.ComputeStats()
	if m.Stats.SkippedErrors != 2 {
		t.Errorf("skipped_errors: got %d, want 2", m.Stats.SkippedErrors)
	}
	if m.Stats.TotalAssets != 1 || m.Stats.TotalLayers != 1 {
		t.Errorf("stats = %+v", m.Stats)
	}
}

func TestManifestIgnoresUnknownFields(t *testing.T) {
	raw := `{
		"version": 1,
		"generated_at": "2026-01-01T00:00:00Z",
		"profile": "test",
		"base_path": "./",
		"future_field": "should be ignored",
		"build_info": { "workers": 8, "pool_entry_kb": 167, "new_flag": true },
		"assets": {},
		"stats": { "total_input_bytes": 0, "total_output_bytes": 0, "total_assets": 0, "total_layers": 0, "new_stat": 42 }
	}`

	var m Manifest
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal with unknown fields: %v", err)
	}
	if m.BuildInfo == nil || m.BuildInfo.Workers != 8 {
		t.Error("build_info not parsed correctly")
	}
}
