package manifest

// Manifest is the top-level output of a vtrace batch run.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Profile     string           `json:"profile"`
	BasePath    string           `json:"base_path"`
	BuildInfo   *BuildInfo       `json:"build_info,omitempty"`
	Assets      map[string]Asset `json:"assets"`
	Stats       Stats            `json:"stats"`
}

// BuildInfo captures run-time parameters for diagnostics.
type BuildInfo struct {
	Workers     int `json:"workers"`
	PoolEntryKB int `json:"pool_entry_kb"` // per-worker thumbhash pool (~167 KB for float32)
}

// Asset describes a single source raster and the SVG traced from it.
type Asset struct {
	Original    OriginalInfo `json:"original"`
	ThumbHash   string       `json:"thumbhash"` // base64-encoded thumbhash bytes
	AspectRatio float64      `json:"aspect_ratio"`
	SVG         SVGInfo      `json:"svg"`
}

// OriginalInfo holds metadata about the source raster.
type OriginalInfo struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Size     int64  `json:"size"`
	HasAlpha bool   `json:"has_alpha"`
}

// SVGInfo is the single vectorized output of an asset.
type SVGInfo struct {
	Layers int    `json:"layers"` // number of compound paths emitted
	Size   int64  `json:"size"`   // bytes on disk
	Hash   string `json:"hash"`   // first 16 hex chars of xxhash64
	Path   string `json:"path"`  // relative to base_path
}

// Stats aggregates run metrics.
type Stats struct {
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
	TotalAssets      int   `json:"total_assets"`
	TotalLayers      int   `json:"total_layers"`
	SkippedErrors    int   `json:"skipped_errors,omitempty"` // sources that failed to trace
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
