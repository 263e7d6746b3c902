package pipeline

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/vtrace-cli/internal/decode"
	"github.com/AnyUserName/vtrace-cli/internal/hasher"
	"github.com/AnyUserName/vtrace-cli/internal/manifest"
	"github.com/AnyUserName/vtrace-cli/internal/thumbhash"
	"github.com/AnyUserName/vtrace-cli/internal/vtrace"
)

// processResult holds the result of processing a single source raster.
type processResult struct {
	key   string
	asset manifest.Asset
	err   error
}

// processImage handles a single source raster: decode, thumbhash, vectorize, write.
func processImage(src Source, cfg Config) processResult {
	result := processResult{key: src.Key}

	raster, err := decode.File(src.AbsPath, cfg.MaxDimension)
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}

	thumbHash := thumbhash.Encode(raster.Image())
	thumbHashB64 := base64.StdEncoding.EncodeToString(thumbHash)

	svgResult, err := vtrace.Trace(raster.Pixels, raster.Width, raster.Height, cfg.Trace)
	if err != nil {
		result.err = fmt.Errorf("trace %s: %w", src.RelPath, err)
		return result
	}

	keyDir := filepath.Dir(src.Key)
	if keyDir != "." {
		os.MkdirAll(filepath.Join(cfg.OutputDir, keyDir), 0o755)
	}

	data := []byte(svgResult.SVG)
	contentHash := hasher.ContentHash(data, 16)
	fileName := fmt.Sprintf("%s.%s.svg", filepath.Base(src.Key), contentHash[:8])
	relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))
	outPath := filepath.Join(cfg.OutputDir, relPath)

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		result.err = fmt.Errorf("write %s: %w", relPath, err)
		return result
	}

	result.asset = manifest.Asset{
		Original: manifest.OriginalInfo{
			Width:    raster.Width,
			Height:   raster.Height,
			Format:   src.Format,
			Size:     src.Size,
			HasAlpha: raster.HasAlpha,
		},
		ThumbHash:   thumbHashB64,
		AspectRatio: float64(raster.Width) / float64(raster.Height),
		SVG: manifest.SVGInfo{
			Layers: svgResult.Layers,
			Size:   int64(len(data)),
			Hash:   contentHash,
			Path:   relPath,
		},
	}
	return result
}
