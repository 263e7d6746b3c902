package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/vtrace-cli/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate a vtrace manifest and check referenced SVG files exist",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	baseDir := filepath.Dir(manifestPath)
	errs := validateManifest(&m, baseDir)

	if len(errs) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d assets, %d layers — all SVG files present\n", m.Stats.TotalAssets, m.Stats.TotalLayers)
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	seenPaths := map[string]bool{}
	for key, asset := range m.Assets {
		if asset.Original.Width <= 0 || asset.Original.Height <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid original dimensions %dx%d",
				key, asset.Original.Width, asset.Original.Height))
		}
		if asset.ThumbHash == "" {
			errs = append(errs, fmt.Sprintf("asset %q: missing thumbhash", key))
		}
		if asset.AspectRatio <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid aspect ratio %.4f", key, asset.AspectRatio))
		}

		if asset.SVG.Path == "" {
			errs = append(errs, fmt.Sprintf("asset %q: missing svg path", key))
			continue
		}
		if asset.SVG.Hash == "" {
			errs = append(errs, fmt.Sprintf("asset %q: missing svg hash", key))
		}

		if seenPaths[asset.SVG.Path] {
			errs = append(errs, fmt.Sprintf("asset %q: duplicate svg path %q", key, asset.SVG.Path))
		}
		seenPaths[asset.SVG.Path] = true

		fullPath := filepath.Join(baseDir, asset.SVG.Path)
		info, err := os.Stat(fullPath)
		if err != nil {
			errs = append(errs, fmt.Sprintf("asset %q: svg file not found: %s", key, asset.SVG.Path))
		} else if asset.SVG.Size > 0 && info.Size() != asset.SVG.Size {
			errs = append(errs, fmt.Sprintf("asset %q: size mismatch: manifest=%d, disk=%d",
				key, asset.SVG.Size, info.Size()))
		}
	}

	assetCount := len(m.Assets)
	layerCount := 0
	for _, a := range m.Assets {
		layerCount += a.SVG.Layers
	}
	if m.Stats.TotalAssets != assetCount {
		errs = append(errs, fmt.Sprintf("stats.total_assets mismatch: %d != %d", m.Stats.TotalAssets, assetCount))
	}
	if m.Stats.TotalLayers != layerCount {
		errs = append(errs, fmt.Sprintf("stats.total_layers mismatch: %d != %d", m.Stats.TotalLayers, layerCount))
	}

	return errs
}
