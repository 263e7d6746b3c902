package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/AnyUserName/vtrace-cli/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a batch run",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, "vtrace.manifest.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	printStats(&m)
	return nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Profile:          %s\n", m.Profile)
	if m.BuildInfo != nil {
		poolMB := float64(m.BuildInfo.Workers*m.BuildInfo.PoolEntryKB) / 1024
		fmt.Printf("  Workers:          %d\n", m.BuildInfo.Workers)
		fmt.Printf("  Pool footprint:   %d × %d KB ≈ %.1f MB\n",
			m.BuildInfo.Workers, m.BuildInfo.PoolEntryKB, poolMB)
	} else {
		workers := runtime.NumCPU()
		poolMB := float64(workers*167) / 1024
		fmt.Printf("  Workers (est):    %d  (pool ≈ %.1f MB)\n", workers, poolMB)
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total assets:     %d\n", s.TotalAssets)
	fmt.Printf("  Total layers:     %d\n", s.TotalLayers)
	fmt.Printf("  Input size:       %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size:      %s\n", formatBytes(s.TotalOutputBytes))

	if s.TotalInputBytes > 0 {
		ratio := float64(s.TotalOutputBytes) / float64(s.TotalInputBytes) * 100
		fmt.Printf("  Compression:      %.1f%% of original\n", ratio)
	}
	if s.SkippedErrors > 0 {
		fmt.Printf("  Skipped errors:   %d\n", s.SkippedErrors)
	}
	fmt.Println()

	// Layer-count distribution.
	layerStats := map[int]int{}
	for _, a := range m.Assets {
		layerStats[a.SVG.Layers]++
	}
	var layerCounts []int
	for l := range layerStats {
		layerCounts = append(layerCounts, l)
	}
	for i := 1; i < len(layerCounts); i++ {
		for j := i; j > 0 && layerCounts[j-1] > layerCounts[j]; j-- {
			layerCounts[j-1], layerCounts[j] = layerCounts[j], layerCounts[j-1]
		}
	}
	fmt.Println("  Layer-count breakdown:")
	for _, l := range layerCounts {
		fmt.Printf("    %3d layers  %4d assets\n", l, layerStats[l])
	}
	fmt.Println()

	thumbHashed := 0
	for _, a := range m.Assets {
		if a.ThumbHash != "" {
			thumbHashed++
		}
	}
	fmt.Printf("  ThumbHash coverage: %d / %d assets\n", thumbHashed, len(m.Assets))

	var warnings []string
	for key, a := range m.Assets {
		if a.SVG.Layers == 0 {
			warnings = append(warnings, fmt.Sprintf("asset %q traced no layers", key))
		}
		if a.ThumbHash == "" {
			warnings = append(warnings, fmt.Sprintf("asset %q missing thumbhash", key))
		}
	}
	if len(warnings) > 0 {
		fmt.Println()
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
	}
	fmt.Println()
}
