package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/AnyUserName/vtrace-cli/internal/decode"
	"github.com/AnyUserName/vtrace-cli/internal/manifest"
	"github.com/AnyUserName/vtrace-cli/internal/pipeline"
	"github.com/AnyUserName/vtrace-cli/internal/profile"
	"github.com/spf13/cobra"
)

var (
	batchOutDir    string
	batchProfile   string
	batchWorkers   int
	batchMode      string
	batchColorMode string
	batchMaxDim    int
)

var batchCmd = &cobra.Command{
	Use:   "batch <input_dir>",
	Short: "Vectorize every raster in a directory and write a run manifest",
	Long: `Scans input directory for rasters (png, jpg, jpeg, webp, gif, bmp, tiff),
traces each into an SVG document, computes thumbhash placeholders, and
writes a manifest file.

Output filenames are content-addressed: <key>.<hash>.svg`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "./vtrace_out", "output directory")
	batchCmd.Flags().StringVarP(&batchProfile, "profile", "p", "icon", "named profile (icon, photo, lineart, pixelart)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	batchCmd.Flags().StringVar(&batchMode, "mode", "", "curve|polygon (overrides profile)")
	batchCmd.Flags().StringVar(&batchColorMode, "color-mode", "", "color|binary (overrides profile)")
	batchCmd.Flags().IntVar(&batchMaxDim, "max-dimension", decode.DefaultMaxDimension, "longest side cap before tracing, 0 disables")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	inputDir := args[0]
	start := time.Now()

	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(batchOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	cfg := profile.Get(batchProfile)
	if err := applyModeOverrides(&cfg, batchMode, batchColorMode); err != nil {
		return err
	}

	logVerbose("input:   %s", absInput)
	logVerbose("output:  %s", absOutput)
	logVerbose("profile: %s", batchProfile)

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.New(pipeline.Config{
		InputDir:     absInput,
		OutputDir:    absOutput,
		ProfileName:  batchProfile,
		Trace:        cfg,
		MaxDimension: batchMaxDim,
		Workers:      batchWorkers,
		Verbose:      verbose,
	})

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	manifestPath := filepath.Join(absOutput, "vtrace.manifest.json")
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printBatchReport(m, time.Since(start))
	return nil
}

func printBatchReport(m *manifest.Manifest, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║              vtrace batch complete                ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()

	stats := m.Stats
	ratio := float64(0)
	if stats.TotalInputBytes > 0 {
		ratio = float64(stats.TotalOutputBytes) / float64(stats.TotalInputBytes) * 100
	}

	fmt.Printf("  Assets:      %d\n", stats.TotalAssets)
	fmt.Printf("  Layers:      %d\n", stats.TotalLayers)
	fmt.Printf("  Input size:  %s\n", formatBytes(stats.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(stats.TotalOutputBytes))
	fmt.Printf("  Ratio:       %.1f%% of original\n", ratio)
	if stats.SkippedErrors > 0 {
		fmt.Printf("  Skipped:     %d assets (trace errors)\n", stats.SkippedErrors)
	}
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))

	if m.BuildInfo != nil {
		poolMB := float64(m.BuildInfo.Workers*m.BuildInfo.PoolEntryKB) / 1024
		fmt.Printf("  Workers:     %d  (pool ≈ %.1f MB)\n", m.BuildInfo.Workers, poolMB)
	}
	fmt.Println()

	if len(m.Assets) > 0 {
		type assetSize struct {
			key        string
			inputSize  int64
			outputSize int64
		}
		var items []assetSize
		for key, a := range m.Assets {
			items = append(items, assetSize{key, a.Original.Size, a.SVG.Size})
		}
		sort.Slice(items, func(i, j int) bool {
			return items[i].inputSize > items[j].inputSize
		})
		n := len(items)
		if n > 10 {
			n = 10
		}
		fmt.Printf("  Top %d heaviest (original → traced):\n", n)
		for _, it := range items[:n] {
			saved := float64(0)
			if it.inputSize > 0 {
				saved = (1 - float64(it.outputSize)/float64(it.inputSize)) * 100
			}
			fmt.Printf("    %-40s %8s → %8s  (−%.0f%%)\n",
				truncKey(it.key, 40),
				formatBytes(it.inputSize),
				formatBytes(it.outputSize),
				saved,
			)
		}
		fmt.Println()
	}

	data, _ := json.Marshal(m)
	fmt.Printf("  Manifest:    vtrace.manifest.json (%s)\n", formatBytes(int64(len(data))))
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
