package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AnyUserName/vtrace-cli/internal/decode"
	"github.com/AnyUserName/vtrace-cli/internal/profile"
	"github.com/AnyUserName/vtrace-cli/internal/vtrace"
	"github.com/spf13/cobra"
)

var (
	convertOut       string
	convertProfile   string
	convertMode      string
	convertColorMode string
	convertMaxDim    int
)

var convertCmd = &cobra.Command{
	Use:   "convert <input_file>",
	Short: "Vectorize a single raster image into an SVG file",
	Long: `Decodes a single raster file, traces it into a layered SVG document,
and writes the result next to the input (or to --out).`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output SVG path (default: input path with .svg extension)")
	convertCmd.Flags().StringVarP(&convertProfile, "profile", "p", "icon", "named profile (icon, photo, lineart, pixelart)")
	convertCmd.Flags().StringVar(&convertMode, "mode", "", "curve|polygon (overrides profile)")
	convertCmd.Flags().StringVar(&convertColorMode, "color-mode", "", "color|binary (overrides profile)")
	convertCmd.Flags().IntVar(&convertMaxDim, "max-dimension", decode.DefaultMaxDimension, "longest side cap before tracing, 0 disables")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(_ *cobra.Command, args []string) error {
	inputPath := args[0]
	start := time.Now()

	outPath := convertOut
	if outPath == "" {
		ext := filepath.Ext(inputPath)
		outPath = strings.TrimSuffix(inputPath, ext) + ".svg"
	}

	cfg := profile.Get(convertProfile)
	if err := applyModeOverrides(&cfg, convertMode, convertColorMode); err != nil {
		return err
	}

	logVerbose("input:  %s", inputPath)
	logVerbose("output: %s", outPath)
	logVerbose("profile: %s", convertProfile)

	raster, err := decode.File(inputPath, convertMaxDim)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	result, err := vtrace.Trace(raster.Pixels, raster.Width, raster.Height, cfg)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}

	if err := os.WriteFile(outPath, []byte(result.SVG), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	elapsed := time.Since(start)
	fmt.Printf("  %s → %s  (%d layers, %s)\n", inputPath, outPath, result.Layers, elapsed.Round(time.Millisecond))
	return nil
}

// applyModeOverrides applies --mode/--color-mode flag overrides onto a
// profile-derived Config, validating the supplied strings.
func applyModeOverrides(cfg *vtrace.Config, mode, colorMode string) error {
	switch mode {
	case "":
	case "curve":
		cfg.Mode = vtrace.ModeSpline
	case "polygon":
		cfg.Mode = vtrace.ModePolygon
	default:
		return fmt.Errorf("invalid --mode %q (want curve or polygon)", mode)
	}

	switch colorMode {
	case "":
	case "color":
		cfg.ColorMode = vtrace.ColorModeColor
	case "binary":
		cfg.ColorMode = vtrace.ColorModeBinary
	default:
		return fmt.Errorf("invalid --color-mode %q (want color or binary)", colorMode)
	}
	return nil
}
