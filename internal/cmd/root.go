// Package cmd wires the vtrace CLI's cobra commands.
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "vtrace",
	Short: "Raster-to-SVG vectorizer",
	Long: `vtrace — traces raster images into layered, editable SVG paths.

Clusters pixels into regions, fits cubic Bézier splines (or straight
polygons) to their boundaries, and assembles a nonzero-winding-rule SVG
document with content-addressed output filenames and a run manifest.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"vtrace %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[vtrace] "+format+"\n", args...)
	}
}
