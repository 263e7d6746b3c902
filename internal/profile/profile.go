// Package profile provides named vtrace.Config bundles tuned for common
// kinds of source material, so a caller can pick a starting point by name
// instead of hand-tuning every field.
package profile

import "github.com/AnyUserName/vtrace-cli/internal/vtrace"

// Built-in profiles, tuned for the kind of raster each name describes.
var profiles = map[string]vtrace.Config{
	"icon": {
		FilterSpeckle:   2,
		ColorPrecision:  8,
		LayerDifference: 8,
		CornerThreshold: 75,
		LengthThreshold: 2,
		SpliceThreshold: 30,
		MaxIterations:   10,
		PathPrecision:   3,
		Mode:            vtrace.ModeSpline,
		ColorMode:       vtrace.ColorModeColor,
		Hierarchical:    vtrace.Cutout,
	},
	"photo": {
		FilterSpeckle:   8,
		ColorPrecision:  5,
		LayerDifference: 24,
		CornerThreshold: 60,
		LengthThreshold: 4,
		SpliceThreshold: 45,
		MaxIterations:   6,
		PathPrecision:   1,
		Mode:            vtrace.ModeSpline,
		ColorMode:       vtrace.ColorModeColor,
		Hierarchical:    vtrace.Stacked,
	},
	"lineart": {
		FilterSpeckle:   4,
		ColorPrecision:  8,
		LayerDifference: 0,
		CornerThreshold: 80,
		LengthThreshold: 1,
		SpliceThreshold: 25,
		MaxIterations:   10,
		PathPrecision:   3,
		Mode:            vtrace.ModeSpline,
		ColorMode:       vtrace.ColorModeBinary,
		Hierarchical:    vtrace.Cutout,
	},
	"pixelart": {
		FilterSpeckle:   1,
		ColorPrecision:  8,
		LayerDifference: 1,
		CornerThreshold: 45,
		LengthThreshold: 0,
		SpliceThreshold: 20,
		MaxIterations:   0,
		PathPrecision:   0,
		Mode:            vtrace.ModePolygon,
		ColorMode:       vtrace.ColorModeColor,
		Hierarchical:    vtrace.Cutout,
	},
}

// Get returns a named profile's Config. Falls back to vtrace.DefaultConfig
// for an unknown name rather than erroring, the named-bundle-with-fallback
// convention used elsewhere in this module.
func Get(name string) vtrace.Config {
	if c, ok := profiles[name]; ok {
		return c
	}
	return vtrace.DefaultConfig()
}

// Names returns the built-in profile names, sorted, for CLI help text and
// validation of a user-supplied --profile flag.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}
