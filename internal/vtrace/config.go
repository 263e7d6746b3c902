package vtrace

// Mode selects the output path representation.
type Mode string

const (
	ModeSpline  Mode = "spline"
	ModePolygon Mode = "polygon"
)

// ColorMode selects how pixels are classified before clustering.
type ColorMode string

const (
	ColorModeColor  ColorMode = "color"
	ColorModeBinary ColorMode = "binary"
)

// Hierarchical selects how emitted clusters share or partition pixels.
type Hierarchical string

const (
	Stacked Hierarchical = "stacked"
	Cutout  Hierarchical = "cutout"
)

// Config controls every tunable stage of the pipeline. The zero value is
// not valid; use DefaultConfig and override fields, or use one of the
// named presets in package profile.
type Config struct {
	FilterSpeckle   int // area^2 threshold for "large enough to emit"
	ColorPrecision  int // 1..8, clamped; shift = 8 - precision
	LayerDifference int // Manhattan RGB threshold; 0 enables diagonal clustering
	CornerThreshold float64 // degrees
	LengthThreshold float64 // pixels
	SpliceThreshold float64 // degrees
	MaxIterations   int
	PathPrecision   int
	Mode            Mode
	ColorMode       ColorMode
	Hierarchical    Hierarchical
}

// DefaultConfig matches spec §6's documented defaults.
func DefaultConfig() Config {
	return Config{
		FilterSpeckle:   4,
		ColorPrecision:  6,
		LayerDifference: 16,
		CornerThreshold: 60,
		LengthThreshold: 4.0,
		SpliceThreshold: 45,
		MaxIterations:   10,
		PathPrecision:   2,
		Mode:            ModeSpline,
		ColorMode:       ColorModeColor,
		Hierarchical:    Stacked,
	}
}

// normalize clamps fields to their documented ranges and fills in defaults
// for zero-valued enum fields, the way profile.Get falls back to a known
// profile rather than operating on a half-configured one.
func (c Config) normalize() Config {
	if c.ColorPrecision < 1 {
		c.ColorPrecision = 1
	}
	if c.ColorPrecision > 8 {
		c.ColorPrecision = 8
	}
	if c.FilterSpeckle < 0 {
		c.FilterSpeckle = 0
	}
	if c.LayerDifference < 0 {
		c.LayerDifference = 0
	}
	if c.MaxIterations < 0 {
		c.MaxIterations = 0
	}
	if c.PathPrecision < 0 {
		c.PathPrecision = 0
	}
	if c.Mode == "" {
		c.Mode = ModeSpline
	}
	if c.ColorMode == "" {
		c.ColorMode = ColorModeColor
	}
	if c.Hierarchical == "" {
		c.Hierarchical = Stacked
	}
	return c
}

// diagonal reports whether 8-neighbor clustering is active (spec §4.4).
func (c Config) diagonal() bool { return c.LayerDifference == 0 }

// shift is the right-shift applied to each channel before the same-color
// predicate (spec §4.3): precision 1..8 maps to shift 7..0.
func (c Config) shift() int { return 8 - c.ColorPrecision }

// filterArea is the area^2 threshold named "isLargeEnough" in spec §4.6.
func (c Config) filterArea() int { return c.FilterSpeckle * c.FilterSpeckle }
