package svgoffset

// Default pipeline settings.
const (
	DefaultScale            = 1000.0
	DefaultFlattenTolerance = 0.1
	DefaultMinDistance      = 0.001
	DefaultMiterLimit       = 2.0
	DefaultArcTolerance     = 0.25
)

// Config holds the per-call settings of the pipeline. A Config is never
// shared between calls; each call builds its own from DefaultConfig and
// the supplied options.
type Config struct {
	// Scale converts source units to fixed-point coordinates.
	Scale float64
	// FlattenTolerance is the maximum distance, in source units, between a
	// curve and its polyline approximation.
	FlattenTolerance float64
	// MinDistance is the magnitude below which an offset is a no-op.
	MinDistance float64

	Flattener Flattener
	Offsetter Offsetter
}

// Option configures a Config.
//
// Example:
//
//	out, err := svgoffset.OffsetPathSimple(d, 4,
//	    svgoffset.WithScale(100),
//	    svgoffset.WithFlattenTolerance(0.5))
type Option func(*Config)

// DefaultConfig returns the settings used when no option is given.
func DefaultConfig() Config {
	return Config{
		Scale:            DefaultScale,
		FlattenTolerance: DefaultFlattenTolerance,
		MinDistance:      DefaultMinDistance,
		Flattener:        GGFlattener{},
		Offsetter:        ClipperOffsetter{},
	}
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Scale <= 0 {
		cfg.Scale = DefaultScale
	}
	if cfg.FlattenTolerance <= 0 {
		cfg.FlattenTolerance = DefaultFlattenTolerance
	}
	if cfg.Flattener == nil {
		cfg.Flattener = GGFlattener{}
	}
	if cfg.Offsetter == nil {
		cfg.Offsetter = ClipperOffsetter{}
	}
	return cfg
}

// WithScale sets the fixed-point scale factor. Non-positive values fall
// back to DefaultScale.
func WithScale(scale float64) Option {
	return func(c *Config) {
		c.Scale = scale
	}
}

// WithFlattenTolerance sets the curve flattening tolerance in source units.
func WithFlattenTolerance(tolerance float64) Option {
	return func(c *Config) {
		c.FlattenTolerance = tolerance
	}
}

// WithMinDistance sets the magnitude below which offsetting returns the
// input unchanged.
func WithMinDistance(d float64) Option {
	return func(c *Config) {
		c.MinDistance = d
	}
}

// WithFlattener replaces the curve flattener.
func WithFlattener(f Flattener) Option {
	return func(c *Config) {
		c.Flattener = f
	}
}

// WithOffsetter replaces the polygon offsetting implementation.
func WithOffsetter(o Offsetter) Option {
	return func(c *Config) {
		c.Offsetter = o
	}
}
