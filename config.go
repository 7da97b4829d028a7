package sketch

import (
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the tuning constants of the engine. All distances are in
// device pixels. A Config is passed by value and never modified by the
// engine.
type Config struct {
	// CurveLimit is the maximum number of curves on the plot.
	CurveLimit int `toml:"curve_limit"`
	// DetectionRadius is the hit radius for handles. Knots use twice the
	// radius plus slack, see [Config.KnotRadius] and [Config.SampleRadius].
	DetectionRadius float64 `toml:"detection_radius"`
	// SampleSpacing is the distance a stroke has to travel before the next
	// raw point is kept.
	SampleSpacing float64 `toml:"sample_spacing"`
	// SnapDistance is the distance within which stroke endpoints snap onto
	// the axes.
	SnapDistance float64 `toml:"snap_distance"`
	// CloseDistance is the distance between the first and last point of a
	// stroke below which the stroke becomes a closed loop.
	CloseDistance float64 `toml:"close_distance"`
	// BranchGap is the horizontal jump between consecutive samples that
	// separates disconnected branches.
	BranchGap float64 `toml:"branch_gap"`
	// EdgeCutoff is the number of samples at either end of an open curve that
	// are never turning points.
	EdgeCutoff int `toml:"edge_cutoff"`
	// ClassifyWindow is the sample distance used to tell maxima from minima.
	ClassifyWindow int `toml:"classify_window"`
	// MinStretchRange is the smallest width or height a stretch may produce.
	MinStretchRange float64 `toml:"min_stretch_range"`
	KnotBufferX     float64 `toml:"knot_buffer_x"`
	KnotBufferY     float64 `toml:"knot_buffer_y"`
	// HandleOffset moves edge resize handles outwards.
	HandleOffset float64 `toml:"handle_offset"`
	// RotateHandleOffset moves rotate handles diagonally outwards.
	RotateHandleOffset float64 `toml:"rotate_handle_offset"`
	// Samples is the number of samples a fitted curve has.
	Samples int `toml:"samples"`
	// ExportPrecision is the number of decimal places kept on export.
	ExportPrecision int `toml:"export_precision"`
	// MaxCanvas is the largest accepted canvas width and height.
	MaxCanvas float64 `toml:"max_canvas"`
	// MinInside is the fraction of samples that must stay inside the plot
	// for an edited curve to survive.
	MinInside float64 `toml:"min_inside"`
	// AllowMultiValued disables the monotonic-x filter on drawn strokes.
	AllowMultiValued bool `toml:"allow_multi_valued"`
	// Colors names the palette; a curve's colour index points into it.
	Colors []string `toml:"colors"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CurveLimit:         3,
		DetectionRadius:    10,
		SampleSpacing:      10,
		SnapDistance:       15,
		CloseDistance:      15,
		BranchGap:          200,
		EdgeCutoff:         10,
		ClassifyWindow:     5,
		MinStretchRange:    30,
		KnotBufferX:        30,
		KnotBufferY:        15,
		HandleOffset:       3,
		RotateHandleOffset: 16,
		Samples:            100,
		ExportPrecision:    4,
		MaxCanvas:          5000,
		MinInside:          0.5,
		Colors:             []string{"Blue", "Orange", "Green"},
	}
}

// KnotRadius is the hit radius for movable points.
func (cfg Config) KnotRadius() float64 { return cfg.DetectionRadius + 10 }

// SampleRadius is the hit radius for a curve's samples.
func (cfg Config) SampleRadius() float64 { return 2 * cfg.DetectionRadius }

// ColorIndex returns the palette index of the named colour.
func (cfg Config) ColorIndex(name string) (int, bool) {
	i := slices.Index(cfg.Colors, name)
	return i, i >= 0
}

// Validate checks that the configuration is usable.
func (cfg Config) Validate() error {
	switch {
	case cfg.CurveLimit < 1:
		return fmt.Errorf("curve_limit must be at least 1, got %d", cfg.CurveLimit)
	case cfg.Samples < 2:
		return fmt.Errorf("samples must be at least 2, got %d", cfg.Samples)
	case cfg.EdgeCutoff < cfg.ClassifyWindow:
		return fmt.Errorf("edge_cutoff (%d) must not be smaller than classify_window (%d)", cfg.EdgeCutoff, cfg.ClassifyWindow)
	case cfg.ClassifyWindow < 1:
		return fmt.Errorf("classify_window must be at least 1, got %d", cfg.ClassifyWindow)
	case cfg.MaxCanvas <= 0:
		return fmt.Errorf("max_canvas must be positive, got %g", cfg.MaxCanvas)
	case cfg.MinInside < 0 || cfg.MinInside > 1:
		return fmt.Errorf("min_inside must be in [0, 1], got %g", cfg.MinInside)
	case cfg.ExportPrecision < 0:
		return fmt.Errorf("export_precision must not be negative, got %d", cfg.ExportPrecision)
	case len(cfg.Colors) == 0:
		return errors.New("colors must name at least one colour")
	}
	return nil
}

// LoadConfig reads a TOML configuration file. Keys missing from the file
// keep their default values.
func LoadConfig(fileName string) (Config, error) {
	return loadConfig(fileName, true)
}

// ParseConfig is like LoadConfig but reads the configuration from a string.
func ParseConfig(conf string) (Config, error) {
	return loadConfig(conf, false)
}

func loadConfig(conf string, isFileName bool) (Config, error) {
	cfg := DefaultConfig()
	var md toml.MetaData
	var err error
	if isFileName {
		md, err = toml.DecodeFile(conf, &cfg)
	} else {
		md, err = toml.Decode(conf, &cfg)
	}
	if err != nil {
		return cfg, errors.Wrap(err, "decoding configuration")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("undecoded fields in configuration: %v", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
