package config

import (
	"embed"
	"math"
	"time"

	"github.com/vovakirdan/liquid-cat/internal/easing"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Variant identifiers with embedded defaults.
const (
	VariantLiquid   = "liquid"
	VariantLoader   = "loader"
	VariantPinwheel = "pinwheel"
)

// DefaultLoaderConfig returns the full configuration: all phases, label,
// idle pulse forever.
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		Colors: ColorsConfig{
			Primary:        "#000048",
			PrimaryLighter: "#103091",
			Background:     "#ffffff",
			Loader:         "#ffffff",
		},
		Pinwheel: PinwheelConfig{
			LineWidth:        20,
			MinRadius:        1,
			RangeDivisor:     1.9,
			Speed:            5,
			AccelerationStep: 0.2,
			RotateStep:       math.Pi / 100,
			Offset:           0.4,
			OffsetSpeed:      0.001,
		},
		Growth: GrowthConfig{
			Speed:        5,
			Acceleration: 1.15,
		},
		Ring: RingConfig{
			Radius:         200,
			MaxFraction:    0.6,
			LineWidth:      8,
			Speed:          3,
			Acceleration:   1.1,
			DecayThreshold: 0.6,
			DecayStep:      1.5,
			MinSpeed:       0.5,
			Offset:         0.6,
			RotateStep:     math.Pi / 50,
			WindDown:       time.Second,
		},
		Bounce: BounceConfig{
			Duration:  time.Second,
			LineWidth: 4,
			Keyframes: easing.Keyframes{
				{At: 0, Delta: 0},
				{At: 0.2, Delta: 14},
				{At: 0.4, Delta: -6},
				{At: 0.6, Delta: 8},
				{At: 0.8, Delta: -2},
				{At: 1, Delta: 0},
			},
		},
		Label: LabelConfig{
			Enabled:   true,
			Text:      "LOADING",
			FontSize:  48,
			MinAlpha:  0.3,
			MaxAlpha:  1,
			AlphaStep: 0.008,
		},
		Timing: TimingConfig{
			FPS:            60,
			RedrawThrottle: 300 * time.Millisecond,
			StopAfter:      StopAfterThird,
			SettleFrames:   0,
		},
	}
}

// DefaultLoaderOnlyConfig returns the two-phase variant: no label, stops
// once the loader rotation winds down.
func DefaultLoaderOnlyConfig() LoaderConfig {
	cfg := DefaultLoaderConfig()
	cfg.Label.Enabled = false
	cfg.Timing.StopAfter = StopAfterSecond
	return cfg
}

// DefaultPinwheelConfig returns the earliest variant: the contracting
// pinwheel alone.
func DefaultPinwheelConfig() LoaderConfig {
	cfg := DefaultLoaderConfig()
	cfg.Label.Enabled = false
	cfg.Timing.StopAfter = StopAfterFirst
	return cfg
}

// Default returns the hardcoded defaults for a variant, or false.
func Default(variant string) (LoaderConfig, bool) {
	switch variant {
	case VariantLiquid:
		return DefaultLoaderConfig(), true
	case VariantLoader:
		return DefaultLoaderOnlyConfig(), true
	case VariantPinwheel:
		return DefaultPinwheelConfig(), true
	default:
		return LoaderConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	data, err := defaultsFS.ReadFile("defaults/" + variant + ".yaml")
	if err != nil {
		return nil
	}
	return data
}
