package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	for _, v := range []string{VariantLiquid, VariantLoader, VariantPinwheel} {
		cfg, ok := Default(v)
		require.True(t, ok, v)
		assert.NoError(t, cfg.Validate(), v)
	}

	_, ok := Default("nope")
	assert.False(t, ok)
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	tests := []struct {
		variant   string
		label     bool
		stopAfter string
	}{
		{VariantLiquid, true, StopAfterThird},
		{VariantLoader, false, StopAfterSecond},
		{VariantPinwheel, false, StopAfterFirst},
	}

	for _, tc := range tests {
		t.Run(tc.variant, func(t *testing.T) {
			data := GetDefaultYAML(tc.variant)
			require.NotNil(t, data)

			base, _ := Default(tc.variant)
			cfg, err := Parse(base, data)
			require.NoError(t, err)

			assert.Equal(t, tc.label, cfg.Label.Enabled)
			assert.Equal(t, tc.stopAfter, cfg.Timing.StopAfter)
			assert.Equal(t, 300*time.Millisecond, cfg.Timing.RedrawThrottle)
			assert.Equal(t, "#000048", cfg.Colors.Primary)
			assert.InDelta(t, 1.9, cfg.Pinwheel.RangeDivisor, 1e-12)
			assert.InDelta(t, base.Pinwheel.RotateStep, cfg.Pinwheel.RotateStep, 1e-12)
			assert.Len(t, cfg.Bounce.Keyframes, 6)
		})
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse(DefaultLoaderConfig(), []byte("label:\n  text: Loading...\npinwheel:\n  speed: 7\n"))
	require.NoError(t, err)

	assert.Equal(t, "Loading...", cfg.Label.Text)
	assert.Equal(t, 7.0, cfg.Pinwheel.Speed)
	assert.Equal(t, 0.2, cfg.Pinwheel.AccelerationStep)
	assert.Equal(t, time.Second, cfg.Ring.WindDown)
}

func TestParseRejectsInvalid(t *testing.T) {
	base := DefaultLoaderConfig()
	cfg, err := Parse(base, []byte("pinwheel:\n  min_radius: -1\ncolors:\n  primary: blue\n"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "min_radius")
	assert.Contains(t, err.Error(), "colors.primary")
	assert.Equal(t, base.Pinwheel.MinRadius, cfg.Pinwheel.MinRadius)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse(DefaultLoaderConfig(), []byte("pinwheel: [unclosed"))
	assert.Error(t, err)
}

func TestValidateStopAfter(t *testing.T) {
	cfg := DefaultLoaderConfig()
	cfg.Timing.StopAfter = "fourth"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestParseDoesNotAliasKeyframes(t *testing.T) {
	base := DefaultLoaderConfig()
	_, err := Parse(base, []byte("bounce:\n  keyframes:\n    - { at: 0, delta: 99 }\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, base.Bounce.Keyframes[0].Delta)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("label:\n  text: HELLO\n"), 0o600))

	cfg, err := Load(VariantLiquid, path)
	require.NoError(t, err)
	assert.Equal(t, "HELLO", cfg.Label.Text)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(VariantLiquid, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultLoaderConfig()
	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(LoaderConfig{}, data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultPinwheelConfig()
	ApplyOverrides(&cfg, Overrides{FPS: 30, Label: "WAIT", RedrawThrottle: time.Second})

	assert.Equal(t, 30, cfg.Timing.FPS)
	assert.True(t, cfg.Label.Enabled)
	assert.Equal(t, "WAIT", cfg.Label.Text)
	assert.Equal(t, time.Second, cfg.Timing.RedrawThrottle)

	ApplyOverrides(&cfg, Overrides{NoLabel: true})
	assert.False(t, cfg.Label.Enabled)
}

func TestTimingFrames(t *testing.T) {
	tm := TimingConfig{FPS: 60}
	assert.Equal(t, 60, tm.Frames(time.Second))
	assert.Equal(t, 1, tm.Frames(0))
	assert.Equal(t, time.Second/60, tm.FrameInterval())
}
