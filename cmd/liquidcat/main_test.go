package main

import (
	"bytes"
	"image/png"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/liquid-cat/internal/canvas"
	"github.com/vovakirdan/liquid-cat/internal/loader"
	"github.com/vovakirdan/liquid-cat/internal/render/raster"
)

func resetFlags(t *testing.T) {
	t.Helper()
	flagFPS, flagConfig, flagLabel, flagNoLabel, flagThrottle, flagSettle = 0, "", "", false, 0, 0
	flagLogLevel, flagLogFile = "info", ""
	t.Cleanup(func() {
		flagFPS, flagConfig, flagLabel, flagNoLabel, flagThrottle, flagSettle = 0, "", "", false, 0, 0
	})
}

func TestParseSize(t *testing.T) {
	vp, err := parseSize("800x600")
	require.NoError(t, err)
	assert.Equal(t, 800, vp.Width)
	assert.Equal(t, 600, vp.Height)

	for _, bad := range []string{"", "800", "0x600", "axb", "-5x10"} {
		_, err := parseSize(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadVariantOverrides(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	flagFPS = 30
	flagLabel = "WAIT"
	flagSettle = 12

	v, err := loadVariant("liquid")
	require.NoError(t, err)
	assert.Equal(t, 30, v.Config.Timing.FPS)
	assert.True(t, v.Config.Label.Enabled)
	assert.Equal(t, "WAIT", v.Config.Label.Text)
	assert.Equal(t, 12, v.Config.Timing.SettleFrames)

	flagNoLabel = true
	v, err = loadVariant("liquid")
	require.NoError(t, err)
	assert.False(t, v.Config.Label.Enabled)
}

func TestLoadVariantUnknown(t *testing.T) {
	resetFlags(t)
	_, err := loadVariant("tetris")
	assert.ErrorContains(t, err, "unknown variant")
}

func TestNewLoggerLevel(t *testing.T) {
	resetFlags(t)
	flagLogLevel = "debug"
	logger, closeLog, err := newLogger("test", io.Discard)
	require.NoError(t, err)
	assert.NoError(t, closeLog())
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	flagLogLevel = "loud"
	_, _, err = newLogger("test", io.Discard)
	assert.Error(t, err)
}

func TestHeadlessRunStopsAtLimit(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	v, err := loadVariant("liquid")
	require.NoError(t, err)
	vp, err := parseSize("800x600")
	require.NoError(t, err)

	reports := 0
	rec := canvas.NewRecorder()
	final, err := headlessRun{
		cfg:      v.Config,
		viewport: vp,
		surface:  rec,
		frames:   20,
		logger:   log.New(io.Discard),
		onFrame: func(r loader.FrameReport) error {
			reports++
			rec.Reset()
			return nil
		},
	}.run()
	require.NoError(t, err)
	assert.Equal(t, 20, reports)
	assert.Equal(t, 20, final.Frame)
	assert.Equal(t, loader.PhaseFirst, final.Phase)
	assert.Equal(t, []string{"20", "first"}, traceRow(loader.FrameReport{Frame: 20, State: final})[:2])
}

func TestRenderLastWritesPNG(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	v, err := loadVariant("liquid")
	require.NoError(t, err)
	vp, err := parseSize("320x240")
	require.NoError(t, err)

	surface := raster.New(320, 240, 0.5)
	var buf bytes.Buffer
	err = renderLast(surface, headlessRun{
		cfg:      v.Config,
		viewport: vp,
		surface:  surface,
		frames:   15,
		logger:   log.New(io.Discard),
	}, &buf)
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}
