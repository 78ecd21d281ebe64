// liquidcat plays the Liquid Cat loading animation in the terminal and
// renders it headlessly.
//
// Usage:
//
//	liquidcat list                - List available variants
//	liquidcat play <variant>      - Play a variant in the terminal
//	liquidcat render <variant>    - Render frames to PNG files
//	liquidcat trace <variant>     - Print the per-frame state
//	liquidcat config <variant>    - Print the resolved YAML config
//
// Global flags:
//
//	--fps <rate>          - Frame rate (default: from config)
//	--config <path>       - Custom config YAML layered over the defaults
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/liquid-cat/internal/config"
	"github.com/vovakirdan/liquid-cat/internal/registry"

	// Import variants to register them
	_ "github.com/vovakirdan/liquid-cat/internal/variants"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagLabel    string
	flagNoLabel  bool
	flagThrottle time.Duration
	flagSettle   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "liquidcat",
	Short: "Liquid Cat - a canvas-style loading animation",
	Long: `Liquid Cat draws a rotating pinwheel that contracts into a gradient
loader with a growing ring, rotating arcs and a fading label.

Available commands:
  list     - Show all available variants
  play     - Play a variant in the terminal
  render   - Render frames to PNG
  trace    - Print per-frame numeric state
  config   - Print the resolved config as YAML

Examples:
  liquidcat list
  liquidcat play liquid
  liquidcat render loader --frames 240 --every 10 --out ./frames
  liquidcat trace pinwheel --frames 60
  liquidcat config liquid > my-liquid.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLabel, "label", "", "Label text (enables the label)")
	rootCmd.PersistentFlags().BoolVar(&flagNoLabel, "no-label", false, "Hide the label")
	rootCmd.PersistentFlags().DurationVar(&flagThrottle, "throttle", 0, "Resize throttle interval (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagSettle, "settle", 0, "Stop after this many settled frames (0 = from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(configCmd)
}

// loadVariant builds a variant with the global flag overrides applied.
func loadVariant(id string) (registry.Variant, error) {
	if !registry.Exists(id) {
		return registry.Variant{}, fmt.Errorf("unknown variant %q (run 'liquidcat list')", id)
	}

	v, err := registry.Create(id, flagConfig)
	if err != nil {
		return registry.Variant{}, err
	}

	config.ApplyOverrides(&v.Config, config.Overrides{
		FPS:            flagFPS,
		Label:          flagLabel,
		NoLabel:        flagNoLabel,
		RedrawThrottle: flagThrottle,
		SettleFrames:   flagSettle,
	})
	if err := v.Config.Validate(); err != nil {
		return registry.Variant{}, fmt.Errorf("invalid config after overrides: %w", err)
	}
	return v, nil
}

// newLogger builds the logger for a command. fallback receives the logs
// when no --log-file is given. The returned closer is never nil.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closer := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
