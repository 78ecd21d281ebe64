package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/liquid-cat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <variant>",
	Short: "Print the resolved config as YAML",
	Long: `Print the configuration a variant would run with: defaults, the
config file search path and the command-line overrides merged.

The output is a complete config file; save it, edit it and pass it back
with --config.

Examples:
  liquidcat config liquid
  liquidcat config loader --fps 30 > ~/.liquidcat/configs/loader.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	v, err := loadVariant(args[0])
	if err != nil {
		return err
	}
	data, err := config.Marshal(v.Config)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
