package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration for a variant.
// Search order: customPath -> ~/.liquidcat/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default. Every file is decoded on top
// of the variant's hardcoded defaults, so partial files are fine.
func Load(variant, customPath string) (LoaderConfig, error) {
	base, ok := Default(variant)
	if !ok {
		base = DefaultLoaderConfig()
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(base, data)
		if err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(variant + ".yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(base, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", variant+".yaml")); err == nil {
		if cfg, err := Parse(base, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(variant); data != nil {
		if cfg, err := Parse(base, data); err == nil {
			return cfg, nil
		}
	}
	return base, nil // Fallback to hardcoded if embed fails
}

// Parse decodes YAML on top of base and validates the result.
func Parse(base LoaderConfig, data []byte) (LoaderConfig, error) {
	cfg := base
	// Slices are replaced, not merged.
	cfg.Bounce.Keyframes = append(cfg.Bounce.Keyframes[:0:0], base.Bounce.Keyframes...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg LoaderConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".liquidcat", "configs", filename)
}

// Overrides are command-line adjustments applied after loading.
// Zero values leave the loaded setting untouched.
type Overrides struct {
	FPS            int
	Label          string
	NoLabel        bool
	RedrawThrottle time.Duration
	SettleFrames   int
}

// ApplyOverrides modifies cfg according to o.
func ApplyOverrides(cfg *LoaderConfig, o Overrides) {
	if o.FPS > 0 {
		cfg.Timing.FPS = o.FPS
	}
	if o.Label != "" {
		cfg.Label.Text = o.Label
		cfg.Label.Enabled = true
	}
	if o.NoLabel {
		cfg.Label.Enabled = false
	}
	if o.RedrawThrottle > 0 {
		cfg.Timing.RedrawThrottle = o.RedrawThrottle
	}
	if o.SettleFrames > 0 {
		cfg.Timing.SettleFrames = o.SettleFrames
	}
}
