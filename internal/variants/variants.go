// Package variants registers the loader snapshots: each one is a subset of
// the full animation with its own defaults.
package variants

import (
	"github.com/vovakirdan/liquid-cat/internal/config"
	"github.com/vovakirdan/liquid-cat/internal/registry"
)

func init() {
	register(config.VariantPinwheel, "Pinwheel", "Contracting four-arc pinwheel, stops when it closes")
	register(config.VariantLoader, "Loader", "Pinwheel into gradient loader ring, stops once the ring settles")
	register(config.VariantLiquid, "Liquid Cat", "Full loader with label and idle pulse")
}

func register(id, title, description string) {
	registry.Register(registry.VariantInfo{
		ID:          id,
		Title:       title,
		Description: description,
	}, func(customPath string) (config.LoaderConfig, error) {
		return config.Load(id, customPath)
	})
}
