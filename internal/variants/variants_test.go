package variants

import (
	"testing"

	"github.com/vovakirdan/liquid-cat/internal/config"
	"github.com/vovakirdan/liquid-cat/internal/registry"
)

func TestVariantsRegistered(t *testing.T) {
	tests := []struct {
		id        string
		stopAfter string
		label     bool
	}{
		{config.VariantPinwheel, config.StopAfterFirst, false},
		{config.VariantLoader, config.StopAfterSecond, false},
		{config.VariantLiquid, config.StopAfterThird, true},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			v, err := registry.Create(tc.id, "")
			if err != nil {
				t.Fatalf("Create(%q) error = %v", tc.id, err)
			}
			if v.Config.Timing.StopAfter != tc.stopAfter {
				t.Errorf("StopAfter = %q, expected %q", v.Config.Timing.StopAfter, tc.stopAfter)
			}
			if v.Config.Label.Enabled != tc.label {
				t.Errorf("Label.Enabled = %v, expected %v", v.Config.Label.Enabled, tc.label)
			}
		})
	}

	if got := len(registry.List()); got != 3 {
		t.Errorf("List() has %d variants, expected 3", got)
	}
}
