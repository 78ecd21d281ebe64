package core

import "testing"

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestViewportScaled(t *testing.T) {
	tests := []struct {
		name       string
		vp         Viewport
		expW, expH float64
	}{
		{"ratio 1", Viewport{Width: 800, Height: 600, PixelRatio: 1}, 800, 600},
		{"ratio 2", Viewport{Width: 800, Height: 600, PixelRatio: 2}, 1600, 1200},
		{"zero ratio defaults to 1", Viewport{Width: 10, Height: 20}, 10, 20},
		{"negative size clamps", Viewport{Width: -5, Height: 20}, 0, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := tc.vp.Scaled()
			if w != tc.expW || h != tc.expH {
				t.Errorf("Scaled() = (%v, %v), expected (%v, %v)", w, h, tc.expW, tc.expH)
			}
		})
	}

	if !(Viewport{Width: 0, Height: 10}).Empty() {
		t.Error("zero-width viewport should be empty")
	}
}

func TestRuntimeConfigViewport(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: 80, ScreenH: 24, CellPixels: 8}
	vp := cfg.Viewport()

	if vp.Width != 640 || vp.Height != 384 {
		t.Errorf("Viewport() = %dx%d, expected 640x384", vp.Width, vp.Height)
	}
	if vp.Ratio() != 1 {
		t.Errorf("Ratio() = %v, expected 1", vp.Ratio())
	}
}
