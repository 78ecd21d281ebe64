package core

// Viewport describes a host surface in layout pixels plus its device pixel
// density. The loader works in device pixels: Width*PixelRatio by
// Height*PixelRatio.
type Viewport struct {
	Width      int     // Layout width
	Height     int     // Layout height
	PixelRatio float64 // Device pixels per layout pixel (0 means 1)
}

// Ratio returns the pixel ratio, defaulting to 1.
func (v Viewport) Ratio() float64 {
	if v.PixelRatio <= 0 {
		return 1
	}
	return v.PixelRatio
}

// Scaled returns the device-pixel size of the viewport.
func (v Viewport) Scaled() (w, h float64) {
	r := v.Ratio()
	return float64(Max(v.Width, 0)) * r, float64(Max(v.Height, 0)) * r
}

// Empty reports whether the viewport has no drawable area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// RuntimeConfig contains configuration passed to hosts at startup.
type RuntimeConfig struct {
	ScreenW    int // Screen width in characters
	ScreenH    int // Screen height in characters
	TickRate   int // Frames per second (default 60)
	CellPixels int // Layout pixels per half-block pixel
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		CellPixels: 8,
	}
}

// Viewport maps the terminal grid to a layout viewport.
// Every cell holds two vertically stacked half-block pixels, so the raster
// is ScreenW x 2*ScreenH pixels and each pixel spans CellPixels layout units.
func (c RuntimeConfig) Viewport() Viewport {
	px := c.CellPixels
	if px <= 0 {
		px = 1
	}
	return Viewport{
		Width:      c.ScreenW * px,
		Height:     c.ScreenH * 2 * px,
		PixelRatio: 1,
	}
}
