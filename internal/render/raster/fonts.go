package raster

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/liquid-cat/internal/canvas"
)

// face returns the Go font face for f, parsing it on first use.
func (c *fontCache) face(f canvas.Font) (font.Face, error) {
	if face, ok := c.faces[f]; ok {
		return face, nil
	}

	ttf := goregular.TTF
	if f.Bold {
		ttf = gobold.TTF
	}
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	size := f.Size
	if size <= 0 {
		size = 10
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: font face: %w", err)
	}
	c.faces[f] = face
	return face, nil
}
