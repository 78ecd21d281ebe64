package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/liquid-cat/internal/canvas"
	"github.com/vovakirdan/liquid-cat/internal/core"
	"github.com/vovakirdan/liquid-cat/internal/render/raster"
)

type styleKey struct {
	fg, bg string
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	styles := make(map[styleKey]lipgloss.Style)
	styleFor := func(k styleKey) lipgloss.Style {
		st, ok := styles[k]
		if !ok {
			st = lipgloss.NewStyle().
				Foreground(lipgloss.Color(k.fg)).
				Background(lipgloss.Color(k.bg))
			styles[k] = st
		}
		return st
	}

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.Get(x, y)
			k := styleKey{fg: cell.Fg.Hex(), bg: cell.Bg.Hex()}

			var run strings.Builder
			for x < s.Width() {
				cell = s.Get(x, y)
				if cell.Fg.Hex() != k.fg || cell.Bg.Hex() != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(k).Render(run.String()))
		}
	}
	return sb.String()
}

// label is the text a frame asked to draw. The raster is too coarse for
// glyphs, so the host prints it as terminal characters instead.
type label struct {
	text  string
	color canvas.Color
	alpha float64
}

// labelFromCommands finds the last FillText of a frame with the fill color
// and alpha in effect at that point.
func labelFromCommands(cmds []canvas.Command) (label, bool) {
	var (
		out   label
		found bool
		fill  canvas.Color
		alpha = 1.0
	)
	for _, c := range cmds {
		switch c := c.(type) {
		case canvas.SetFillStyle:
			if col, ok := c.Paint.(canvas.Color); ok {
				fill = col
			}
		case canvas.SetGlobalAlpha:
			alpha = c.Alpha
		case canvas.Restore:
			alpha = 1
		case canvas.FillText:
			out = label{text: c.Text, color: fill, alpha: alpha}
			found = true
		}
	}
	return out, found
}

// drawLabel prints l centered on the screen, blended over the cells below.
func drawLabel(s *core.Screen, l label) {
	if l.text == "" || s.Height() == 0 {
		return
	}
	y := s.Height() / 2
	under := s.Get(s.Width()/2, y)
	bg := under.Bg
	if under.Rune == core.HalfBlock {
		bg = under.Fg.BlendRgb(under.Bg, 0.5)
	}
	fg := l.color.WithAlpha(l.alpha).Over(canvas.Opaque(bg))
	s.DrawTextCentered(y, l.text, fg.Clamped())
}

// textless drops FillText calls; everything else reaches the raster.
type textless struct {
	*raster.Surface
}

func (textless) FillText(string, float64, float64) {}
