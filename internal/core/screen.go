package core

import (
	"image"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HalfBlock is the upper-half block used to show two pixels per cell.
const HalfBlock = '▀'

// Cell is one character cell with its foreground and background colors.
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
}

// Screen is a 2D cell buffer.
// It decouples drawing from the terminal: hosts fill it from a raster image
// and overlay text, the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the next
// frame repaints every cell anyway.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// FillFromImage paints the screen from img using half blocks: cell (x, y)
// shows pixel (x, 2y) as foreground and (x, 2y+1) as background.
// Pixels outside img stay black.
func (s *Screen) FillFromImage(img image.Image) {
	b := img.Bounds()
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.cells[y][x] = Cell{
				Rune: HalfBlock,
				Fg:   pixel(img, b.Min.X+x, b.Min.Y+2*y),
				Bg:   pixel(img, b.Min.X+x, b.Min.Y+2*y+1),
			}
		}
	}
}

func pixel(img image.Image, x, y int) colorful.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return colorful.Color{}
	}
	c, _ := colorful.MakeColor(img.At(x, y))
	return c
}

// DrawText writes a string horizontally starting at (x, y) in color fg.
// The background of each covered cell is kept; a half-block cell keeps the
// average of its two pixels. Characters beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg colorful.Color) {
	i := 0
	for _, r := range text {
		cell := s.Get(x+i, y)
		bg := cell.Bg
		if cell.Rune == HalfBlock {
			bg = cell.Fg.BlendRgb(cell.Bg, 0.5)
		}
		s.Set(x+i, y, Cell{Rune: r, Fg: fg, Bg: bg})
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, fg colorful.Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, fg)
}

// String converts the screen buffer to plain text, one row per line.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}
