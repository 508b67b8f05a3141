package tui

import (
	"image/color"

	"galton/internal/core"

	"github.com/gdamore/tcell/v2"
)

// upperHalf shows the top frame row in the foreground colour and the bottom
// row in the background colour, packing two rows into one terminal line.
const upperHalf = '▀'

// canvas is the subset of tcell.Screen the drawing code needs.
type canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (int, int)
}

func paletteColors(palette []color.RGBA) []tcell.Color {
	out := make([]tcell.Color, len(palette))
	for i, c := range palette {
		out[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return out
}

func colorAt(colors []tcell.Color, v uint8) tcell.Color {
	if len(colors) == 0 {
		if v == 0 {
			return tcell.ColorBlack
		}
		return tcell.ColorWhite
	}
	idx := int(v)
	if idx >= len(colors) {
		idx = len(colors) - 1
	}
	return colors[idx]
}

// frameRows returns the number of terminal rows a frame of height h needs.
func frameRows(h int) int { return (h + 1) / 2 }

// drawFrame paints cells with the top-left corner at (ox, oy).
func drawFrame(c canvas, cells []uint8, size core.Size, colors []tcell.Color, ox, oy int) {
	if len(cells) != size.W*size.H {
		return
	}
	for row := 0; row < frameRows(size.H); row++ {
		top := row * 2
		bottom := top + 1
		for x := 0; x < size.W; x++ {
			fg := colorAt(colors, cells[top*size.W+x])
			bg := colorAt(colors, 0)
			if bottom < size.H {
				bg = colorAt(colors, cells[bottom*size.W+x])
			}
			c.SetContent(ox+x, oy+row, upperHalf, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}

func drawText(c canvas, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.SetContent(x, y, r, nil, style)
		x++
	}
}

// statusText returns the sim's status line with a pause marker.
func statusText(sim core.Sim, paused bool) string {
	line := sim.Name()
	if provider, ok := sim.(core.StatusProvider); ok {
		line = provider.StatusLine()
	}
	if paused {
		line += "  [paused]"
	}
	return line
}

// origin centres a frame of the given size in a terminal of tw x th cells,
// leaving the last row for the status line.
func origin(size core.Size, tw, th int) (int, int) {
	ox := (tw - size.W) / 2
	oy := (th - 1 - frameRows(size.H)) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}
	return ox, oy
}
