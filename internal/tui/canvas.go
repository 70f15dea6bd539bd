package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/game"
)

// canvas is a fixed-size cell grid the table surface is painted onto. The
// engine works in continuous coordinates; cells are addressed by rounding.
type canvas struct {
	w, h  int
	runes []rune
	style []*lipgloss.Style
}

func newCanvas(w, h int) *canvas {
	c := &canvas{
		w:     w,
		h:     h,
		runes: make([]rune, w*h),
		style: make([]*lipgloss.Style, w*h),
	}
	for i := range c.runes {
		c.runes[i] = ' '
	}
	return c
}

// put writes s starting at (x, y), clipped to the canvas.
func (c *canvas) put(x, y int, s string, style *lipgloss.Style) {
	if y < 0 || y >= c.h {
		return
	}
	for i, r := range []rune(s) {
		cx := x + i
		if cx < 0 || cx >= c.w {
			continue
		}
		idx := y*c.w + cx
		c.runes[idx] = r
		c.style[idx] = style
	}
}

// putAt writes s at a continuous engine position.
func (c *canvas) putAt(p game.Point, s string, style *lipgloss.Style) {
	c.put(int(p.X+0.5), int(p.Y+0.5), s, style)
}

// frame draws a rectangular border around a zone.
func (c *canvas) frame(r game.Rect, style *lipgloss.Style) {
	x, y := int(r.X), int(r.Y)
	w, h := int(r.W), int(r.H)
	if w < 2 || h < 2 {
		return
	}
	c.put(x, y, "┌"+strings.Repeat("─", w-2)+"┐", style)
	c.put(x, y+h-1, "└"+strings.Repeat("─", w-2)+"┘", style)
	for i := 1; i < h-1; i++ {
		c.put(x, y+i, "│", style)
		c.put(x+w-1, y+i, "│", style)
	}
}

// String renders the grid, styling contiguous runs that share a style.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		row := y * c.w
		x := 0
		for x < c.w {
			style := c.style[row+x]
			end := x
			for end < c.w && c.style[row+end] == style {
				end++
			}
			segment := string(c.runes[row+x : row+end])
			if style != nil {
				segment = style.Render(segment)
			}
			b.WriteString(segment)
			x = end
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
