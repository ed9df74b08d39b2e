// Package render draws a grid and its optimal tiles for a terminal.
package render

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/gridpath/gridmap"
)

// TileRune marks a cell on some optimal path.
const TileRune = 'O'

// Palette of the overlay.
const (
	wallColor  = "#4b5563"
	tileColor  = "#22c55e"
	startColor = "#818cf8"
	endColor   = "#f472b6"
)

// Renderer writes coloured grids. With colour disabled the output equals
// gridmap.GridMap.Render.
type Renderer struct {
	out *termenv.Output
}

// New returns a Renderer for w. When color is false, or w is not a colour
// terminal, no escape sequences are emitted.
func New(w io.Writer, color bool) *Renderer {
	if !color {
		return &Renderer{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
	}
	return &Renderer{out: termenv.NewOutput(w)}
}

// NewWithProfile forces a colour profile, regardless of the terminal.
func NewWithProfile(w io.Writer, p termenv.Profile) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, termenv.WithProfile(p))}
}

// Grid returns m with tiles marked by TileRune.
func (r *Renderer) Grid(m *gridmap.GridMap, tiles []gridmap.Position) string {
	overlay := make(map[gridmap.Position]rune, len(tiles))
	for _, p := range tiles {
		overlay[p] = TileRune
	}

	var b strings.Builder
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			b.WriteString(r.cell(m.Symbol(gridmap.Position{X: x, Y: y}, overlay)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Print writes Grid to the Renderer's output.
func (r *Renderer) Print(m *gridmap.GridMap, tiles []gridmap.Position) error {
	_, err := io.WriteString(r.out, r.Grid(m, tiles))
	return err
}

func (r *Renderer) cell(c rune) string {
	s := r.out.String(string(c))
	switch c {
	case gridmap.SymbolWall:
		s = s.Foreground(r.out.Color(wallColor))
	case gridmap.SymbolStart:
		s = s.Foreground(r.out.Color(startColor)).Bold()
	case gridmap.SymbolEnd:
		s = s.Foreground(r.out.Color(endColor)).Bold()
	case TileRune:
		s = s.Foreground(r.out.Color(tileColor))
	default:
		return string(c)
	}
	return s.String()
}
