package gridmap

import "strings"

// Render returns the grid as text, one row per line with a trailing newline.
// Walls print as '#', start as 'S', end as 'E' and open cells as '.'.
// An overlay rune replaces the '.' of an open cell; walls and endpoints win.
func (m *GridMap) Render(overlay map[Position]rune) string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			b.WriteRune(m.Symbol(Position{X: x, Y: y}, overlay))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Symbol returns the rune Render prints at p.
func (m *GridMap) Symbol(p Position, overlay map[Position]rune) rune {
	switch {
	case m.IsWall(p):
		return SymbolWall
	case p == m.start:
		return SymbolStart
	case p == m.end:
		return SymbolEnd
	}
	if r, ok := overlay[p]; ok {
		return r
	}
	return SymbolOpen
}
