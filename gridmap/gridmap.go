package gridmap

import "fmt"

// New constructs a GridMap of the given size. The walls slice is copied,
// so later mutation by the caller does not affect the map.
// Returns ErrEmptyGrid for non-positive dimensions, ErrOutOfBounds if any
// wall or endpoint lies outside the grid, and ErrBlockedEndpoint if start
// or end coincides with a wall.
// Complexity: O(W×H + len(walls)).
func New(width, height int, walls []Position, start, end Position) (*GridMap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	m := &GridMap{
		width:  width,
		height: height,
		walls:  make([]bool, width*height),
		start:  start,
		end:    end,
	}
	for _, w := range walls {
		if !m.InBounds(w) {
			return nil, fmt.Errorf("%w: wall %s", ErrOutOfBounds, w)
		}
		i := m.Index(w)
		if !m.walls[i] {
			m.walls[i] = true
			m.wallCount++
		}
	}
	for _, p := range [2]Position{start, end} {
		if !m.InBounds(p) {
			return nil, fmt.Errorf("%w: endpoint %s", ErrOutOfBounds, p)
		}
		if m.walls[m.Index(p)] {
			return nil, fmt.Errorf("%w: %s", ErrBlockedEndpoint, p)
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *GridMap) Width() int { return m.width }

// Height returns the number of rows.
func (m *GridMap) Height() int { return m.height }

// Start returns the start position.
func (m *GridMap) Start() Position { return m.start }

// End returns the end position.
func (m *GridMap) End() Position { return m.end }

// Cells returns Width×Height, the size of any dense per-cell table.
func (m *GridMap) Cells() int { return m.width * m.height }

// InBounds reports whether p lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (m *GridMap) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// IsWall reports whether p is a wall. Out-of-bounds queries return false
// rather than panicking; callers that care must check InBounds first.
// Complexity: O(1).
func (m *GridMap) IsWall(p Position) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.walls[m.Index(p)]
}

// IsOpen reports whether p is in bounds and not a wall.
func (m *GridMap) IsOpen(p Position) bool {
	return m.InBounds(p) && !m.walls[m.Index(p)]
}

// Neighbors4 returns the in-bounds orthogonal neighbors of p, each paired
// with the heading that reaches it, in clockwise order from North.
// Walls are not filtered: the cheat search needs to inspect them.
func (m *GridMap) Neighbors4(p Position) []Step {
	out := make([]Step, 0, 4)
	for _, d := range Directions {
		q := p.Step(d, 1)
		if m.InBounds(q) {
			out = append(out, Step{Pos: q, Dir: d})
		}
	}
	return out
}

// Index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (m *GridMap) Index(p Position) int {
	return p.Y*m.width + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (m *GridMap) Coordinate(idx int) Position {
	return Position{X: idx % m.width, Y: idx / m.width}
}

// Open returns the number of non-wall cells.
func (m *GridMap) Open() int {
	return m.Cells() - m.wallCount
}

// Walls returns every wall position in row-major order.
func (m *GridMap) Walls() []Position {
	out := make([]Position, 0, m.wallCount)
	for i, w := range m.walls {
		if w {
			out = append(out, m.Coordinate(i))
		}
	}
	return out
}

