// Package gridmap defines core types and sentinel errors
// for the gridmap subpackage of github.com/katalvlaran/gridpath.
package gridmap

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrMalformedInput is wrapped by every loader failure so callers can
	// reject bad input with a single errors.Is check.
	ErrMalformedInput = errors.New("gridmap: malformed input")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrMissingStart indicates no 'S' marker was found.
	ErrMissingStart = errors.New("gridmap: start marker 'S' not found")
	// ErrDuplicateStart indicates more than one 'S' marker.
	ErrDuplicateStart = errors.New("gridmap: duplicate start marker 'S'")
	// ErrMissingEnd indicates no 'E' marker was found.
	ErrMissingEnd = errors.New("gridmap: end marker 'E' not found")
	// ErrDuplicateEnd indicates more than one 'E' marker.
	ErrDuplicateEnd = errors.New("gridmap: duplicate end marker 'E'")
	// ErrOutOfBounds indicates a wall, start or end outside the grid.
	ErrOutOfBounds = errors.New("gridmap: position out of bounds")
	// ErrBlockedEndpoint indicates start or end placed on a wall.
	ErrBlockedEndpoint = errors.New("gridmap: start or end is a wall")
)

// Grid symbols understood by the loader. Every other rune is open floor.
const (
	SymbolWall  = '#'
	SymbolOpen  = '.'
	SymbolStart = 'S'
	SymbolEnd   = 'E'
)

// Position is an immutable (column, row) coordinate.
type Position struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the position n cells away from p in direction d.
func (p Position) Step(d Direction, n int) Position {
	dx, dy := d.Offset()
	return Position{X: p.X + dx*n, Y: p.Y + dy*n}
}

// String formats p as "x,y".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Less reports whether p precedes q in row-major order (by Y, then X).
func (p Position) Less(q Position) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Direction is one of the four axis-aligned headings, in clockwise order.
type Direction uint8

const (
	// North points toward row 0.
	North Direction = iota
	// East points toward increasing columns.
	East
	// South points toward increasing rows.
	South
	// West points toward column 0.
	West
)

// Directions lists every heading in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

// offsets[d] is the (dx, dy) unit vector of heading d.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Offset returns the unit vector of d.
func (d Direction) Offset() (dx, dy int) {
	return offsets[d&3][0], offsets[d&3][1]
}

// Opposite returns the heading rotated by 180°.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// TurnsTo returns the minimum number of 90° rotations needed to face other:
// 0 if equal, 2 if opposite, 1 otherwise.
func (d Direction) TurnsTo(other Direction) int {
	diff := int(d&3) - int(other&3)
	if diff < 0 {
		diff = -diff
	}
	if diff == 3 {
		return 1
	}
	return diff
}

// String returns the single-letter compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection accepts a compass letter or full name in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return North, fmt.Errorf("gridmap: unknown direction %q", s)
}

// Step pairs an adjacent cell with the heading that reaches it.
type Step struct {
	Pos Position
	Dir Direction
}

// GridMap is an immutable obstacle and bounds lookup built once from a parsed grid.
// Width and Height define dimensions; walls is a dense row-major table.
type GridMap struct {
	width, height int
	walls         []bool
	wallCount     int
	start, end    Position
}
