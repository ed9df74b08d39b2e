package gridmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxRowBytes bounds a single row read by Parse.
const MaxRowBytes = 16 << 20

// Parse reads a newline-separated text grid from r.
// See ParseLines for the accepted format. A row longer than MaxRowBytes
// wraps ErrMalformedInput and bufio.ErrTooLong.
func Parse(r io.Reader) (*GridMap, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxRowBytes)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, malformed(err, "row exceeds %d bytes", MaxRowBytes)
		}
		return nil, fmt.Errorf("gridmap: read grid: %w", err)
	}
	return ParseLines(lines)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*GridMap, error) {
	return Parse(strings.NewReader(s))
}

// ParseLines builds a GridMap from rows of equal length.
//
//	'#' wall, 'S' start (exactly one), 'E' end (exactly one), anything else open.
//
// Trailing '\r' and trailing blank lines are ignored; a blank line inside
// the grid is a ragged row. Every failure wraps ErrMalformedInput together
// with the specific sentinel (ErrEmptyGrid, ErrNonRectangular, ...).
// Complexity: O(W×H).
func ParseLines(lines []string) (*GridMap, error) {
	rows := make([][]rune, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []rune(strings.TrimRight(l, "\r")))
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, malformed(ErrEmptyGrid, "")
	}

	w, h := len(rows[0]), len(rows)
	var (
		walls              []Position
		start, end         Position
		haveStart, haveEnd bool
	)
	for y, row := range rows {
		if len(row) != w {
			return nil, malformed(ErrNonRectangular, "row %d has %d columns, want %d", y, len(row), w)
		}
		for x, c := range row {
			p := Position{X: x, Y: y}
			switch c {
			case SymbolWall:
				walls = append(walls, p)
			case SymbolStart:
				if haveStart {
					return nil, malformed(ErrDuplicateStart, "at %s, first at %s", p, start)
				}
				start, haveStart = p, true
			case SymbolEnd:
				if haveEnd {
					return nil, malformed(ErrDuplicateEnd, "at %s, first at %s", p, end)
				}
				end, haveEnd = p, true
			}
		}
	}
	if !haveStart {
		return nil, malformed(ErrMissingStart, "")
	}
	if !haveEnd {
		return nil, malformed(ErrMissingEnd, "")
	}

	m, err := New(w, h, walls, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return m, nil
}

func malformed(cause error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%w: %w", ErrMalformedInput, cause)
	}
	return fmt.Errorf("%w: %w: %s", ErrMalformedInput, cause, fmt.Sprintf(format, args...))
}
