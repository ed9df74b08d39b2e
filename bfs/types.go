// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridmap.GridMap.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("bfs: grid is nil")

	// ErrStartBlocked is returned when the origin is a wall or out of bounds.
	ErrStartBlocked = errors.New("bfs: origin is not an open cell")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Steps when End is unreachable from Start.
	ErrNoPath = errors.New("bfs: end unreachable")

	// ErrBudgetExceeded is returned when more cells than the step budget
	// would be visited.
	ErrBudgetExceeded = errors.New("bfs: step budget exceeded")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a cell with its step count from the
	// origin. If it returns an error, BFS aborts and propagates that error.
	OnVisit func(p gridmap.Position, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// StepBudget, if > 0, bounds the number of visited cells.
	StepBudget int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no budget (StepBudget == 0)
//   - no-op OnVisit hook
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(gridmap.Position, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p gridmap.Position, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: cells further than d steps are left unreached
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.fail(fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d))
			return
		}
		o.MaxDepth = d
	}
}

// WithStepBudget aborts with ErrBudgetExceeded once more than n cells would
// be visited. n == 0 disables the budget; n < 0 → ErrOptionViolation.
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: StepBudget cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.StepBudget = n
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// unreached marks a cell the search never visited.
const unreached = -1

// Field holds the outcome of a BFS traversal: the step count from the
// origin to every reached cell, parent links and the visit order.
// A Field is immutable once returned.
type Field struct {
	m      *gridmap.GridMap
	origin gridmap.Position
	dist   []int // row-major index → steps, unreached if never visited
	parent []int // row-major index → parent index, -1 for the origin
	order  []gridmap.Position
}

// Origin returns the cell the search started from.
func (f *Field) Origin() gridmap.Position { return f.origin }

// At returns the step count from the origin to p and whether p was reached.
// Walls and out-of-bounds positions are never reached.
func (f *Field) At(p gridmap.Position) (int, bool) {
	if !f.m.InBounds(p) {
		return 0, false
	}
	d := f.dist[f.m.Index(p)]
	if d == unreached {
		return 0, false
	}
	return d, true
}

// Reached returns the number of visited cells.
func (f *Field) Reached() int { return len(f.order) }

// Order returns the visited cells in visit sequence. The slice is a copy.
func (f *Field) Order() []gridmap.Position {
	out := make([]gridmap.Position, len(f.order))
	copy(out, f.order)
	return out
}

// PathTo reconstructs one shortest path from the origin to dest.
// Returns ErrNoPath if dest was not reached.
func (f *Field) PathTo(dest gridmap.Position) ([]gridmap.Position, error) {
	if _, ok := f.At(dest); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPath, dest)
	}
	// build reversed path
	var path []gridmap.Position
	for i := f.m.Index(dest); i >= 0; i = f.parent[i] {
		path = append(path, f.m.Coordinate(i))
	}
	// reverse to get origin → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
