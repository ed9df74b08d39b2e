// Package dijkstra defines core types and configuration options
// for the oriented shortest-path search over a gridmap.GridMap.
//
// The search graph is implicit: each node is a State (cell, facing) and each
// edge moves one cell, costing 1 plus TurnPenalty per 90° rotation needed to
// face the direction of travel.
//
// Options:
//
//	– WithTiles:        collect every cell that lies on at least one optimal path.
//	– WithStartFacing:  heading at the start cell (default East).
//	– WithMaxCost:      states costlier than this are not explored.
//	– WithStepBudget:   abort with ErrBudgetExceeded after this many finalizations.
//	– WithContext:      cancellation, checked once per frontier pop.
//	– WithOnFinalize:   hook invoked for every finalized state.
//
// Errors (sentinel):
//
//	– ErrNilGrid        if the provided grid pointer is nil.
//	– ErrNoPath         if the end cell is unreachable.
//	– ErrBudgetExceeded if the step budget ran out before the search finished.
//	– ErrBadMaxCost     if MaxCost < 0.
//	– ErrBadBudget      if StepBudget < 0.
//	– ErrBadFacing      if StartFacing is not a valid Direction.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *gridmap.GridMap was passed to Solve.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNoPath indicates the end cell was never finalized: no route exists
	// (or none within MaxCost). Callers must check for it before using a cost.
	ErrNoPath = errors.New("dijkstra: no path from start to end")

	// ErrBudgetExceeded indicates the search finalized more states than
	// StepBudget allows.
	ErrBudgetExceeded = errors.New("dijkstra: step budget exceeded")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadBudget indicates that StepBudget was set to a negative value.
	ErrBadBudget = errors.New("dijkstra: StepBudget must be non-negative")

	// ErrBadFacing indicates that StartFacing is not one of the four headings.
	ErrBadFacing = errors.New("dijkstra: StartFacing must be North, East, South or West")
)

// TurnPenalty is the cost of each 90° rotation folded into a move.
const TurnPenalty int64 = 1000

// EdgeCost returns the weight of moving one cell in direction move while
// currently facing facing: 1 + TurnPenalty*facing.TurnsTo(move).
// There is no separate rotate-in-place action, so the result is one of
// 1, 1001 or 2001.
func EdgeCost(facing, move gridmap.Direction) int64 {
	return 1 + TurnPenalty*int64(facing.TurnsTo(move))
}

// State is a node of the search graph. Two States on the same cell with
// different facings are distinct and are finalized independently.
type State struct {
	Pos    gridmap.Position
	Facing gridmap.Direction
}

// String formats the state as "x,y/F".
func (s State) String() string {
	return fmt.Sprintf("%s/%s", s.Pos, s.Facing)
}

// Result is the outcome of Solve.
type Result struct {
	// Cost is the minimum cost from start to end.
	Cost int64

	// Facing is the heading of the first end state finalized at Cost.
	Facing gridmap.Direction

	// Path is one optimal route, start state first, rebuilt from parent links.
	Path []State

	// Tiles holds every cell on at least one optimal route in row-major
	// order. Nil unless WithTiles was given.
	Tiles []gridmap.Position

	// Expanded counts finalized states.
	Expanded int
}

// Options configures Solve.
type Options struct {
	Ctx          context.Context        // Cancellation; nil means never cancelled
	StartFacing  gridmap.Direction      // Heading at the start cell
	CollectTiles bool                   // Build the optimal-tile set
	MaxCost      int64                  // Maximum cost to explore
	StepBudget   int                    // Maximum finalizations; 0 = unlimited
	OnFinalize   func(s State, c int64) // Called for every finalized state

	err error // first invalid option, surfaced by Solve
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with defaults:
//
//   - Ctx:          context.Background()
//   - StartFacing:  East
//   - CollectTiles: false
//   - MaxCost:      math.MaxInt64 (no cap)
//   - StepBudget:   0 (unlimited)
//   - OnFinalize:   no-op
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		StartFacing: gridmap.East,
		MaxCost:     math.MaxInt64,
		OnFinalize:  func(State, int64) {},
	}
}

// WithTiles enables tile-collection mode: the search keeps every tied
// predecessor and continues past the first end state until all equal-cost
// end facings are finalized.
func WithTiles() Option {
	return func(o *Options) {
		o.CollectTiles = true
	}
}

// WithStartFacing sets the heading at the start cell.
// A value past West is recorded and returned by Solve as ErrBadFacing.
func WithStartFacing(d gridmap.Direction) Option {
	return func(o *Options) {
		if d > gridmap.West {
			o.fail(fmt.Errorf("%w (%d)", ErrBadFacing, d))
			return
		}
		o.StartFacing = d
	}
}

// WithMaxCost skips any state whose cost would exceed max.
// A negative value is recorded and returned by Solve as ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.fail(fmt.Errorf("%w (%d)", ErrBadMaxCost, max))
			return
		}
		o.MaxCost = max
	}
}

// WithStepBudget bounds the number of finalized states.
//
//	n > 0: abort with ErrBudgetExceeded once n states are finalized
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrBadBudget
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w (%d)", ErrBadBudget, n))
			return
		}
		o.StepBudget = n
	}
}

// WithContext sets a context checked once per frontier pop.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnFinalize registers a hook called for every finalized state, in
// non-decreasing cost order.
func WithOnFinalize(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
