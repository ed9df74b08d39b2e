package cheat

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors for the relaxation search.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("cheat: grid is nil")

	// ErrNegativeSaving is returned when minSaving < 0.
	ErrNegativeSaving = errors.New("cheat: minimum saving cannot be negative")

	// ErrNegativeBaseline is returned when baseline < 0.
	ErrNegativeBaseline = errors.New("cheat: baseline cannot be negative")
)

// RelaxCost is the fixed cost of phasing through one wall: two steps,
// no turn penalty.
const RelaxCost = 2

// Cheat identifies one relaxation: Entry is the open cell the traveler
// stands on, Exit the open cell two steps beyond a single wall in a
// straight line.
type Cheat struct {
	Entry gridmap.Position
	Exit  gridmap.Position
}

// Wall returns the cell phased through.
func (c Cheat) Wall() gridmap.Position {
	return gridmap.Position{X: (c.Entry.X + c.Exit.X) / 2, Y: (c.Entry.Y + c.Exit.Y) / 2}
}

// String renders the pair as "x,y->x,y".
func (c Cheat) String() string {
	return fmt.Sprintf("%s->%s", c.Entry, c.Exit)
}

// Found is a qualifying relaxation together with the steps it saves
// against the baseline.
type Found struct {
	Cheat
	Saving int
}

// Option configures the relaxation search via functional arguments.
type Option func(*Options)

// Options is forwarded to both layer searches.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// StepBudget, if > 0, bounds the cells visited by each layer search.
	// Negative values surface as bfs.ErrOptionViolation.
	StepBudget int
}

// DefaultOptions returns a background context and no budget.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStepBudget bounds each layer search to n visited cells.
func WithStepBudget(n int) Option {
	return func(o *Options) {
		o.StepBudget = n
	}
}

func (o Options) layer() []bfs.Option {
	return []bfs.Option{bfs.WithContext(o.Ctx), bfs.WithStepBudget(o.StepBudget)}
}
