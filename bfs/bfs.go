// Package bfs provides breadth-first search over a gridmap.GridMap,
// returning uniform-step distances, parent links, and visit order.
//
// BFS explores open cells in increasing step count from an origin,
// with an optional visit hook, depth limiting and a step budget.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
)

// walker encapsulates mutable BFS state.
type walker struct {
	m     *gridmap.GridMap
	opts  Options
	ctx   context.Context
	queue []int // row-major indices; head advances instead of reslicing
	head  int
	res   *Field
}

// Distances runs breadth-first search on m from the origin cell,
// applying any number of functional Options. Walls are impassable and
// every move costs one step regardless of direction.
// Returns ErrNilGrid or ErrStartBlocked for invalid input,
// ErrOptionViolation for bad options, ErrBudgetExceeded, the context error,
// or any user-supplied hook error.
func Distances(m *gridmap.GridMap, from gridmap.Position, opts ...Option) (*Field, error) {
	if m == nil {
		return nil, ErrNilGrid
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.IsOpen(from) {
		return nil, fmt.Errorf("%w: %s", ErrStartBlocked, from)
	}

	// Prepare walker
	n := m.Cells()
	w := &walker{
		m:     m,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, m.Open()),
		res: &Field{
			m:      m,
			origin: from,
			dist:   make([]int, n),
			parent: make([]int, n),
			order:  make([]gridmap.Position, 0, m.Open()),
		},
	}
	for i := range w.res.dist {
		w.res.dist[i] = unreached
		w.res.parent[i] = -1
	}

	// Seed queue with the origin (no parent)
	w.enqueue(m.Index(from), 0, -1)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// Steps returns the uniform-step distance from m.Start() to m.End().
// Returns ErrNoPath if End is unreachable, plus any error of Distances.
func Steps(m *gridmap.GridMap, opts ...Option) (int, error) {
	if m == nil {
		return 0, ErrNilGrid
	}
	f, err := Distances(m, m.Start(), opts...)
	if err != nil {
		return 0, err
	}
	d, ok := f.At(m.End())
	if !ok {
		return 0, ErrNoPath
	}

	return d, nil
}

// enqueue records the depth and parent of idx and adds it to the queue.
func (w *walker) enqueue(idx, d, parent int) {
	w.res.dist[idx] = d
	w.res.parent[idx] = parent
	w.queue = append(w.queue, idx)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		idx := w.queue[w.head]
		w.head++
		if err := w.visit(idx); err != nil {
			return err
		}
		w.enqueueNeighbors(idx)
	}
	return nil
}

// visit records the cell in the visit order, enforces the budget and
// calls OnVisit.
func (w *walker) visit(idx int) error {
	if w.opts.StepBudget > 0 && len(w.res.order) >= w.opts.StepBudget {
		return ErrBudgetExceeded
	}
	p := w.m.Coordinate(idx)
	w.res.order = append(w.res.order, p)
	if err := w.opts.OnVisit(p, w.res.dist[idx]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", p, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen open neighbor.
func (w *walker) enqueueNeighbors(idx int) {
	nextDepth := w.res.dist[idx] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, s := range w.m.Neighbors4(w.m.Coordinate(idx)) {
		if w.m.IsWall(s.Pos) {
			continue
		}
		// first time seen?
		nidx := w.m.Index(s.Pos)
		if w.res.dist[nidx] == unreached {
			w.enqueue(nidx, nextDepth, idx)
		}
	}
}
