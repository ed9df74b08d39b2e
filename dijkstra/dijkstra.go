// Package dijkstra implements best-first (Dijkstra) search over oriented grid
// states, with an optional mode that collects every cell on any optimal path.
//
// Complexity:
//
//   - Time:  O(S log S) where S = 4×W×H states
//   - Each state is finalized at most once.
//   - Each finalization relaxes at most 4 edges, each pushing at most one entry.
//   - Space: O(S)
//   - Dense per-state tables for cost, finalized flags and predecessors.
//   - O(S) worst-case entries in the frontier under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - States are packed as cellIndex*4 + facing, so the finalized table and
//     predecessor DAG are plain slices indexed by that handle.
//   - Frontier entries carry only the state handle; paths are rebuilt from
//     predecessor links after the search, never copied per entry.
//   - In tile mode every predecessor tied at a state's minimum cost is kept,
//     forming a DAG that is walked backwards from every optimal end state.
package dijkstra

import (
	"math"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Solve computes the minimum cost from m.Start() to m.End() over states
// (cell, facing), starting at Options.StartFacing (East by default).
//
// Returns:
//
//   - res.Cost:  the minimum cost.
//   - res.Path:  one optimal route as a sequence of states.
//   - res.Tiles: with WithTiles, every cell on at least one optimal route.
//   - err:       ErrNilGrid, an option error, ErrNoPath, ErrBudgetExceeded
//     or the context error.
//
// Each call owns its own frontier and finalized table; concurrent calls on
// the same GridMap are safe.
func Solve(m *gridmap.GridMap, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid is non-nil
	if m == nil {
		return nil, ErrNilGrid
	}

	// 3) Allocate per-call search state.
	n := m.Cells() * 4
	r := &runner{
		m:       m,
		options: cfg,
		dist:    make([]int64, n),
		done:    make([]bool, n),
		preds:   make([][]int, n),
		pq:      frontier.New[int](m.Open()),
		best:    math.MaxInt64,
		bestID:  -1,
	}

	// 4) Seed and run.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	if r.bestID < 0 {
		return nil, ErrNoPath
	}

	res := &Result{
		Cost:     r.best,
		Facing:   r.decode(r.bestID).Facing,
		Path:     r.path(r.bestID),
		Expanded: r.expanded,
	}
	if cfg.CollectTiles {
		res.Tiles = r.tiles()
	}

	return res, nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	m        *gridmap.GridMap     // The input grid; read-only.
	options  Options              // Configuration.
	dist     []int64              // State handle → best known cost.
	done     []bool               // State handle → finalized.
	preds    [][]int              // State handle → predecessors tied at dist.
	pq       *frontier.Queue[int] // Pending state handles.
	best     int64                // Cost of the first finalized end state.
	bestID   int                  // Handle of that end state, -1 if none.
	ends     []int                // End states finalized at cost == best.
	expanded int                  // Finalized state count.
}

// encode packs a state into its table handle.
func (r *runner) encode(p gridmap.Position, d gridmap.Direction) int {
	return r.m.Index(p)*4 + int(d)
}

// decode unpacks a table handle.
func (r *runner) decode(id int) State {
	return State{Pos: r.m.Coordinate(id / 4), Facing: gridmap.Direction(id % 4)}
}

// init sets every cost to +∞ and pushes the start state at cost 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
	}
	id := r.encode(r.m.Start(), r.options.StartFacing)
	r.dist[id] = 0
	r.pq.Push(id, 0)
}

// process is the main loop. It repeatedly finalizes the cheapest pending
// state and relaxes its outgoing moves.
//
// Loop termination conditions:
//
//   - The frontier becomes empty.
//   - The first end state is finalized (cost-only mode).
//   - The cheapest pending cost exceeds the optimum (tile mode).
//   - The cheapest pending cost exceeds MaxCost.
func (r *runner) process() error {
	cfg := r.options
	end := r.m.End()
	for {
		// cancellation check (once per pop)
		select {
		case <-cfg.Ctx.Done():
			return cfg.Ctx.Err()
		default:
		}

		// 1) Pop the cheapest entry.
		id, d, ok := r.pq.Pop()
		if !ok {
			return nil
		}

		// 2) Stale entry: already finalized at a cost ≤ d.
		if r.done[id] {
			continue
		}

		// 3) Nothing left can tie the optimum or fit under MaxCost.
		if d > r.best || d > cfg.MaxCost {
			return nil
		}

		if cfg.StepBudget > 0 && r.expanded >= cfg.StepBudget {
			return ErrBudgetExceeded
		}

		// 4) Finalize.
		r.done[id] = true
		r.expanded++
		s := r.decode(id)
		cfg.OnFinalize(s, d)

		// 5) End reached. Dijkstra finalizes in non-decreasing cost order,
		//    so the first end state carries the optimum.
		if s.Pos == end {
			if r.bestID < 0 {
				r.best, r.bestID = d, id
			}
			r.ends = append(r.ends, id)
			if !cfg.CollectTiles {
				return nil
			}
			// Leaving the end cell and coming back can never tie the optimum.
			continue
		}

		// 6) Relax outgoing moves.
		r.relax(id, s, d)
	}
}

// relax examines the four moves out of s. A strictly cheaper arrival replaces
// the neighbor's predecessor list; in tile mode an equal-cost arrival is
// appended to it.
func (r *runner) relax(id int, s State, d int64) {
	for _, step := range r.m.Neighbors4(s.Pos) {
		if r.m.IsWall(step.Pos) {
			continue
		}
		nid := r.encode(step.Pos, step.Dir)
		if r.done[nid] {
			continue
		}

		nd := d + EdgeCost(s.Facing, step.Dir)
		if nd > r.options.MaxCost {
			continue
		}

		switch {
		case nd < r.dist[nid]:
			r.dist[nid] = nd
			r.preds[nid] = append(r.preds[nid][:0], id)
			r.pq.Push(nid, nd)
		case nd == r.dist[nid] && r.options.CollectTiles:
			r.preds[nid] = append(r.preds[nid], id)
		}
	}
}

// path walks first-predecessor links back from id to the start state.
func (r *runner) path(id int) []State {
	var rev []State
	for {
		rev = append(rev, r.decode(id))
		if len(r.preds[id]) == 0 {
			break
		}
		id = r.preds[id][0]
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// tiles back-traces the predecessor DAG from every optimal end state and
// returns the union of visited cells in row-major order.
func (r *runner) tiles() []gridmap.Position {
	seen := make([]bool, len(r.dist))
	onPath := make([]bool, r.m.Cells())
	stack := make([]int, 0, len(r.ends))
	for _, id := range r.ends {
		if r.dist[id] == r.best && !seen[id] {
			seen[id] = true
			stack = append(stack, id)
		}
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		onPath[id/4] = true
		for _, p := range r.preds[id] {
			if !seen[p] {
				seen[p] = true
				stack = append(stack, p)
			}
		}
	}

	var out []gridmap.Position
	for i, ok := range onPath {
		if ok {
			out = append(out, r.m.Coordinate(i))
		}
	}
	return out
}
