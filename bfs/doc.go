// Package bfs provides breadth-first search over a gridmap.GridMap,
// returning uniform-step distances, parent links and visit order.
//
// What
//
//   - Explore open cells in non-decreasing step count from an origin.
//   - Distances returns a Field containing:
//   - At(p): steps from the origin to p, and whether p was reached
//   - Order(): visit sequence
//   - PathTo(dest): one shortest path via parent links
//   - Steps returns the Start→End step count, the baseline of the cheat search.
//   - Walls are impassable; direction and turns are irrelevant.
//
// Determinism
//
//	Neighbors are enqueued in clockwise order from North, so the visit
//	sequence and the reconstructed paths are fully reproducible.
//
// Complexity (C = Width×Height)
//
//   - Time:   O(C)   (each cell enqueued at most once, four neighbors each)
//   - Memory: O(C)   (dense distance and parent tables, queue, order)
//
// Usage
//
//	f, err := bfs.Distances(m, m.End())
//	if err != nil {
//	    // handle one of:
//	    // ErrNilGrid, ErrStartBlocked, ErrOptionViolation, ErrBudgetExceeded,
//	    // context errors or hook errors
//	}
//	d, ok := f.At(p)
//
//	baseline, err := bfs.Steps(m, bfs.WithContext(ctx), bfs.WithStepBudget(1<<20))
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no depth limit, no budget.
//   - WithContext(ctx):     set a custom context for cancellation.
//   - WithMaxDepth(d):      leave cells further than d steps unreached.
//   - WithStepBudget(n):    abort after n visited cells.
//   - WithOnVisit(fn):      hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrStartBlocked     if the origin is a wall or out of bounds.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath           from Steps when End is unreachable.
//   - ErrBudgetExceeded   if the step budget is exhausted.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
