// Package cheat counts the one-wall relaxations ("cheats") that shorten the
// uniform-step path from Start to End by at least a given margin.
//
// The search space has two structurally identical layers: Unrelaxed and
// Relaxed. Ordinary moves cost 1 inside either layer; a relaxation edge of
// cost RelaxCost leads from an open cell p in Unrelaxed, over exactly one
// wall, to the open cell q two steps away in Relaxed. Because no edge leads
// back, the cheapest path through a given edge (p, q) is
//
//	fromStart[p] + RelaxCost + toEnd[q]
//
// where fromStart is the Unrelaxed layer searched forward from Start and
// toEnd the Relaxed layer searched backward from End (moves are symmetric).
// Both layers are memoized per cell, so the whole search is O(W×H) and no
// path history is kept. Each (p, q) pair is one edge, so a pair counts once
// however many paths use it.
package cheat

import (
	"sort"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Count returns the number of distinct (entry, exit) pairs whose best path
// cost is at most baseline - minSaving.
//
// baseline is the uniform-step Start→End distance (see bfs.Steps). A
// minSaving greater than baseline yields 0. Returns ErrNilGrid,
// ErrNegativeSaving, ErrNegativeBaseline, or an error of the layer searches.
func Count(m *gridmap.GridMap, baseline, minSaving int, opts ...Option) (int, error) {
	n := 0
	err := walk(m, baseline, minSaving, opts, func(Cheat, int) { n++ })
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Find returns every qualifying pair with its saving, sorted by saving
// descending, then by entry and exit in row-major order.
func Find(m *gridmap.GridMap, baseline, minSaving int, opts ...Option) ([]Found, error) {
	var out []Found
	err := walk(m, baseline, minSaving, opts, func(c Cheat, saving int) {
		out = append(out, Found{Cheat: c, Saving: saving})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Saving != b.Saving {
			return a.Saving > b.Saving
		}
		if a.Entry != b.Entry {
			return a.Entry.Less(b.Entry)
		}
		return a.Exit.Less(b.Exit)
	})
	return out, nil
}

// Histogram groups qualifying pairs by saving: saving → number of pairs.
func Histogram(m *gridmap.GridMap, baseline, minSaving int, opts ...Option) (map[int]int, error) {
	out := make(map[int]int)
	err := walk(m, baseline, minSaving, opts, func(_ Cheat, saving int) { out[saving]++ })
	if err != nil {
		return nil, err
	}
	return out, nil
}

// walk validates the inputs, builds both layers and calls emit for every
// relaxation edge within the threshold.
func walk(m *gridmap.GridMap, baseline, minSaving int, opts []Option, emit func(Cheat, int)) error {
	if m == nil {
		return ErrNilGrid
	}
	if minSaving < 0 {
		return ErrNegativeSaving
	}
	if baseline < 0 {
		return ErrNegativeBaseline
	}
	// Guarded subtraction: nothing can save more than the whole baseline.
	if minSaving > baseline {
		return nil
	}
	threshold := baseline - minSaving

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fromStart, err := bfs.Distances(m, m.Start(), o.layer()...)
	if err != nil {
		return err
	}
	toEnd, err := bfs.Distances(m, m.End(), o.layer()...)
	if err != nil {
		return err
	}

	// Every entry must be reachable in the Unrelaxed layer; visit them in
	// BFS order so the cheap prefix bound prunes early.
	for _, p := range fromStart.Order() {
		ds, _ := fromStart.At(p)
		if ds+RelaxCost > threshold {
			// Order is non-decreasing in ds; no later entry can qualify.
			break
		}
		for _, d := range gridmap.Directions {
			if !m.IsWall(p.Step(d, 1)) {
				continue
			}
			q := p.Step(d, 2)
			if !m.IsOpen(q) {
				continue
			}
			de, ok := toEnd.At(q)
			if !ok {
				continue
			}
			if cost := ds + RelaxCost + de; cost <= threshold {
				emit(Cheat{Entry: p, Exit: q}, baseline-cost)
			}
		}
	}
	return nil
}
