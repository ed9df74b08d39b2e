package dijkstra_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridmap"
)

// bruteForce enumerates simple paths from start to end. A revisit can never
// lower the cost (turn counts obey the triangle inequality and every move
// costs at least 1), so the optimum and its tiles are exact.
func bruteForce(m *gridmap.GridMap) (int64, map[gridmap.Position]bool) {
	best := int64(math.MaxInt64)
	tiles := map[gridmap.Position]bool{}
	visited := map[gridmap.Position]bool{m.Start(): true}
	path := []gridmap.Position{m.Start()}

	var dfs func(p gridmap.Position, facing gridmap.Direction, cost int64)
	dfs = func(p gridmap.Position, facing gridmap.Direction, cost int64) {
		if cost > best {
			return
		}
		if p == m.End() {
			if cost < best {
				best = cost
				tiles = map[gridmap.Position]bool{}
			}
			for _, q := range path {
				tiles[q] = true
			}
			return
		}
		for _, s := range m.Neighbors4(p) {
			if m.IsWall(s.Pos) || visited[s.Pos] {
				continue
			}
			visited[s.Pos] = true
			path = append(path, s.Pos)
			dfs(s.Pos, s.Dir, cost+dijkstra.EdgeCost(facing, s.Dir))
			path = path[:len(path)-1]
			delete(visited, s.Pos)
		}
	}
	dfs(m.Start(), gridmap.East, 0)
	return best, tiles
}

// randomGrid builds a bordered w×h grid with the given interior wall ratio.
func randomGrid(rng *rand.Rand, w, h int, ratio float64) *gridmap.GridMap {
	var walls, open []gridmap.Position
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := gridmap.Position{X: x, Y: y}
			if x == 0 || y == 0 || x == w-1 || y == h-1 || rng.Float64() < ratio {
				walls = append(walls, p)
				continue
			}
			open = append(open, p)
		}
	}
	if len(open) < 2 {
		return nil
	}
	rng.Shuffle(len(open), func(i, j int) { open[i], open[j] = open[j], open[i] })
	m, err := gridmap.New(w, h, walls, open[0], open[1])
	if err != nil {
		panic(err)
	}
	return m
}

// TestSolve_MatchesBruteForce compares Solve against exhaustive enumeration
// on random small mazes, for both the cost and the optimal tile set.
func TestSolve_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	checked := 0
	for i := 0; i < 60; i++ {
		m := randomGrid(rng, 7, 7, 0.25)
		if m == nil {
			continue
		}
		wantCost, wantTiles := bruteForce(m)

		res, err := dijkstra.Solve(m, dijkstra.WithTiles())
		if wantCost == math.MaxInt64 {
			require.True(t, errors.Is(err, dijkstra.ErrNoPath), "grid:\n%s", m.Render(nil))
			continue
		}
		require.NoError(t, err, "grid:\n%s", m.Render(nil))
		require.Equal(t, wantCost, res.Cost, "grid:\n%s", m.Render(nil))

		got := make(map[gridmap.Position]bool, len(res.Tiles))
		for _, p := range res.Tiles {
			got[p] = true
		}
		require.Equal(t, wantTiles, got, "grid:\n%s", m.Render(nil))
		checked++
	}
	require.Greater(t, checked, 10, "too few reachable grids generated")
}
