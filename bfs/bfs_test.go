package bfs_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridmap"
)

const room = "#####\n" +
	"#S..#\n" +
	"#.#.#\n" +
	"#..E#\n" +
	"#####\n"

func mustParse(t testing.TB, s string) *gridmap.GridMap {
	t.Helper()
	m, err := gridmap.ParseString(s)
	require.NoError(t, err)
	return m
}

func pos(x, y int) gridmap.Position { return gridmap.Position{X: x, Y: y} }

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil grid
	if _, err := bfs.Distances(nil, pos(0, 0)); !errors.Is(err, bfs.ErrNilGrid) {
		t.Errorf("nil grid: want ErrNilGrid, got %v", err)
	}
	if _, err := bfs.Steps(nil); !errors.Is(err, bfs.ErrNilGrid) {
		t.Errorf("nil grid: want ErrNilGrid, got %v", err)
	}

	m := mustParse(t, room)
	// origin on a wall or outside the grid
	if _, err := bfs.Distances(m, pos(0, 0)); !errors.Is(err, bfs.ErrStartBlocked) {
		t.Errorf("wall origin: want ErrStartBlocked, got %v", err)
	}
	if _, err := bfs.Distances(m, pos(-1, 2)); !errors.Is(err, bfs.ErrStartBlocked) {
		t.Errorf("outside origin: want ErrStartBlocked, got %v", err)
	}
	// negative MaxDepth and budget are violations
	if _, err := bfs.Distances(m, m.Start(), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.Steps(m, bfs.WithStepBudget(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative budget: want ErrOptionViolation, got %v", err)
	}
}

// TestDistances_Room checks step counts around a pillar.
func TestDistances_Room(t *testing.T) {
	m := mustParse(t, room)
	f, err := bfs.Distances(m, m.Start())
	require.NoError(t, err)
	require.Equal(t, m.Start(), f.Origin())
	require.Equal(t, m.Open(), f.Reached())

	cases := []struct {
		p    gridmap.Position
		want int
	}{
		{pos(1, 1), 0},
		{pos(2, 1), 1},
		{pos(1, 2), 1},
		{pos(3, 1), 2},
		{pos(1, 3), 2},
		{pos(3, 2), 3},
		{pos(2, 3), 3},
		{pos(3, 3), 4},
	}
	for _, tc := range cases {
		d, ok := f.At(tc.p)
		require.True(t, ok, "cell %s unreached", tc.p)
		require.Equal(t, tc.want, d, "cell %s", tc.p)
	}

	_, ok := f.At(pos(2, 2))
	require.False(t, ok, "walls are never reached")
	_, ok = f.At(pos(9, 9))
	require.False(t, ok, "out of bounds is never reached")
}

// TestDistances_OrderIsLayered checks visit order is non-decreasing in depth.
func TestDistances_OrderIsLayered(t *testing.T) {
	m := mustParse(t, room)
	f, err := bfs.Distances(m, m.End())
	require.NoError(t, err)

	order := f.Order()
	require.Equal(t, m.End(), order[0])
	prev := 0
	for _, p := range order {
		d, ok := f.At(p)
		require.True(t, ok)
		require.GreaterOrEqual(t, d, prev)
		prev = d
	}
	// Order returns a copy.
	order[0] = pos(0, 0)
	require.Equal(t, m.End(), f.Order()[0])
}

func TestField_PathTo(t *testing.T) {
	m := mustParse(t, room)
	f, err := bfs.Distances(m, m.Start())
	require.NoError(t, err)

	path, err := f.PathTo(m.End())
	require.NoError(t, err)
	require.Len(t, path, 5)
	require.Equal(t, m.Start(), path[0])
	require.Equal(t, m.End(), path[len(path)-1])
	// North/East are enqueued before South/West, so the East corridor wins.
	require.Equal(t, []gridmap.Position{pos(1, 1), pos(2, 1), pos(3, 1), pos(3, 2), pos(3, 3)}, path)

	_, err = f.PathTo(pos(2, 2))
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestSteps(t *testing.T) {
	cases := []struct {
		name string
		grid string
		want int
		err  error
	}{
		{"Adjacent", "SE", 1, nil},
		{"Corridor", "#####\n#S.E#\n#####\n", 2, nil},
		{"Room", room, 4, nil},
		{"Walled", "S#E", 0, bfs.ErrNoPath},
		{"Long", "S" + strings.Repeat(".", 40) + "E", 41, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bfs.Steps(mustParse(t, tc.grid))
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDistances_MaxDepth(t *testing.T) {
	m := mustParse(t, room)
	f, err := bfs.Distances(m, m.Start(), bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, 5, f.Reached())
	_, ok := f.At(m.End())
	require.False(t, ok)

	_, err = bfs.Steps(m, bfs.WithMaxDepth(3))
	require.ErrorIs(t, err, bfs.ErrNoPath)

	got, err := bfs.Steps(m, bfs.WithMaxDepth(4))
	require.NoError(t, err)
	require.Equal(t, 4, got)

	// Zero is an explicit "no limit".
	got, err = bfs.Steps(m, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	require.Equal(t, 4, got)
}

func TestDistances_StepBudget(t *testing.T) {
	m := mustParse(t, room)
	_, err := bfs.Distances(m, m.Start(), bfs.WithStepBudget(3))
	require.ErrorIs(t, err, bfs.ErrBudgetExceeded)

	f, err := bfs.Distances(m, m.Start(), bfs.WithStepBudget(m.Open()))
	require.NoError(t, err)
	require.Equal(t, m.Open(), f.Reached())
}

func TestDistances_OnVisit(t *testing.T) {
	m := mustParse(t, room)
	var visited []gridmap.Position
	_, err := bfs.Distances(m, m.Start(), bfs.WithOnVisit(func(p gridmap.Position, _ int) error {
		visited = append(visited, p)
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, visited, m.Open())

	stop := errors.New("stop")
	_, err = bfs.Distances(m, m.Start(), bfs.WithOnVisit(func(_ gridmap.Position, depth int) error {
		if depth == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestDistances_ContextCancelled(t *testing.T) {
	m := mustParse(t, room)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Distances(m, m.Start(), bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestDistances_Symmetric checks d(a,b) == d(b,a) on every reachable pair.
func TestDistances_Symmetric(t *testing.T) {
	m := mustParse(t, room)
	fields := make(map[gridmap.Position]*bfs.Field)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := pos(x, y)
			if !m.IsOpen(p) {
				continue
			}
			f, err := bfs.Distances(m, p)
			require.NoError(t, err)
			fields[p] = f
		}
	}
	for a, fa := range fields {
		for b, fb := range fields {
			dab, _ := fa.At(b)
			dba, _ := fb.At(a)
			require.Equal(t, dab, dba, "%s <-> %s", a, b)
		}
	}
}
