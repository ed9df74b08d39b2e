package gridmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridmap"
)

func TestRegions(t *testing.T) {
	m, err := gridmap.ParseString("" +
		"#######\n" +
		"#S.#..#\n" +
		"####.##\n" +
		"#..#.E#\n" +
		"#######\n")
	require.NoError(t, err)

	labels, count := m.Regions()
	require.Equal(t, 3, count)
	require.Len(t, labels, m.Cells())

	at := func(x, y int) int { return labels[m.Index(gridmap.Position{X: x, Y: y})] }
	require.Equal(t, -1, at(0, 0))
	require.Equal(t, 0, at(1, 1))
	require.Equal(t, 0, at(2, 1))
	require.Equal(t, 1, at(4, 1))
	require.Equal(t, 1, at(5, 3))
	require.Equal(t, 2, at(1, 3))

	require.False(t, m.Connected(m.Start(), m.End()))
	require.True(t, m.Connected(gridmap.Position{X: 4, Y: 1}, m.End()))
	require.False(t, m.Connected(gridmap.Position{X: 0, Y: 0}, m.End()), "walls belong to no region")
}

func TestRegions_Open(t *testing.T) {
	m, err := gridmap.New(4, 3, nil, gridmap.Position{}, gridmap.Position{X: 3, Y: 2})
	require.NoError(t, err)
	labels, count := m.Regions()
	require.Equal(t, 1, count)
	for _, l := range labels {
		require.Zero(t, l)
	}
	require.True(t, m.Connected(m.Start(), m.End()))
}
