package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/frontier"
)

// QueueSuite exercises ordering, tie-breaking and reuse of frontier.Queue.
type QueueSuite struct {
	suite.Suite
}

// TestEmpty verifies Pop and Peek on an empty queue.
func (s *QueueSuite) TestEmpty() {
	var q frontier.Queue[string]
	_, _, ok := q.Pop()
	require.False(s.T(), ok)
	_, _, ok = q.Peek()
	require.False(s.T(), ok)
	require.Zero(s.T(), q.Len())
}

// TestAscendingCost pops items in non-decreasing cost order.
func (s *QueueSuite) TestAscendingCost() {
	q := frontier.New[int](8)
	rng := rand.New(rand.NewSource(7))
	want := make([]int64, 0, 200)
	for i := 0; i < 200; i++ {
		c := rng.Int63n(50)
		want = append(want, c)
		q.Push(i, c)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	got := make([]int64, 0, len(want))
	for q.Len() > 0 {
		_, c, ok := q.Pop()
		require.True(s.T(), ok)
		got = append(got, c)
	}
	require.Equal(s.T(), want, got)
}

// TestStableTies pops equal-cost items in insertion order.
func (s *QueueSuite) TestStableTies() {
	q := frontier.New[string](4)
	q.Push("b", 5)
	q.Push("a", 1001)
	q.Push("c", 5)
	q.Push("d", 1)
	q.Push("e", 5)

	item, cost, ok := q.Peek()
	require.True(s.T(), ok)
	require.Equal(s.T(), "d", item)
	require.Equal(s.T(), int64(1), cost)

	var order []string
	for {
		item, _, ok := q.Pop()
		if !ok {
			break
		}
		order = append(order, item)
	}
	require.Equal(s.T(), []string{"d", "b", "c", "e", "a"}, order)
}

// TestReset clears pending items and restarts tie ordering.
func (s *QueueSuite) TestReset() {
	q := frontier.New[int](2)
	q.Push(1, 3)
	q.Push(2, 3)
	q.Reset()
	require.Zero(s.T(), q.Len())

	q.Push(9, 0)
	item, _, ok := q.Pop()
	require.True(s.T(), ok)
	require.Equal(s.T(), 9, item)
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueSuite))
}

// BenchmarkQueue_PushPop measures a full fill-and-drain cycle.
func BenchmarkQueue_PushPop(b *testing.B) {
	const n = 1 << 14
	rng := rand.New(rand.NewSource(42))
	costs := make([]int64, n)
	for i := range costs {
		costs[i] = rng.Int63n(1 << 20)
	}
	q := frontier.New[int](n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, c := range costs {
			q.Push(j, c)
		}
		for q.Len() > 0 {
			q.Pop()
		}
	}
}
