package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kurono/percolation/grid"
	"github.com/kurono/percolation/gridgraph"
	"github.com/kurono/percolation/percolation"
	"github.com/kurono/percolation/unionfind"
)

// fixedRand replays a fixed list of draws (modulo n).
type fixedRand struct {
	draws []int
	next  int
}

func (f *fixedRand) Intn(n int) int {
	v := f.draws[f.next%len(f.draws)]
	f.next++

	return v % n
}

func newSolver(t *testing.T, rows, cols int, opts ...percolation.Option) (*grid.Grid, *percolation.Solver) {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	s, err := percolation.New(g, opts...)
	require.NoError(t, err)

	return g, s
}

func TestNew_NilGrid(t *testing.T) {
	s, err := percolation.New(nil)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, percolation.ErrNilGrid)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { percolation.WithRand(nil) })
	assert.Panics(t, func() { percolation.WithLogger(nil) })
}

// TestClosedGrid: nothing open, nothing percolates.
func TestClosedGrid(t *testing.T) {
	g, s := newSolver(t, 4, 5)
	assert.False(t, s.PercolatesTotally())
	assert.Equal(t, g.CellCount(), g.CountWhere(grid.Closed, grid.Equal))
	assert.Equal(t, g.CellCount()+2, s.Components())
	assert.Same(t, g, s.Grid())
}

// TestSingleCell: row 0 and the last row coincide, both sentinels are joined.
func TestSingleCell(t *testing.T) {
	g, s := newSolver(t, 1, 1)
	require.NoError(t, s.Open(0, 0))
	assert.True(t, s.PercolatesTotally())
	assert.Equal(t, 1, s.Components())

	s.RefreshFilledStatus()
	assert.Equal(t, grid.OpenedAndFilled, g.At(0))
}

// TestSingleRow: any open cell on a 1×N grid percolates.
func TestSingleRow(t *testing.T) {
	_, s := newSolver(t, 1, 4)
	require.NoError(t, s.Open(0, 2))
	assert.True(t, s.PercolatesTotally())
}

// TestMiddleColumn opens (0,1),(1,1),(2,1) on a 3×3 grid.
func TestMiddleColumn(t *testing.T) {
	_, s := newSolver(t, 3, 3)
	require.NoError(t, s.Open(0, 1))
	assert.False(t, s.PercolatesTotally())
	require.NoError(t, s.Open(1, 1))
	assert.False(t, s.PercolatesTotally())
	require.NoError(t, s.Open(2, 1))
	assert.True(t, s.PercolatesTotally())

	for r := 0; r < 3; r++ {
		ok, err := s.PercolatesToCell(r, 1)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = s.PercolatesToCell(r, 0)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

// TestSideColumns opens the left and right columns without the middle one.
func TestSideColumns(t *testing.T) {
	g, s := newSolver(t, 3, 3)
	for r := 0; r < 3; r++ {
		require.NoError(t, s.Open(r, 0))
	}
	assert.True(t, s.PercolatesTotally(), "left column alone spans")

	_, s2 := newSolver(t, 3, 3)
	for r := 0; r < 3; r++ {
		require.NoError(t, s2.Open(r, 2))
	}
	assert.True(t, s2.PercolatesTotally(), "right column alone spans")

	for r := 0; r < 3; r++ {
		require.NoError(t, s.Open(r, 2))
	}
	assert.True(t, s.PercolatesTotally())

	// Both columns hang off the sentinels; the cells of one column never
	// touch the cells of the other directly.
	gg, err := gridgraph.New(g, gridgraph.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, gg.ConnectedComponents(), 2)
}

// TestOpen_Idempotent: a second open changes neither grid nor components.
func TestOpen_Idempotent(t *testing.T) {
	g, s := newSolver(t, 3, 3)
	require.NoError(t, s.Open(1, 1))
	cells := g.Cells()
	comps := s.Components()

	require.NoError(t, s.Open(1, 1))
	assert.Equal(t, cells, g.Cells())
	assert.Equal(t, comps, s.Components())

	// Also a no-op once the cell has been marked filled.
	require.NoError(t, s.Open(0, 1))
	s.RefreshFilledStatus()
	cells = g.Cells()
	comps = s.Components()
	require.NoError(t, s.Open(0, 1))
	assert.Equal(t, cells, g.Cells())
	assert.Equal(t, comps, s.Components())
}

// TestOpen_OutOfRange reports a wrapped grid error and changes nothing.
func TestOpen_OutOfRange(t *testing.T) {
	g, s := newSolver(t, 2, 2)
	for _, rc := range [][2]int{{-1, 0}, {0, 2}, {2, 0}} {
		assert.ErrorIs(t, s.Open(rc[0], rc[1]), grid.ErrIndexOutOfRange)
	}
	assert.Equal(t, 4, g.CountWhere(grid.Closed, grid.Equal))

	_, err := s.PercolatesTo(4)
	assert.ErrorIs(t, err, grid.ErrIndexOutOfRange, "sentinel ids are not cells")
	_, err = s.PercolatesToCell(5, 5)
	assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)
	_, err = s.IsOpen(-1, 0)
	assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)
}

// TestRefreshFilledStatus: only cells reachable from the top are filled.
func TestRefreshFilledStatus(t *testing.T) {
	g, s := newSolver(t, 3, 3)
	require.NoError(t, s.Open(0, 0))
	require.NoError(t, s.Open(1, 0))
	require.NoError(t, s.Open(2, 2))
	s.RefreshFilledStatus()

	want := []grid.Status{
		grid.OpenedAndFilled, grid.Closed, grid.Closed,
		grid.OpenedAndFilled, grid.Closed, grid.Closed,
		grid.Closed, grid.Closed, grid.Opened,
	}
	assert.Equal(t, want, g.Cells())

	// Joining the isolated cell fills it on the next refresh.
	require.NoError(t, s.Open(2, 0))
	require.NoError(t, s.Open(2, 1))
	s.RefreshFilledStatus()
	assert.Equal(t, grid.OpenedAndFilled, g.At(8))
	assert.True(t, s.PercolatesTotally())

	ok, err := s.PercolatesTo(8)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestOpenRandom_FromClosed makes progress on every call until the grid is
// full, then reports ErrEmptyDomain.
func TestOpenRandom_FromClosed(t *testing.T) {
	g, s := newSolver(t, 3, 4, percolation.WithSeed(1))
	seen := make(map[[2]int]bool)
	for i := 0; i < g.CellCount(); i++ {
		r, c, err := s.OpenRandom(true)
		require.NoError(t, err)
		assert.False(t, seen[[2]int{r, c}], "cell (%d,%d) drawn twice", r, c)
		seen[[2]int{r, c}] = true
		assert.Equal(t, i+1, g.CountWhere(grid.Closed, grid.Greater))
	}
	assert.True(t, s.PercolatesTotally())
	assert.Equal(t, 1, s.Components())

	_, _, err := s.OpenRandom(true)
	assert.ErrorIs(t, err, percolation.ErrEmptyDomain)
}

// TestOpenRandom_Injected checks that the draw indexes the closed cells in
// ascending order.
func TestOpenRandom_Injected(t *testing.T) {
	_, s := newSolver(t, 2, 2, percolation.WithRand(&fixedRand{draws: []int{2, 0}}))

	r, c, err := s.OpenRandom(true) // closed = [0 1 2 3] → 2
	require.NoError(t, err)
	assert.Equal(t, [2]int{1, 0}, [2]int{r, c})

	r, c, err = s.OpenRandom(true) // closed = [0 1 3] → 0
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 0}, [2]int{r, c})
	assert.True(t, s.PercolatesTotally())
}

// TestOpenRandom_AnyCell may hit an open cell and make no progress.
func TestOpenRandom_AnyCell(t *testing.T) {
	g, s := newSolver(t, 2, 2, percolation.WithRand(&fixedRand{draws: []int{1, 1}}))

	r, c, err := s.OpenRandom(false)
	require.NoError(t, err)
	assert.Equal(t, [2]int{1, 1}, [2]int{r, c})

	_, _, err = s.OpenRandom(false)
	require.NoError(t, err)
	assert.Equal(t, 1, g.CountWhere(grid.Closed, grid.Greater))
}

// TestOpenRandom_LogsDebug verifies the debug trace of opened cells.
func TestOpenRandom_LogsDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, s := newSolver(t, 2, 2,
		percolation.WithLogger(zap.New(core)),
		percolation.WithRand(&fixedRand{draws: []int{3}}))

	_, _, err := s.OpenRandom(true)
	require.NoError(t, err)

	entries := logs.FilterMessage("open cell").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["row"])
	assert.Equal(t, int64(1), entries[0].ContextMap()["col"])
}

// TestAgainstTraversal compares the union-find answers with an independent
// BFS after every random opening, on several grid shapes and strategies.
func TestAgainstTraversal(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {5, 5}, {8, 13}}
	strategies := []unionfind.Strategy{unionfind.Weighted, unionfind.QuickUnion, unionfind.QuickFind}
	for _, sh := range shapes {
		for _, st := range strategies {
			g, s := newSolver(t, sh[0], sh[1],
				percolation.WithRand(rand.New(rand.NewSource(int64(sh[0]*100+sh[1])))),
				percolation.WithStrategy(st))
			for i := 0; i < g.CellCount(); i++ {
				_, _, err := s.OpenRandom(true)
				require.NoError(t, err)
				s.RefreshFilledStatus()

				gg, err := gridgraph.New(g, gridgraph.DefaultOptions())
				require.NoError(t, err)
				require.Equal(t, gg.Spans(), s.PercolatesTotally(), "%v %s step %d", sh, st, i)

				reached := gg.ReachableFromTop()
				for id := range reached {
					assert.Equal(t, reached[id], g.At(id) == grid.OpenedAndFilled, "%v cell %d", sh, id)
				}
			}
		}
	}
}
