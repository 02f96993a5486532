package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurono/percolation/grid"
)

// TestNew_InvalidDimensions verifies that non-positive or overflowing sizes
// are rejected.
func TestNew_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"NegativeRows", -1, 3},
		{"NegativeBoth", -2, -2},
		{"ProductOverflows", math.MaxInt/2 + 1, 2},
		{"SquareOverflows", math.MaxInt / 3, math.MaxInt / 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows, tc.cols)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, grid.ErrInvalidDimensions)
		})
	}
}

// TestNew_AllClosed checks dimensions and the initial status of every cell.
func TestNew_AllClosed(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 12, g.CellCount())
	assert.Equal(t, 12, g.CountWhere(grid.Closed, grid.Equal))
	assert.Zero(t, g.Porosity())
}

// TestIndex_RoundTrip checks both directions of the mapping on a non-square grid.
func TestIndex_RoundTrip(t *testing.T) {
	g, err := grid.New(3, 5)
	require.NoError(t, err)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			id, err := g.Index(r, c)
			require.NoError(t, err)
			assert.Equal(t, 5*r+c, id)
			r2, c2, err := g.Coord(id)
			require.NoError(t, err)
			assert.Equal(t, [2]int{r, c}, [2]int{r2, c2})
		}
	}
	for id := 0; id < g.CellCount(); id++ {
		r, c, err := g.Coord(id)
		require.NoError(t, err)
		back, err := g.Index(r, c)
		require.NoError(t, err)
		assert.Equal(t, id, back)
	}
}

// TestIndex_OutOfRange verifies the checked accessors.
func TestIndex_OutOfRange(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		assert.False(t, g.Contains(rc[0], rc[1]))
		_, err := g.Index(rc[0], rc[1])
		assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)
		_, err = g.Get(rc[0], rc[1])
		assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)
		assert.ErrorIs(t, g.Set(rc[0], rc[1], grid.Opened), grid.ErrIndexOutOfRange)
	}
	_, _, err = g.Coord(6)
	assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)
	_, _, err = g.Coord(-1)
	assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)
	_, err = g.Row(2)
	assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)

	assert.Equal(t, 6, g.CountWhere(grid.Closed, grid.Equal), "failed writes must not mutate")
}

// TestClamped pulls out-of-range inputs to the nearest valid cell.
func TestClamped(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	assert.Equal(t, 0, g.IndexClamped(-5, -5))
	assert.Equal(t, 5, g.IndexClamped(9, 9))
	assert.Equal(t, 3, g.IndexClamped(7, 0))
	assert.Equal(t, 2, g.IndexClamped(0, 8))

	r, c := g.CoordClamped(-3)
	assert.Equal(t, [2]int{0, 0}, [2]int{r, c})
	r, c = g.CoordClamped(100)
	assert.Equal(t, [2]int{1, 2}, [2]int{r, c})
}

// TestSetGet covers both accessor forms and status validation.
func TestSetGet(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, g.Set(1, 0, grid.Opened))
	s, err := g.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Opened, s)
	assert.Equal(t, grid.Opened, g.At(2))

	g.SetAt(3, grid.OpenedAndFilled)
	s, _ = g.Get(1, 1)
	assert.Equal(t, grid.OpenedAndFilled, s)

	assert.ErrorIs(t, g.Set(0, 0, grid.Status(7)), grid.ErrInvalidStatus)
	assert.Equal(t, grid.Closed, g.At(0))
}

// TestCells_IsCopy verifies that the snapshot does not alias the grid.
func TestCells_IsCopy(t *testing.T) {
	g, err := grid.New(1, 2)
	require.NoError(t, err)

	cells := g.Cells()
	cells[0] = grid.OpenedAndFilled
	assert.Equal(t, grid.Closed, g.At(0))
}

// TestRow lists flat ids of a row.
func TestRow(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)
	ids, err := g.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6, 7}, ids)
}

// TestQueries exercises every operator on a grid holding 0,1,2,1,0,2.
func TestQueries(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)
	for id, s := range []grid.Status{grid.Closed, grid.Opened, grid.OpenedAndFilled, grid.Opened, grid.Closed, grid.OpenedAndFilled} {
		g.SetAt(id, s)
	}

	cases := []struct {
		value grid.Status
		op    grid.Operator
		want  []int
	}{
		{grid.Closed, grid.Equal, []int{0, 4}},
		{grid.Closed, grid.Greater, []int{1, 2, 3, 5}},
		{grid.OpenedAndFilled, grid.Less, []int{0, 1, 3, 4}},
		{grid.Opened, grid.GreaterOrEqual, []int{1, 2, 3, 5}},
		{grid.Opened, grid.LessOrEqual, []int{0, 1, 3, 4}},
		{grid.Closed, grid.Operator(42), []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.op.String()+tc.value.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, g.IndicesWhere(tc.value, tc.op))
			assert.Equal(t, len(tc.want), g.CountWhere(tc.value, tc.op))
		})
	}
	assert.InDelta(t, 4.0/6.0, g.Porosity(), 1e-12)
}
