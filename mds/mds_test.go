package mds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldraw/gen"
	"github.com/katalvlaran/lvldraw/mds"
	"github.com/katalvlaran/lvldraw/shortestpath"
)

// TestClassicalMds_RecoversPathDistances verifies the exact recovery of
// a line geometry: the embedded pairwise distances match the graph
// distances up to numerical noise.
func TestClassicalMds_RecoversPathDistances(t *testing.T) {
	g := gen.Path(3)
	c, err := mds.NewClassicalMds(g, shortestpath.UnitLength)
	require.NoError(t, err)

	d, err := c.Run2d()
	require.NoError(t, err)

	buf := make([]float64, 2)
	assert.InDelta(t, 1.0, d.Delta(0, 1, buf), 1e-6)
	assert.InDelta(t, 1.0, d.Delta(1, 2, buf), 1e-6)
	assert.InDelta(t, 2.0, d.Delta(0, 2, buf), 1e-6)
}

// TestClassicalMds_RunDimensions covers the n-dimensional variant and
// its dimension validation.
func TestClassicalMds_RunDimensions(t *testing.T) {
	g := gen.Cycle(5)
	c, err := mds.NewClassicalMds(g, shortestpath.UnitLength)
	require.NoError(t, err)

	d, err := c.Run(3)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 3, d.Dimension())

	_, err = c.Run(0)
	assert.ErrorIs(t, err, mds.ErrBadDimension)
	_, err = c.Run(6)
	assert.ErrorIs(t, err, mds.ErrBadDimension)
}

// TestClassicalMds_NilInputs covers the construction sentinels.
func TestClassicalMds_NilInputs(t *testing.T) {
	_, err := mds.NewClassicalMds(nil, shortestpath.UnitLength)
	assert.ErrorIs(t, err, mds.ErrNilGraph)

	_, err = mds.NewClassicalMdsWithDistanceMatrix(nil)
	assert.ErrorIs(t, err, mds.ErrNilDistanceMatrix)
}

// TestPivotMds_CollinearPath verifies the projected embedding keeps the
// path's line structure: consecutive gaps equal, the end pair twice as
// far.
func TestPivotMds_CollinearPath(t *testing.T) {
	g := gen.Path(3)
	p, err := mds.NewPivotMds(g, shortestpath.UnitLength, []int{0, 1, 2})
	require.NoError(t, err)

	d, err := p.Run2d()
	require.NoError(t, err)

	buf := make([]float64, 2)
	d01 := d.Delta(0, 1, buf)
	d12 := d.Delta(1, 2, buf)
	d02 := d.Delta(0, 2, buf)
	require.Greater(t, d01, 0.0, "embedding must not collapse")
	assert.InDelta(t, d01, d12, 1e-6, "symmetric gaps")
	assert.InDelta(t, 2*d01, d02, 1e-6, "end pair spans both gaps")
}

// TestPivotMds_SubsetOfPivots verifies the method works with fewer
// pivots than nodes.
func TestPivotMds_SubsetOfPivots(t *testing.T) {
	g := gen.Grid(3, 3)
	p, err := mds.NewPivotMds(g, shortestpath.UnitLength, []int{0, 4, 8})
	require.NoError(t, err)

	d, err := p.Run2d()
	require.NoError(t, err)
	assert.Equal(t, 9, d.Len())

	buf := make([]float64, 2)
	spread := 0.0
	for j := 1; j < 9; j++ {
		spread += d.Delta(0, j, buf)
	}
	assert.Greater(t, spread, 0.0, "pivot projection separates the grid")
}

// TestPivotMds_Validation covers pivot-side sentinels.
func TestPivotMds_Validation(t *testing.T) {
	_, err := mds.NewPivotMds(nil, shortestpath.UnitLength, []int{0})
	assert.ErrorIs(t, err, mds.ErrNilGraph)

	_, err = mds.NewPivotMdsWithDistanceMatrix(nil)
	assert.ErrorIs(t, err, mds.ErrNilDistanceMatrix)

	g := gen.Path(4)
	p, err := mds.NewPivotMds(g, shortestpath.UnitLength, []int{0})
	require.NoError(t, err)
	_, err = p.Run2d()
	assert.ErrorIs(t, err, mds.ErrBadDimension, "2-D needs at least two pivots")
}
