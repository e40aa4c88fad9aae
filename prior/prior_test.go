package prior_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/ordlab/cutpoints/ordered"
	"github.com/ordlab/cutpoints/prior"
)

// TestNewDirichlet_Validation covers the constructor sentinels.
func TestNewDirichlet_Validation(t *testing.T) {
	src := rand.NewSource(1)

	_, err := prior.NewDirichlet([]float64{2}, src)
	assert.ErrorIs(t, err, prior.ErrTooFewCategories, "k=1")

	_, err = prior.NewDirichlet([]float64{2, 0}, src)
	assert.ErrorIs(t, err, prior.ErrBadConcentration, "zero entry")

	_, err = prior.NewDirichlet([]float64{2, math.NaN()}, src)
	assert.ErrorIs(t, err, prior.ErrBadConcentration, "NaN entry")

	_, err = prior.NewDirichlet([]float64{2, 2}, nil)
	assert.ErrorIs(t, err, prior.ErrNilSource, "nil source")
}

// TestDirichlet_DrawsValidSimplices checks that every draw is a strictly
// positive simplex acceptable to the anchored transform.
func TestDirichlet_DrawsValidSimplices(t *testing.T) {
	d, err := prior.NewDirichlet([]float64{2, 3, 4, 2}, rand.NewSource(7))
	require.NoError(t, err)
	require.Equal(t, 4, d.Dim())

	tr := ordered.NewSimplexAnchored(0)
	buf := make([]float64, d.Dim())
	for i := 0; i < 200; i++ {
		p := d.Draw(buf)
		assert.InDelta(t, 1.0, floats.Sum(p), 1e-9, "draw %d sums to one", i)
		for j, pj := range p {
			assert.Greater(t, pj, 0.0, "draw %d entry %d strictly positive", i, j)
		}

		y, err := tr.Forward(p)
		require.NoError(t, err, "draw %d feeds the transform", i)
		for j := 1; j < len(y); j++ {
			assert.Less(t, y[j-1], y[j], "draw %d yields increasing cutpoints", i)
		}
	}
}

// TestDirichlet_DrawAllocatesOnBadDst verifies the gonum-style dst reuse.
func TestDirichlet_DrawAllocatesOnBadDst(t *testing.T) {
	d, err := prior.NewDirichlet([]float64{1, 1, 1}, rand.NewSource(3))
	require.NoError(t, err)

	p := d.Draw(nil)
	assert.Len(t, p, 3, "nil dst allocates")

	buf := make([]float64, 3)
	q := d.Draw(buf)
	assert.Equal(t, &buf[0], &q[0], "matching dst is reused")
}

// TestNewNormal_Validation covers the constructor sentinels.
func TestNewNormal_Validation(t *testing.T) {
	src := rand.NewSource(1)

	_, err := prior.NewNormal(0, 0, 1, src)
	assert.ErrorIs(t, err, prior.ErrBadDimension, "n=0")

	_, err = prior.NewNormal(3, 0, 0, src)
	assert.ErrorIs(t, err, prior.ErrBadScale, "sigma=0")

	_, err = prior.NewNormal(3, math.Inf(1), 1, src)
	assert.ErrorIs(t, err, prior.ErrBadScale, "non-finite mu")

	_, err = prior.NewNormal(3, 0, 1, nil)
	assert.ErrorIs(t, err, prior.ErrNilSource, "nil source")
}

// TestNormal_DrawsFeedDirect checks draws are finite and feed the direct
// construction without error.
func TestNormal_DrawsFeedDirect(t *testing.T) {
	g, err := prior.NewNormal(5, 0, 2, rand.NewSource(11))
	require.NoError(t, err)
	require.Equal(t, 5, g.Dim())

	tr := ordered.NewDirect()
	for i := 0; i < 100; i++ {
		x := g.Draw(nil)
		require.Len(t, x, 5)

		y, err := tr.Forward(x)
		require.NoError(t, err, "draw %d feeds the transform", i)
		for j := 1; j < len(y); j++ {
			assert.Less(t, y[j-1], y[j], "draw %d yields increasing cutpoints", i)
		}
	}
}
