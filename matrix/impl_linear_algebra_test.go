// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

func TestDense_ElementwiseKernels(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	requireClose(t, MustDense(t, [][]float64{{11, 22}, {33, 44}}), sum)

	diff, err := b.Sub(a)
	require.NoError(t, err)
	requireClose(t, MustDense(t, [][]float64{{9, 18}, {27, 36}}), diff)

	lc, err := a.AddScaled(0.5, b)
	require.NoError(t, err)
	requireClose(t, MustDense(t, [][]float64{{6, 12}, {18, 24}}), lc)

	requireClose(t, MustDense(t, [][]float64{{-2, -4}, {-6, -8}}), a.Scale(-2))
	requireClose(t, MustDense(t, [][]float64{{-1, -2}, {-3, -4}}), a.Neg())

	// operands untouched
	requireClose(t, MustDense(t, [][]float64{{1, 2}, {3, 4}}), a)

	_, err = a.Add(MustDense(t, [][]float64{{1, 2, 3}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Sub(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDense_Mul(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustDense(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := a.Mul(b)
	require.NoError(t, err)
	requireClose(t, MustDense(t, [][]float64{{58, 64}, {139, 154}}), c)

	_, err = a.Mul(a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDense_Mul_ZeroInner checks that an empty inner dimension yields zeros.
func TestDense_Mul_ZeroInner(t *testing.T) {
	a, err := matrix.NewDense(2, 0)
	require.NoError(t, err)
	b, err := matrix.NewDense(0, 3)
	require.NoError(t, err)

	c, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Rows())
	assert.Equal(t, 3, c.Cols())
	assert.Equal(t, make([]float64, 6), c.RawData())
}

func TestDense_Norm1TraceShift(t *testing.T) {
	a := MustDense(t, [][]float64{{1, -2}, {3, 4}})
	assert.Equal(t, 6.0, a.Norm1())

	tr, err := a.Trace()
	require.NoError(t, err)
	assert.Equal(t, 5.0, tr)

	sh, err := a.ShiftDiagonal(-2.5)
	require.NoError(t, err)
	requireClose(t, MustDense(t, [][]float64{{-1.5, -2}, {3, 1.5}}), sh)

	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty.Norm1())

	_, err = MustDense(t, [][]float64{{1, 2}}).Trace()
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_Solve(t *testing.T) {
	a := MustDense(t, [][]float64{{2, 1}, {1, 3}})
	b := MustDense(t, [][]float64{{3}, {5}})

	x, err := a.Solve(b)
	require.NoError(t, err)
	v0, _ := x.At(0, 0)
	v1, _ := x.At(1, 0)
	assert.InDelta(t, 0.8, v0, 1e-12)
	assert.InDelta(t, 1.4, v1, 1e-12)

	// A·X reproduces B
	back, err := a.Mul(x)
	require.NoError(t, err)
	requireClose(t, b, back)
}

func TestDense_Solve_Errors(t *testing.T) {
	singular := MustDense(t, [][]float64{{1, 2}, {2, 4}})
	_, err := singular.Solve(MustDense(t, [][]float64{{1}, {1}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = MustDense(t, [][]float64{{1, 2}}).Solve(MustDense(t, [][]float64{{1}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = MustDense(t, [][]float64{{1, 0}, {0, 1}}).Solve(MustDense(t, [][]float64{{1}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	requireClose(t, MustDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}), I)

	CI, err := matrix.NewCIdentity(2)
	require.NoError(t, err)
	requireClose(t, MustCDense(t, [][]complex128{{1, 0}, {0, 1}}), CI)

	_, err = matrix.NewIdentity(-1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
