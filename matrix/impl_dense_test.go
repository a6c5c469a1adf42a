// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// TestNewDense_Shapes covers zero-sized, regular and negative shapes.
func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
	assert.Empty(t, m.RawData())

	m, err = matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, []int{2, 3}, []int{r, c})
	assert.Equal(t, make([]float64, 6), m.RawData())
	assert.Equal(t, matrix.Real, m.Field())

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFrom_Policy checks length validation and the NaN/Inf policy.
func TestNewDenseFrom_Policy(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewDenseFrom(1, 2, []float64{1, math.Inf(1)}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.True(t, m.HasNaNInf())

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewDenseFrom_Copies verifies the constructor does not alias its input.
func TestNewDenseFrom_Copies(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m, err := matrix.NewDenseFrom(2, 2, src)
	require.NoError(t, err)
	src[0] = 100

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestDense_AtSet covers bounds and the per-instance numeric policy.
func TestDense_AtSet(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	require.NoError(t, m.Set(0, 1, 7))
	v, _ = m.At(0, 1)
	assert.Equal(t, 7.0, v)
}

// TestDense_Clone verifies deep copies keep the policy and not the buffer.
func TestDense_Clone(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}})
	cp, ok := m.Clone().(*matrix.Dense)
	require.True(t, ok)
	require.NoError(t, cp.Set(0, 0, 9))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
	assert.ErrorIs(t, cp.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestDense_String renders one bracketed line per row.
func TestDense_String(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2.5}, {-3, 4}})
	assert.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}

// TestCDense_Basics mirrors the real container checks for *CDense.
func TestCDense_Basics(t *testing.T) {
	m := MustCDense(t, [][]complex128{{1 + 2i, 3}, {0, -1i}})
	assert.Equal(t, matrix.Complex, m.Field())

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1+2i, v)

	_, err = m.At(0, 2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(1, 1, complex(0, math.NaN())), matrix.ErrNaNInf)

	_, err = matrix.NewCDenseFrom(1, 1, []complex128{complex(math.Inf(1), 0)})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.NewCDense(0, -3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	cp := m.Clone().(*matrix.CDense)
	require.NoError(t, cp.Set(0, 1, 5i))
	v, _ = m.At(0, 1)
	assert.Equal(t, complex128(3), v)
}

// TestField_Promote checks the promotion lattice and names.
func TestField_Promote(t *testing.T) {
	assert.Equal(t, matrix.Real, matrix.Real.Promote(matrix.Real))
	assert.Equal(t, matrix.Complex, matrix.Real.Promote(matrix.Complex))
	assert.Equal(t, matrix.Complex, matrix.Complex.Promote(matrix.Real))
	assert.Equal(t, "real", matrix.Real.String())
	assert.Equal(t, "complex", matrix.Complex.String())
}
