// SPDX-License-Identifier: MIT

package matfn

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// KhatriRao returns the column-wise Kronecker product of a (n1×k) and
// b (n2×k): the (n1·n2)×k matrix whose column j is the flattened outer
// product of column j of a and column j of b, i.e.
//
//	c[i·n2+p, j] = a[i,j] · b[p,j]
//
// Two real operands give a *matrix.Dense; any complex operand promotes the
// result to *matrix.CDense.
//
// Errors:
//   - ErrDimension when an operand is nil.
//   - ErrShapeMismatch when the column counts differ; nothing is allocated.
//
// Complexity: O(n1·n2·k).
func KhatriRao(a, b matrix.Matrix) (matrix.Matrix, error) {
	if matrix.IsNil(a) || matrix.IsNil(b) {
		return nil, fmt.Errorf("%s: %w", opKhatriRao, ErrDimension)
	}
	if a.Cols() != b.Cols() {
		return nil, fmt.Errorf("%s: the number of columns for both matrices should be equal (%d != %d): %w",
			opKhatriRao, a.Cols(), b.Cols(), ErrShapeMismatch)
	}

	if a.Field().Promote(b.Field()) == matrix.Real {
		da, okA := a.(*matrix.Dense)
		db, okB := b.(*matrix.Dense)
		if okA && okB {
			c, err := da.BroadcastRowMul(db)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opKhatriRao, err)
			}

			return c, nil
		}
	}
	ca, err := matrix.ToComplex(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opKhatriRao, err)
	}
	cb, err := matrix.ToComplex(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opKhatriRao, err)
	}

	c, err := ca.BroadcastRowMul(cb)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opKhatriRao, err)
	}

	return c, nil
}

// KhatriRaoBatch applies KhatriRao pairwise over a leading batch axis with
// broadcasting: the batches must have equal length, or one of them length 1,
// in which case its single matrix pairs with every entry of the other.
//
// Errors:
//   - ErrDimension when either batch is empty.
//   - ErrShapeMismatch when the batch lengths cannot be broadcast.
//   - Any KhatriRao error, tagged with the batch index.
func KhatriRaoBatch(a, b []matrix.Matrix) ([]matrix.Matrix, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("%s: empty batch: %w", opKhatriBatch, ErrDimension)
	}
	n, ok := broadcastLen(len(a), len(b))
	if !ok {
		return nil, fmt.Errorf("%s: batch lengths %d and %d: %w", opKhatriBatch, len(a), len(b), ErrShapeMismatch)
	}

	out := make([]matrix.Matrix, n)
	for i := 0; i < n; i++ {
		c, err := KhatriRao(a[broadcastIndex(i, len(a))], b[broadcastIndex(i, len(b))])
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", opKhatriBatch, i, err)
		}
		out[i] = c
	}

	return out, nil
}

// broadcastLen applies the broadcasting rule to one axis.
func broadcastLen(x, y int) (int, bool) {
	switch {
	case x == y:
		return x, true
	case x == 1:
		return y, true
	case y == 1:
		return x, true
	default:
		return 0, false
	}
}

// broadcastIndex maps an output batch index onto an axis of length n.
func broadcastIndex(i, n int) int {
	if n == 1 {
		return 0
	}

	return i
}
