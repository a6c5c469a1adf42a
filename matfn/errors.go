// SPDX-License-Identifier: MIT

package matfn

import (
	"errors"

	"github.com/katalvlaran/lvlinalg/matrix"
)

var (
	// ErrShapeMismatch reports operands whose shapes are incompatible:
	// unequal column counts in KhatriRao, a non-square input to Expm, Cosm
	// or Sinm, or batch lengths that cannot be broadcast together.
	// It aliases matrix.ErrDimensionMismatch so kernel errors match it too.
	ErrShapeMismatch = matrix.ErrDimensionMismatch

	// ErrDimension reports an operand that is not a usable two-dimensional
	// matrix (nil, or an empty batch).
	ErrDimension = errors.New("matfn: operand is not a two-dimensional matrix")

	// ErrSingular reports that the Padé denominator (v-u) could not be
	// solved against. It aliases matrix.ErrSingular.
	ErrSingular = matrix.ErrSingular
)

// Operation tags for error wrapping.
const (
	opExpm        = "Expm"
	opCosm        = "Cosm"
	opSinm        = "Sinm"
	opKhatriRao   = "KhatriRao"
	opKhatriBatch = "KhatriRaoBatch"
)
