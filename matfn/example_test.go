// SPDX-License-Identifier: MIT

package matfn_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinalg/matfn"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// ExampleExpm exponentiates a generator of plane rotations.
func ExampleExpm() {
	theta := math.Pi / 3
	a, _ := matrix.FromRows([][]float64{{0, theta}, {-theta, 0}})

	r, err := matfn.Expm(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rot := r.(*matrix.Dense)
	c, _ := rot.At(0, 0)
	s, _ := rot.At(0, 1)
	fmt.Printf("cos=%.4f sin=%.4f\n", c, s)
	// Output:
	// cos=0.5000 sin=0.8660
}

// ExampleKhatriRao builds the column-wise Kronecker product of I and B.
func ExampleKhatriRao() {
	a, _ := matrix.FromRows([][]float64{{1, 0}, {0, 1}})
	b, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})

	c, err := matfn.KhatriRao(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)
	// Output:
	// [1, 0]
	// [3, 0]
	// [0, 2]
	// [0, 4]
}

// ExampleSinm shows that sin(N) = N for a nilpotent N.
func ExampleSinm() {
	n, _ := matrix.FromRows([][]float64{{0, 2}, {0, 0}})

	s, err := matfn.Sinm(n)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := s.(*matrix.Dense).At(0, 1)
	fmt.Printf("%.4f\n", v)
	// Output:
	// 2.0000
}
