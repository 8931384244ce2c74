package roulette

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"roulette-table-service/internal/core/domain"
)

const pockets = 37 // 0-36, single zero

// redNumbers is the fixed 18-element red set of the European wheel.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true,
	12: true, 14: true, 16: true, 18: true, 19: true,
	21: true, 23: true, 25: true, 27: true, 30: true,
	32: true, 34: true, 36: true,
}

// Spin draws a uniformly random pocket using crypto/rand. The draw is
// money-grade: no seedable PRNG is involved.
func Spin() domain.Outcome {
	n, err := rand.Int(rand.Reader, big.NewInt(pockets))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// there is no meaningful recovery for a money-moving draw.
		panic(fmt.Sprintf("roulette: entropy source unavailable: %v", err))
	}
	out, _ := Classify(int(n.Int64()))
	return out
}

// Classify derives every descriptive attribute of a winning number. It is
// applied identically whether the number came from Spin or from a caller
// (a pre-shown animation result); the caller's own color/parity/dozen/column
// claims are never consulted. Zero classifies as green, not even, not low,
// dozen 0, column 0.
func Classify(n int) (domain.Outcome, error) {
	if n < 0 || n > 36 {
		return domain.Outcome{}, fmt.Errorf("winning number %d out of range [0,36]", n)
	}

	out := domain.Outcome{WinningNumber: n}

	switch {
	case n == 0:
		out.Color = "green"
	case redNumbers[n]:
		out.Color = "red"
	default:
		out.Color = "black"
	}

	if n != 0 {
		out.IsEven = n%2 == 0
		out.IsLow = n <= 18
		out.Dozen = (n-1)/12 + 1
		out.Column = (n-1)%3 + 1
	}

	return out, nil
}
