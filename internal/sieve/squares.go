package sieve

import "math"

// SquareRep is a witness that n is a sum of two squares: A*A + B*B = n,
// with A <= B and A the smallest non-negative value admitting a witness.
type SquareRep struct {
	A uint64
	B uint64
}

// SumOfTwoSquares reports whether n can be written as a sum of two squares
// of non-negative integers, returning a witness if so. It walks candidate
// values of a upward, so the witness with minimal a always wins.
//
// Cost is O(sqrt(n)) integer square roots. The tester is only ever applied
// to sieve-bound-sized inputs; do not use it on the factorization target.
func SumOfTwoSquares(n uint64) (SquareRep, bool) {
	for a := uint64(0); a*a <= n; a++ {
		r := n - a*a
		b := isqrt(r)
		if b*b == r {
			return SquareRep{A: a, B: b}, true
		}
	}
	return SquareRep{}, false
}

// isqrt returns floor(sqrt(n)), correcting the float estimate at the edges.
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
