// Package sieve builds the candidate-divisor list used for small-factor
// stripping: small primes classified by their residue mod 6, plus prime
// powers that are expressible as a sum of two squares.
package sieve

import (
	"math/big"
	"sort"
	"sync"
)

// DefaultBound is the default upper limit for sieve candidates.
const DefaultBound = 100

var six = big.NewInt(6)

// CongruenceClass is the residue of an integer mod 6. Every prime greater
// than 3 falls in class 1 or 5; the other classes are divisible by 2 or 3.
type CongruenceClass int

func (c CongruenceClass) String() string {
	return map[CongruenceClass]string{
		0: "0 mod 6", 1: "1 mod 6", 2: "2 mod 6",
		3: "3 mod 6", 4: "4 mod 6", 5: "5 mod 6",
	}[c]
}

// Classify returns the congruence class of n mod 6.
func Classify(n *big.Int) CongruenceClass {
	m := new(big.Int).Mod(n, six)
	return CongruenceClass(m.Int64())
}

// Default returns the candidate list for DefaultBound. It is built on first
// use and safe for unsynchronized concurrent reads afterward; callers must
// not modify the returned slice.
var Default = sync.OnceValue(func() []uint64 {
	return Build(DefaultBound)
})

// Build returns the candidate-divisor list for the given bound, sorted
// ascending with no duplicates:
//
//   - every prime p <= bound with p in {2, 3} or p mod 6 in {1, 5}, which
//     together cover all primes up to the bound;
//   - every prime power p^k <= bound (k >= 2, p >= 5, p mod 6 in {1, 5})
//     that is expressible as a sum of two squares.
func Build(bound int) []uint64 {
	if bound < 2 {
		return nil
	}

	limit := uint64(bound)
	candidates := []uint64{}
	seen := map[uint64]bool{}

	add := func(v uint64) {
		if !seen[v] {
			seen[v] = true
			candidates = append(candidates, v)
		}
	}

	for p := uint64(2); p <= limit; p++ {
		if !isPrime(p) {
			continue
		}
		if p == 2 || p == 3 || p%6 == 1 || p%6 == 5 {
			add(p)
		}
	}

	for p := uint64(5); p*p <= limit; p++ {
		if !isPrime(p) || (p%6 != 1 && p%6 != 5) {
			continue
		}
		for q := p * p; q <= limit; q *= p {
			if _, ok := SumOfTwoSquares(q); ok {
				add(q)
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	return candidates
}

func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := uint64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
