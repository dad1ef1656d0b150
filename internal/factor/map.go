// Package factor implements the factorization pipeline: trial division
// against the precomputed sieve, delegation of the residual cofactor to a
// complete factorizer, and verification of the combined result.
package factor

import (
	"math/big"
	"sort"
)

// Entry is one discovered prime factor with its multiplicity.
type Entry struct {
	Prime    *big.Int
	Exponent int
}

// FactorMap accumulates the prime-to-exponent decomposition of an input.
// Keys are the primes' decimal strings, since big.Int is not comparable.
type FactorMap struct {
	entries map[string]*Entry
}

// NewFactorMap returns an empty FactorMap.
func NewFactorMap() *FactorMap {
	return &FactorMap{entries: map[string]*Entry{}}
}

// Add records exp occurrences of the prime p, merging with any existing
// entry for the same prime. Entries with exp < 1 are ignored.
func (m *FactorMap) Add(p *big.Int, exp int) {
	if exp < 1 {
		return
	}
	key := p.String()
	if e, ok := m.entries[key]; ok {
		e.Exponent += exp
		return
	}
	m.entries[key] = &Entry{Prime: new(big.Int).Set(p), Exponent: exp}
}

// Len returns the number of distinct primes recorded.
func (m *FactorMap) Len() int {
	return len(m.entries)
}

// Exponent returns the recorded exponent of p, or zero if absent.
func (m *FactorMap) Exponent(p *big.Int) int {
	if e, ok := m.entries[p.String()]; ok {
		return e.Exponent
	}
	return 0
}

// Entries returns the factors sorted ascending by prime.
func (m *FactorMap) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Prime.Cmp(out[j].Prime) < 0
	})
	return out
}

// Flat unrolls the map into a non-decreasing list of primes, each repeated
// as many times as its exponent.
func (m *FactorMap) Flat() []*big.Int {
	var out []*big.Int
	for _, e := range m.Entries() {
		for i := 0; i < e.Exponent; i++ {
			out = append(out, e.Prime)
		}
	}
	return out
}

// Product recomputes the integer the map decomposes.
func (m *FactorMap) Product() *big.Int {
	prod := big.NewInt(1)
	pe := new(big.Int)
	for _, e := range m.entries {
		pe.Exp(e.Prime, big.NewInt(int64(e.Exponent)), nil)
		prod.Mul(prod, pe)
	}
	return prod
}
