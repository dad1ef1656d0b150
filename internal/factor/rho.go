package factor

import (
	"fmt"
	"math/big"
)

// smallTrialLimit bounds the pre-strip inside PollardRho. Tiny factors fall
// out here so the cycle search only ever sees hard composites.
const smallTrialLimit = 1 << 12

// rhoMaxSteps bounds one cycle search; exhausting every attempt surfaces as
// a factorization failure rather than non-termination.
const rhoMaxSteps = 1 << 19

// PollardRho is the default complete factorizer: Floyd-cycle Pollard rho
// with ProbablyPrime as the primality oracle. ProbablyPrime is exact below
// 2^64 and leaves a negligible error probability above it. The orchestrator
// treats this implementation as a swappable collaborator; anything able to
// fully factor an integer >= 2 can stand in for it.
type PollardRho struct{}

// Factorize returns the complete prime decomposition of n, sorted ascending.
func (f *PollardRho) Factorize(n *big.Int) ([]Entry, error) {
	if n == nil || n.Cmp(two) < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidInput, n)
	}

	factors := NewFactorMap()
	m := new(big.Int).Set(n)

	p := new(big.Int)
	q := new(big.Int)
	r := new(big.Int)
	for c := uint64(2); c <= smallTrialLimit && m.Cmp(one) > 0; c++ {
		p.SetUint64(c)
		exp := 0
		for {
			q.QuoRem(m, p, r)
			if r.Sign() != 0 {
				break
			}
			m.Set(q)
			exp++
		}
		if exp > 0 {
			factors.Add(p, exp)
		}
	}

	var pending []*big.Int
	if m.Cmp(one) > 0 {
		pending = append(pending, m)
	}
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if cur.ProbablyPrime(32) {
			factors.Add(cur, 1)
			continue
		}

		d, err := rhoSplit(cur)
		if err != nil {
			return nil, err
		}
		pending = append(pending, d, new(big.Int).Quo(cur, d))
	}

	return factors.Entries(), nil
}

// rhoSplit finds one nontrivial divisor of an odd composite, retrying with
// different polynomial constants when a cycle closes without a factor.
func rhoSplit(n *big.Int) (*big.Int, error) {
	if n.Bit(0) == 0 {
		return new(big.Int).Set(two), nil
	}
	for c := int64(1); c <= 24; c++ {
		if d := rhoCycle(n, c); d != nil {
			return d, nil
		}
	}
	return nil, fmt.Errorf("pollard rho exhausted its attempts on %s", n)
}

func rhoCycle(n *big.Int, c int64) *big.Int {
	x := big.NewInt(2)
	y := big.NewInt(2)
	k := big.NewInt(c)
	d := new(big.Int)
	t := new(big.Int)

	step := func(v *big.Int) {
		v.Mul(v, v)
		v.Add(v, k)
		v.Mod(v, n)
	}

	for i := 0; i < rhoMaxSteps; i++ {
		step(x)
		step(y)
		step(y)

		t.Sub(x, y)
		if t.Sign() == 0 {
			// Cycle closed without exposing a factor.
			return nil
		}
		t.Abs(t)
		d.GCD(nil, nil, t, n)
		if d.Cmp(one) > 0 {
			if d.Cmp(n) < 0 {
				return new(big.Int).Set(d)
			}
			return nil
		}
	}
	return nil
}
