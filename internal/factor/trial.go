package factor

import (
	"fmt"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// TrialDivide divides n by each sieve candidate in ascending order,
// repeating while the division is exact and recording nonzero exponents.
// It returns the reduced residual and the partial factor map.
//
// Because candidates are ascending, a prime power in the list can never
// divide the residual after its base prime has been stripped, so every
// recorded key is prime. The operation is deterministic and idempotent:
// rerunning it on the returned residual yields no further factors.
func TrialDivide(n *big.Int, candidates []uint64) (*big.Int, *FactorMap, error) {
	if n == nil || n.Cmp(one) < 0 {
		return nil, nil, fmt.Errorf("trial division requires n >= 1, got %v", n)
	}

	residual := new(big.Int).Set(n)
	factors := NewFactorMap()

	p := new(big.Int)
	q := new(big.Int)
	r := new(big.Int)

	for _, c := range candidates {
		p.SetUint64(c)
		exp := 0
		for {
			q.QuoRem(residual, p, r)
			if r.Sign() != 0 {
				break
			}
			residual.Set(q)
			exp++
		}
		if exp > 0 {
			factors.Add(p, exp)
		}
		if residual.Cmp(one) == 0 {
			break
		}
	}

	return residual, factors, nil
}
