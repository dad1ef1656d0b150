package factor

import "math/big"

// Verify recomputes the product of the reported factors and compares it to
// the original input. A false return signals an inconsistent factor map; it
// is a diagnostic for the caller, never an error.
func Verify(n *big.Int, m *FactorMap) bool {
	if n == nil || m == nil {
		return false
	}
	return m.Product().Cmp(n) == 0
}
