package factor

import (
	"github.com/factorscope/core/internal/models"
	"github.com/factorscope/core/internal/sieve"
)

// Report converts a Result into its wire representation.
func Report(res Result) models.Factorization {
	entries := res.Factors.Entries()
	factors := make([]models.FactorEntry, 0, len(entries))
	for _, e := range entries {
		factors = append(factors, models.FactorEntry{
			Prime:    e.Prime.String(),
			Exponent: e.Exponent,
			Class:    sieve.Classify(e.Prime).String(),
		})
	}

	flat := make([]string, 0, len(entries))
	for _, p := range res.Factors.Flat() {
		flat = append(flat, p.String())
	}

	return models.Factorization{
		Input:    res.Input.String(),
		Factors:  factors,
		Flat:     flat,
		Verified: res.Verified,
		Elapsed:  res.Elapsed.String(),
	}
}
