// Package models defines the wire-level data structures exchanged with
// clients: the factorization request and the JSON shape of a result.
package models

// FactorRequest is the body of a POST /factor call. Number is the target
// as a decimal numeral, which must parse to an integer >= 2.
type FactorRequest struct {
	Number string `json:"number"`
}

// FactorEntry is one prime factor of the input with its multiplicity and
// congruence-class annotation.
type FactorEntry struct {
	Prime    string `json:"prime"`
	Exponent int    `json:"exponent"`
	Class    string `json:"class"`
}

// Factorization is the complete result document: the prime-to-exponent
// decomposition, its flat unrolled form, and the verification outcome.
type Factorization struct {
	Input    string        `json:"input"`
	Factors  []FactorEntry `json:"factors"`
	Flat     []string      `json:"flat"`
	Verified bool          `json:"verified"`
	Elapsed  string        `json:"elapsed,omitempty"`
}
