package factor

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/factorscope/core/internal/sieve"
)

// ErrInvalidInput is returned when the factorization target is not an
// integer >= 2. It is detected eagerly, before any sieve work.
var ErrInvalidInput = errors.New("input must be an integer >= 2")

// CompleteFactorizer fully factors an integer >= 2 into primes with
// multiplicities. Implementations may take arbitrarily long; the
// orchestrator imposes no timeout and performs no retries.
type CompleteFactorizer interface {
	Factorize(n *big.Int) ([]Entry, error)
}

// Progress describes one discovered factor, emitted in discovery order.
type Progress struct {
	Prime    *big.Int
	Class    sieve.CongruenceClass
	Exponent int
}

// Result is the outcome of a full factorization run.
type Result struct {
	Input    *big.Int
	Factors  *FactorMap
	Elapsed  time.Duration
	Verified bool
}

// Orchestrator drives trial division against a fixed candidate list and
// hands any residual cofactor to a complete factorizer. The candidate list
// is read-only, so a single Orchestrator is safe for concurrent use.
type Orchestrator struct {
	candidates []uint64
	complete   CompleteFactorizer
	progress   func(Progress)
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithCompleteFactorizer replaces the default Pollard rho collaborator.
func WithCompleteFactorizer(cf CompleteFactorizer) Option {
	return func(o *Orchestrator) { o.complete = cf }
}

// WithProgress installs a callback invoked once per discovered factor.
// The callback runs synchronously on the factorizing goroutine.
func WithProgress(fn func(Progress)) Option {
	return func(o *Orchestrator) { o.progress = fn }
}

// New returns an Orchestrator over the given candidate list.
func New(candidates []uint64, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		candidates: candidates,
		complete:   &PollardRho{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Factorize returns the complete prime-to-exponent decomposition of n.
// Factors up to the sieve bound are stripped by trial division; a residual
// greater than one goes to the complete factorizer, whose errors propagate
// unchanged. The two phases discover disjoint primes, since trial division
// has already removed every sieve-listed one.
func (o *Orchestrator) Factorize(n *big.Int) (*FactorMap, error) {
	if n == nil || n.Cmp(two) < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidInput, n)
	}

	residual, factors, err := TrialDivide(n, o.candidates)
	if err != nil {
		return nil, err
	}
	for _, e := range factors.Entries() {
		o.emit(e)
	}

	if residual.Cmp(one) > 0 {
		entries, err := o.complete.Factorize(residual)
		if err != nil {
			return nil, fmt.Errorf("complete factorization of residual %s: %w", residual, err)
		}
		for _, e := range entries {
			factors.Add(e.Prime, e.Exponent)
			o.emit(e)
		}
	}

	return factors, nil
}

// Run executes Factorize with wall-clock timing and verifies the result
// against the input.
func (o *Orchestrator) Run(n *big.Int) (Result, error) {
	start := time.Now()
	factors, err := o.Factorize(n)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Input:    new(big.Int).Set(n),
		Factors:  factors,
		Elapsed:  time.Since(start),
		Verified: Verify(n, factors),
	}, nil
}

func (o *Orchestrator) emit(e Entry) {
	if o.progress == nil {
		return
	}
	o.progress(Progress{
		Prime:    e.Prime,
		Class:    sieve.Classify(e.Prime),
		Exponent: e.Exponent,
	})
}
