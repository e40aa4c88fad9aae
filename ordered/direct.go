package ordered

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Direct — direct ordering transform.
//
// Description:
//
//	Maps an arbitrary real vector x of length n ≥ 1 to a strictly
//	increasing vector y of the same length by keeping the first entry
//	and accumulating exponentiated gaps:
//
//	  y[0] = x[0]
//	  y[i] = y[i-1] + exp(x[i])   for i ≥ 1
//
//	The first cutpoint ranges over all reals; every gap is strictly
//	positive, so y is strictly increasing for any finite x.
//
// Inverse:
//
//	x[0] = y[0]
//	x[i] = log(y[i] − y[i-1])    for i ≥ 1
//
//	Defined only for strictly increasing y (ErrNotAscending otherwise).
//
// Jacobian:
//
//	The forward map is lower-triangular with diagonal (1, exp(x[1]), …,
//	exp(x[n-1])), hence log|det J| = Σ_{i≥1} x[i].
//
// Complexity: O(n) time, O(n) memory per call.
//
// Errors: ErrEmptyVector, ErrNaNInf, ErrNotAscending, ErrLengthMismatch.
type Direct struct {
	opt Options
}

// NewDirect constructs the direct ordering transform.
func NewDirect(opts ...Option) *Direct {
	return &Direct{opt: gatherOptions(opts...)}
}

// Forward maps unconstrained reals to a strictly increasing vector.
// The input is not mutated; the result is freshly allocated.
func (d *Direct) Forward(raw []float64) ([]float64, error) {
	if err := checkFiniteVector(raw); err != nil {
		return nil, err
	}

	// Gap vector: first entry as-is, exponentiated increments after.
	gaps := make([]float64, len(raw))
	gaps[0] = raw[0]
	for i := 1; i < len(raw); i++ {
		gaps[i] = math.Exp(raw[i])
		// exp underflow collapses a gap to zero and would tie adjacent
		// cutpoints; overflow sends the tail to +Inf. Both are reported,
		// never repaired.
		if gaps[i] == 0 || math.IsInf(gaps[i], 1) {
			d.opt.log.Warn().
				Int("index", i).
				Float64("raw", raw[i]).
				Msg("direct forward: exp(raw) left float64 range; cutpoints degenerate")
		}
	}

	return floats.CumSum(make([]float64, len(gaps)), gaps), nil
}

// Inverse recovers the unconstrained vector from a strictly increasing one.
func (d *Direct) Inverse(ordered []float64) ([]float64, error) {
	if err := checkFiniteVector(ordered); err != nil {
		return nil, err
	}
	if err := checkAscending(ordered); err != nil {
		return nil, err
	}

	raw := make([]float64, len(ordered))
	raw[0] = ordered[0]
	for i := 1; i < len(ordered); i++ {
		raw[i] = math.Log(ordered[i] - ordered[i-1])
	}

	return raw, nil
}

// LogAbsDetJacobian returns log|det J| of Forward at raw: Σ_{i≥1} raw[i].
// The ordered argument may be nil; when present it must have the same
// length as raw (the maps are length-preserving).
func (d *Direct) LogAbsDetJacobian(raw, ordered []float64) (float64, error) {
	if err := checkFiniteVector(raw); err != nil {
		return 0, err
	}
	if ordered != nil && len(ordered) != len(raw) {
		return 0, ErrLengthMismatch
	}

	return floats.Sum(raw[1:]), nil
}
