package ordered

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ordlab/cutpoints/mathx"
)

// SimplexAnchored — simplex-to-ordered transform.
//
// Description:
//
//	Maps a strictly positive probability vector p of length k ≥ 2 to a
//	strictly increasing vector y of length k−1, anchored at a caller
//	supplied reference scalar a:
//
//	  s[i] = p[0] + … + p[i]      for i = 0 .. k−2   (partial sums)
//	  y[i] = a + logit(s[i])
//
//	Each y[i] is the log-odds of the cumulative mass below category i+1,
//	shifted so that s = ½ lands exactly on the anchor. The partial sums
//	are strictly increasing (all p entries positive) and logit is
//	strictly monotone, so y is strictly increasing.
//
// Inverse:
//
//	s[i]   = expit(y[i] − a)
//	p[0]   = s[0]
//	p[i]   = s[i] − s[i-1]       for 0 < i < k−1
//	p[k-1] = 1 − s[k-2]
//
//	Defined only for strictly increasing y (ErrNotAscending otherwise).
//
// Jacobian:
//
//	The cumulative-sum stage is unit-lower-triangular (log-det 0); the
//	logit stage contributes −log s[i] − log(1−s[i]) per coordinate, which
//	in terms of t = y[i] − a is the stable softplus(t) + softplus(−t):
//
//	  log|det J| = Σ_i softplus(y[i]−a) + softplus(−(y[i]−a))
//
//	The anchor shift is constant per coordinate and contributes nothing.
//
// Complexity: O(k) time, O(k) memory per call.
//
// Errors: ErrEmptyVector, ErrTooFewCategories, ErrNaNInf, ErrNotSimplex,
// ErrDegenerateSimplex, ErrNotAscending, ErrLengthMismatch.
type SimplexAnchored struct {
	anchor float64
	opt    Options
}

// NewSimplexAnchored constructs the simplex-to-ordered transform with the
// given reference scalar. Panics with a stable message when anchor is
// NaN or ±Inf (programmer error; use New for data-driven construction).
func NewSimplexAnchored(anchor float64, opts ...Option) *SimplexAnchored {
	if math.IsNaN(anchor) || math.IsInf(anchor, 0) {
		panic(panicAnchorInvalid)
	}

	return &SimplexAnchored{anchor: anchor, opt: gatherOptions(opts...)}
}

// Anchor returns the reference scalar the cutpoints are offset from.
func (t *SimplexAnchored) Anchor() float64 { return t.anchor }

// Forward maps a strictly positive k-simplex to k−1 increasing cutpoints.
// The simplex sum is validated within the configured tolerance and used
// as-is: no renormalization takes place.
func (t *SimplexAnchored) Forward(raw []float64) ([]float64, error) {
	if err := checkSimplex(raw, t.opt.tol); err != nil {
		return nil, err
	}

	// Partial sums s[0..k-2]; the full sum (≈1) is excluded.
	s := floats.CumSum(make([]float64, len(raw)-1), raw[:len(raw)-1])

	y := make([]float64, len(s))
	for i, si := range s {
		// A sum barely above one (still within tolerance) can push a
		// partial sum onto the boundary, where logit leaves float64.
		if si <= 0 || si >= 1 {
			return nil, ErrDegenerateSimplex
		}
		y[i] = t.anchor + mathx.Logit(si)
		if math.Abs(y[i]-t.anchor) > SaturationThreshold {
			t.opt.log.Warn().
				Int("index", i).
				Float64("cumulative", si).
				Float64("cutpoint", y[i]).
				Msg("simplex forward: cutpoint beyond logistic saturation; inverse will lose mass")
		}
	}

	return y, nil
}

// Inverse recovers the simplex from k−1 strictly increasing cutpoints by
// differencing the logistic CDF values at y − anchor.
func (t *SimplexAnchored) Inverse(ordered []float64) ([]float64, error) {
	if err := checkFiniteVector(ordered); err != nil {
		return nil, err
	}
	if err := checkAscending(ordered); err != nil {
		return nil, err
	}

	p := make([]float64, len(ordered)+1)
	prev := 0.0
	for i, yi := range ordered {
		si := mathx.Expit(yi - t.anchor)
		p[i] = si - prev
		prev = si
	}
	p[len(ordered)] = 1 - prev

	return p, nil
}

// LogAbsDetJacobian returns log|det J| of Forward, evaluated from the
// ordered side (the numerically natural one). The raw argument may be
// nil; when present it must have exactly one more entry than ordered.
func (t *SimplexAnchored) LogAbsDetJacobian(raw, ordered []float64) (float64, error) {
	if err := checkFiniteVector(ordered); err != nil {
		return 0, err
	}
	if err := checkAscending(ordered); err != nil {
		return 0, err
	}
	if raw != nil && len(raw) != len(ordered)+1 {
		return 0, ErrLengthMismatch
	}

	sum := 0.0
	for _, yi := range ordered {
		d := yi - t.anchor
		sum += mathx.Softplus(d) + mathx.Softplus(-d)
	}

	return sum, nil
}
