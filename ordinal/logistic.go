package ordinal

import (
	"errors"
	"math"

	"github.com/ordlab/cutpoints/mathx"
)

var (
	// ErrNoCutpoints signals an empty cutpoint vector (k−1 ≥ 1 required).
	ErrNoCutpoints = errors.New("ordinal: need at least one cutpoint")

	// ErrNaNInf signals a non-finite cutpoint or latent score.
	ErrNaNInf = errors.New("ordinal: NaN or Inf encountered")

	// ErrNotAscending signals cutpoints that are not strictly increasing.
	ErrNotAscending = errors.New("ordinal: cutpoints must be strictly increasing")

	// ErrBadCategory signals a category index outside [0, k).
	ErrBadCategory = errors.New("ordinal: category out of range")
)

// Logistic is an ordered-logistic likelihood over k = len(cutpoints)+1
// categories. Construct it from any Transform's forward output.
type Logistic struct {
	cuts []float64
}

// NewLogistic validates and copies the cutpoint vector.
func NewLogistic(cutpoints []float64) (*Logistic, error) {
	if len(cutpoints) == 0 {
		return nil, ErrNoCutpoints
	}
	for i, c := range cutpoints {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, ErrNaNInf
		}
		if i > 0 && c <= cutpoints[i-1] {
			return nil, ErrNotAscending
		}
	}

	return &Logistic{cuts: append([]float64(nil), cutpoints...)}, nil
}

// NumCategories returns k.
func (l *Logistic) NumCategories() int { return len(l.cuts) + 1 }

// logCDF is log σ(x), the logistic log-CDF: −softplus(−x).
func logCDF(x float64) float64 { return -mathx.Softplus(-x) }

// LogProb returns log P(Y = category | score).
//
// Interior categories use logσ(hi) + log(1 − exp(logσ(lo) − logσ(hi))),
// which stays finite wherever the true probability is nonzero.
func (l *Logistic) LogProb(category int, score float64) (float64, error) {
	if category < 0 || category >= l.NumCategories() {
		return 0, ErrBadCategory
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, ErrNaNInf
	}

	last := len(l.cuts)
	switch category {
	case 0:
		return logCDF(l.cuts[0] - score), nil
	case last:
		// 1 − σ(t) = σ(−t).
		return logCDF(score - l.cuts[last-1]), nil
	default:
		hi := logCDF(l.cuts[category] - score)
		lo := logCDF(l.cuts[category-1] - score)

		return hi + mathx.Log1mExp(lo-hi), nil
	}
}

// LogProbs returns the full length-k vector of category log
// probabilities at the given score.
func (l *Logistic) LogProbs(score float64) ([]float64, error) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return nil, ErrNaNInf
	}

	out := make([]float64, l.NumCategories())
	for c := range out {
		lp, err := l.LogProb(c, score)
		if err != nil {
			return nil, err
		}
		out[c] = lp
	}

	return out, nil
}

// Probs returns the category probability simplex at the given score, by
// differencing the logistic CDF directly.
func (l *Logistic) Probs(score float64) ([]float64, error) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return nil, ErrNaNInf
	}

	out := make([]float64, l.NumCategories())
	prev := 0.0
	for i, c := range l.cuts {
		s := mathx.Expit(c - score)
		out[i] = s - prev
		prev = s
	}
	out[len(l.cuts)] = 1 - prev

	return out, nil
}
