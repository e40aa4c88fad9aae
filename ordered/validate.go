// Package ordered: input validation shared by both constructions.
// Validation is fail-fast and ordered: shape → finiteness → structure.
// Helpers return sentinels from errors.go; none of them mutate input.

package ordered

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// checkFiniteVector rejects empty vectors and NaN/±Inf entries.
func checkFiniteVector(v []float64) error {
	if len(v) == 0 {
		return ErrEmptyVector
	}
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// checkAscending rejects vectors with any tie or descent between
// adjacent entries. Assumes finiteness was checked first.
func checkAscending(v []float64) error {
	for i := 1; i < len(v); i++ {
		if v[i] <= v[i-1] {
			return ErrNotAscending
		}
	}

	return nil
}

// checkSimplex validates a probability vector: k ≥ 2, finite entries,
// no negatives, no exact zeros, sum within tol of one.
// Zero entries get their own sentinel because they are the one violation
// that would otherwise slip through as tied cutpoints downstream.
func checkSimplex(p []float64, tol float64) error {
	if len(p) == 0 {
		return ErrEmptyVector
	}
	if len(p) < 2 {
		return ErrTooFewCategories
	}
	for _, x := range p {
		switch {
		case math.IsNaN(x) || math.IsInf(x, 0):
			return ErrNaNInf
		case x < 0:
			return ErrNotSimplex
		case x == 0:
			return ErrDegenerateSimplex
		}
	}
	if math.Abs(floats.Sum(p)-1) > tol {
		return ErrNotSimplex
	}

	return nil
}
