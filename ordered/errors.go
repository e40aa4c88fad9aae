// Package ordered: sentinel error set.
// All transforms MUST return these sentinels for caller-triggered
// conditions and tests MUST check them via errors.Is. Panics are reserved
// for programmer errors in option constructors.

package ordered

import "errors"

var (
	// ErrEmptyVector is returned when an input vector has length zero.
	ErrEmptyVector = errors.New("ordered: input vector must be non-empty")

	// ErrTooFewCategories is returned by the simplex construction when the
	// simplex has fewer than two entries (k < 2 admits no cutpoint).
	ErrTooFewCategories = errors.New("ordered: simplex needs at least two categories")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("ordered: NaN or Inf encountered")

	// ErrNotSimplex signals a negative entry, or entries whose sum deviates
	// from one by more than the configured tolerance.
	ErrNotSimplex = errors.New("ordered: entries must be non-negative and sum to one within tolerance")

	// ErrDegenerateSimplex signals an exactly-zero simplex entry, or a
	// partial sum that reaches the unit boundary. Either would tie or
	// unbound adjacent cutpoints and break strict monotonicity, so both
	// are rejected up front.
	ErrDegenerateSimplex = errors.New("ordered: simplex entry is zero")

	// ErrNotAscending is returned by inverse transforms (and Jacobian
	// evaluation on the ordered side) when the input is not strictly
	// increasing. Ties count as violations.
	ErrNotAscending = errors.New("ordered: vector is not strictly increasing")

	// ErrLengthMismatch signals that the raw and ordered vectors handed to
	// LogAbsDetJacobian disagree on length for the chosen construction.
	ErrLengthMismatch = errors.New("ordered: raw/ordered length mismatch")

	// ErrBadAnchor signals a non-finite anchor in a Strategy value.
	ErrBadAnchor = errors.New("ordered: anchor must be finite")

	// ErrUnknownStrategy is returned by New for an unrecognized Kind.
	ErrUnknownStrategy = errors.New("ordered: unknown strategy kind")

	// ErrNilTransform is returned by the batch map helpers when the
	// Transform argument is nil.
	ErrNilTransform = errors.New("ordered: nil transform")
)
