// Package ordered: public contract types — the Transform capability and
// the tagged Strategy variant used for explicit construction selection.

package ordered

import "math"

// Transform is the full contract an ordinal likelihood or density-based
// sampler needs from a cutpoint construction.
//
//   - Forward maps a raw vector (unconstrained reals, or a simplex,
//     depending on the construction) to a strictly increasing vector.
//   - Inverse recovers the raw vector from an ordered one and fails with
//     ErrNotAscending when the input violates strict ordering.
//   - LogAbsDetJacobian reports log|det J| of the forward map for the
//     given (raw, ordered) pair. Each construction evaluates it from the
//     side that is numerically natural (Direct from raw, SimplexAnchored
//     from ordered); the other argument may be nil and is then only
//     length-checked when present.
//
// Implementations are pure: no hidden state, no I/O, safe for
// concurrent use from any number of goroutines.
type Transform interface {
	Forward(raw []float64) ([]float64, error)
	Inverse(ordered []float64) ([]float64, error)
	LogAbsDetJacobian(raw, ordered []float64) (float64, error)
}

// Kind tags the available cutpoint constructions.
type Kind int

const (
	// KindDirect selects the direct ordering transform (Direct).
	KindDirect Kind = iota

	// KindSimplexAnchored selects the simplex-to-ordered transform
	// (SimplexAnchored); Strategy.Anchor supplies the reference scalar.
	KindSimplexAnchored
)

// String returns a stable human-readable tag name.
func (k Kind) String() string {
	switch k {
	case KindDirect:
		return "direct"
	case KindSimplexAnchored:
		return "simplex-anchored"
	default:
		return "unknown"
	}
}

// Strategy is the explicit, caller-supplied selection of a cutpoint
// construction. It replaces any dynamically-scoped handler mechanism:
// the code that owns a latent variable decides its Strategy up front and
// passes it down as a plain value.
type Strategy struct {
	// Kind picks the construction.
	Kind Kind

	// Anchor is the zero-reference for KindSimplexAnchored; ignored by
	// KindDirect. Must be finite.
	Anchor float64
}

// New resolves a Strategy into a ready Transform.
// Returns ErrUnknownStrategy for an unrecognized Kind and ErrBadAnchor
// for a non-finite anchor. Options apply to the resulting transform.
func New(s Strategy, opts ...Option) (Transform, error) {
	switch s.Kind {
	case KindDirect:
		return NewDirect(opts...), nil
	case KindSimplexAnchored:
		if math.IsNaN(s.Anchor) || math.IsInf(s.Anchor, 0) {
			return nil, ErrBadAnchor
		}

		return NewSimplexAnchored(s.Anchor, opts...), nil
	default:
		return nil, ErrUnknownStrategy
	}
}
