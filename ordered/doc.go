// Package ordered maps raw numeric vectors to strictly increasing
// cutpoint vectors for ordinal-outcome models, and back.
//
// 🚀 What is an ordered transform?
//
//	An ordinal likelihood cuts a latent continuous score into categories
//	at thresholds c[0] < c[1] < … < c[n-1]. Samplers and optimizers work
//	in unconstrained (or simplex) space, so a bijection between that space
//	and the ordered-vector space is needed — together with the
//	log-abs-det-Jacobian that keeps densities correct under the change of
//	variables.
//
// ✨ Two constructions, one capability:
//
//   - Direct — y[0] = x[0], y[i] = y[i-1] + exp(x[i]); any real vector
//     of length ≥ 1 becomes strictly increasing
//   - SimplexAnchored — y[i] = anchor + logit(p[0]+…+p[i]); a strictly
//     positive k-simplex becomes k−1 increasing log-odds cutpoints
//
// Both satisfy the Transform interface (Forward, Inverse,
// LogAbsDetJacobian) and the round-trip law Inverse(Forward(x)) == x.
// The caller picks the construction explicitly via a Strategy value —
// there is no ambient handler state, no global configuration.
//
// ⚙️ Usage:
//
//	import "github.com/ordlab/cutpoints/ordered"
//
//	tr := ordered.NewSimplexAnchored(0)            // anchor cutpoints at 0
//	y, err := tr.Forward([]float64{0.2, 0.5, 0.3}) // y has length 2
//	ld, err := tr.LogAbsDetJacobian(nil, y)        // density correction
//
// Guarantees:
//
//   - Outputs are strictly increasing for all valid inputs
//   - Malformed input (empty, non-finite, broken simplex, non-ascending
//     inverse input) returns a package sentinel error; errors.Is works
//   - Nothing is clamped or renormalized; saturation near the logistic
//     tails is reported through the optional diagnostics logger only
//   - Every call is pure and safe for arbitrary concurrency; MapForward /
//     MapInverse fan a batch out across bounded workers
//
// Complexity: O(n) time, O(n) memory per call, n = input length.
package ordered
