// Package ordinal converts cutpoints and a latent score into category
// probabilities — the likelihood head the ordered transforms feed.
//
// 🚀 The model
//
//	An ordered-logistic likelihood places a logistic distribution at the
//	latent score η and reads off the mass between adjacent cutpoints:
//
//	  P(Y = c | η) = σ(cut[c] − η) − σ(cut[c−1] − η)
//
//	with cut[−1] = −∞ and cut[k−1] = +∞, so k−1 cutpoints define k
//	categories. Raising η shifts mass toward higher categories.
//
// Log-probabilities are computed with stable log-sigmoid differences
// (softplus / log1mexp), never by taking log of a subtracted pair of
// sigmoids, so deep-tail categories keep meaningful values.
//
// The anchored simplex construction and this likelihood are two views of
// the same object: Logistic(y).Probs(a) equals
// SimplexAnchored(a).Inverse(y) — the identity the tests pin down.
//
// Complexity: O(k) time, O(k) memory per evaluation; evaluations are
// pure and safe for concurrent use.
package ordinal
