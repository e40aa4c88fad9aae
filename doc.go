// Package cutpoints turns raw numeric vectors into strictly increasing
// cutpoint vectors for ordinal-outcome models — and back again, with the
// Jacobian corrections density-based consumers need.
//
// 🚀 What is cutpoints?
//
//	Ordinal models split a latent continuous score into ordered categories
//	at a set of thresholds ("cutpoints"). This library provides the two
//	standard constructions of such thresholds:
//	  • Direct ordering — any real vector becomes increasing via
//	    cumulative exponentiated gaps
//	  • Simplex-to-ordered — a probability simplex becomes increasing
//	    log-odds cutpoints anchored at a reference scalar
//
// ✨ Why choose cutpoints?
//
//   - Exact contracts – forward, inverse and log-abs-det-Jacobian for both
//     constructions, with a round-trip law covered by tests
//   - Fail fast – malformed input surfaces a sentinel error immediately;
//     nothing is silently clamped or renormalized
//   - Pure functions – no hidden state, thread-safe by construction,
//     batch mapping across independent vectors runs in parallel
//   - Explicit everything – strategy selection, anchors, tolerances and
//     RNG sources are all passed by the caller, never ambient
//
// Everything is organized under small subpackages:
//
//	ordered/ — the two cutpoint transforms, strategy selection, batch map
//	mathx/   — numerically stable logit/expit/softplus primitives
//	prior/   — Dirichlet & Normal raw-vector suppliers (explicit RNG)
//	ordinal/ — ordered-logistic likelihood head consuming the cutpoints
//
// Quick sketch:
//
//	p = [⅓, ⅓, ⅓]  ──SimplexAnchored(0)──▶  y = [−ln2, +ln2]
//	                                          │
//	                      latent score η ─────┴──▶ category log-probs
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/ordlab/cutpoints
package cutpoints
