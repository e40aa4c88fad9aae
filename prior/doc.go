// Package prior supplies raw vectors for the cutpoint transforms from
// explicit, caller-owned random sources.
//
// Two suppliers cover the two constructions:
//
//   - Dirichlet — draws strictly positive probability simplices from a
//     vector of positive concentration parameters; feeds the
//     simplex-to-ordered construction
//   - Normal    — draws unconstrained real vectors; feeds the direct
//     ordering construction
//
// Both take a rand.Source at construction and never touch global RNG
// state, so independent draws from independent suppliers are safe from
// any number of goroutines (a single supplier is not: the underlying
// source is stateful — give each goroutine its own).
//
// ⚙️ Usage:
//
//	src := rand.NewSource(42)
//	d, err := prior.NewDirichlet([]float64{2, 2, 2}, src)
//	p := d.Draw(nil) // a strictly positive 3-simplex
//
// The draw methods reuse the destination slice when it has the right
// length, following the gonum convention.
package prior
