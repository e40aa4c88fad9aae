package prior

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrBadConcentration signals a non-positive or non-finite Dirichlet
	// concentration entry.
	ErrBadConcentration = errors.New("prior: concentration entries must be positive and finite")

	// ErrTooFewCategories signals fewer than two concentration entries;
	// a one-category simplex admits no cutpoint.
	ErrTooFewCategories = errors.New("prior: need at least two concentration entries")

	// ErrBadDimension signals a non-positive vector length.
	ErrBadDimension = errors.New("prior: dimension must be positive")

	// ErrBadScale signals a non-positive or non-finite Normal scale.
	ErrBadScale = errors.New("prior: scale must be positive and finite")

	// ErrNilSource signals a nil random source.
	ErrNilSource = errors.New("prior: nil random source")
)

// Dirichlet draws strictly positive probability simplices. The
// concentration vector is the Dirichlet hyperparameter: entries above 1
// concentrate mass toward the uniform simplex, entries below 1 toward
// the corners (where draws get close to — but never exactly — zero).
type Dirichlet struct {
	dist *distmv.Dirichlet
	k    int
}

// NewDirichlet validates the concentration vector and binds the source.
func NewDirichlet(concentration []float64, src rand.Source) (*Dirichlet, error) {
	if len(concentration) < 2 {
		return nil, ErrTooFewCategories
	}
	for _, a := range concentration {
		if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
			return nil, ErrBadConcentration
		}
	}
	if src == nil {
		return nil, ErrNilSource
	}

	return &Dirichlet{dist: distmv.NewDirichlet(concentration, src), k: len(concentration)}, nil
}

// Dim returns the simplex length k.
func (d *Dirichlet) Dim() int { return d.k }

// Draw returns one simplex. dst is reused when len(dst) == Dim(),
// otherwise a fresh slice is allocated.
func (d *Dirichlet) Draw(dst []float64) []float64 {
	if len(dst) != d.k {
		dst = make([]float64, d.k)
	}

	return d.dist.Rand(dst)
}

// Normal draws unconstrained real vectors with i.i.d. N(mu, sigma²)
// entries — the raw-vector supplier for the direct construction.
type Normal struct {
	dist distuv.Normal
	n    int
}

// NewNormal validates the parameters and binds the source.
func NewNormal(n int, mu, sigma float64, src rand.Source) (*Normal, error) {
	if n < 1 {
		return nil, ErrBadDimension
	}
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return nil, ErrBadScale
	}
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return nil, ErrBadScale
	}
	if src == nil {
		return nil, ErrNilSource
	}

	return &Normal{dist: distuv.Normal{Mu: mu, Sigma: sigma, Src: src}, n: n}, nil
}

// Dim returns the vector length n.
func (g *Normal) Dim() int { return g.n }

// Draw returns one unconstrained vector. dst is reused when
// len(dst) == Dim(), otherwise a fresh slice is allocated.
func (g *Normal) Draw(dst []float64) []float64 {
	if len(dst) != g.n {
		dst = make([]float64, g.n)
	}
	for i := range dst {
		dst[i] = g.dist.Rand()
	}

	return dst
}
