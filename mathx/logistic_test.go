package mathx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ordlab/cutpoints/mathx"
)

// TestLogit_KnownValues checks exact log-odds at friendly probabilities.
func TestLogit_KnownValues(t *testing.T) {
	assert.Equal(t, 0.0, mathx.Logit(0.5), "even odds must map to zero")
	assert.InDelta(t, math.Log(2), mathx.Logit(2.0/3.0), 1e-15, "2:1 odds")
	assert.InDelta(t, -math.Log(2), mathx.Logit(1.0/3.0), 1e-15, "1:2 odds")
}

// TestLogit_Boundaries verifies the math package conventions at the
// domain edges: ±Inf at {0,1}, NaN outside.
func TestLogit_Boundaries(t *testing.T) {
	assert.True(t, math.IsInf(mathx.Logit(0), -1), "Logit(0) must be -Inf")
	assert.True(t, math.IsInf(mathx.Logit(1), +1), "Logit(1) must be +Inf")
	assert.True(t, math.IsNaN(mathx.Logit(-0.1)), "negative input must be NaN")
	assert.True(t, math.IsNaN(mathx.Logit(1.1)), "input above one must be NaN")
}

// TestExpit_InvertsLogit round-trips Expit∘Logit across the open interval,
// including points deep in both tails.
func TestExpit_InvertsLogit(t *testing.T) {
	for _, s := range []float64{1e-12, 1e-6, 0.25, 0.5, 0.75, 1 - 1e-6} {
		assert.InDelta(t, s, mathx.Expit(mathx.Logit(s)), 1e-12, "Expit(Logit(s)) at s=%v", s)
	}
}

// TestExpit_NoOverflow feeds arguments that overflow a naive exp(x) and
// checks saturation instead of Inf/NaN.
func TestExpit_NoOverflow(t *testing.T) {
	assert.Equal(t, 1.0, mathx.Expit(800), "large positive input saturates to 1")
	assert.Equal(t, 0.0, mathx.Expit(-800), "large negative input saturates to 0")
}

// TestSoftplus_MatchesNaive compares against log(1+exp(x)) where the naive
// form is itself trustworthy, and checks the asymptotes beyond.
func TestSoftplus_MatchesNaive(t *testing.T) {
	for _, x := range []float64{-20, -3, -0.5, 0, 0.5, 3, 20} {
		assert.InDelta(t, math.Log1p(math.Exp(x)), mathx.Softplus(x), 1e-14, "naive comparison at x=%v", x)
	}
	// Far tails: softplus(x) → x for x≫0, → 0 for x≪0.
	assert.InDelta(t, 1000.0, mathx.Softplus(1000), 1e-12, "positive asymptote")
	assert.Equal(t, 0.0, mathx.Softplus(-1000), "negative asymptote underflows to zero")
}

// TestSoftplus_LogOddsIdentity checks the identity used by the simplex
// Jacobian: Softplus(x)+Softplus(−x) == −log(s)−log(1−s) at s=Expit(x).
func TestSoftplus_LogOddsIdentity(t *testing.T) {
	for _, x := range []float64{-7, -1, 0, 1, 7} {
		s := mathx.Expit(x)
		want := -math.Log(s) - math.Log1p(-s)
		got := mathx.Softplus(x) + mathx.Softplus(-x)
		assert.InDelta(t, want, got, 1e-12, "identity at x=%v", x)
	}
}

// TestLog1mExp_Branches exercises both branches around the ln(½) split
// where the naive form is still trustworthy.
func TestLog1mExp_Branches(t *testing.T) {
	for _, x := range []float64{-0.1, -0.5, -0.69, -0.70, -5, -50} {
		want := math.Log(1 - math.Exp(x))
		assert.InDelta(t, want, mathx.Log1mExp(x), 1e-12, "branch agreement at x=%v", x)
	}
	// Near zero the naive form loses ~8 digits; the stable branch keeps
	// log(1−exp(−ε)) ≈ log(ε) to full precision.
	assert.InDelta(t, math.Log(1e-10), mathx.Log1mExp(-1e-10), 1e-9, "near-zero branch")
	assert.True(t, math.IsInf(mathx.Log1mExp(0), -1), "Log1mExp(0) must be -Inf")
	assert.True(t, math.IsNaN(mathx.Log1mExp(0.1)), "positive input must be NaN")
}
