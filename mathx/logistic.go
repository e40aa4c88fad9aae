package mathx

import "math"

// ln(1/2): the branch point for Log1mExp recommended by Mächler's
// "Accurately computing log(1−exp(−|a|))" note.
const logHalf = -0.6931471805599453

// Logit returns the log-odds of s: log(s) − log(1−s).
//
// Computed as log(s) − log1p(−s) so the s→1 tail keeps precision.
// Domain is (0, 1): Logit(0) = −Inf, Logit(1) = +Inf, and values
// outside [0, 1] yield NaN, all per math package conventions.
func Logit(s float64) float64 {
	return math.Log(s) - math.Log1p(-s)
}

// Expit returns the logistic sigmoid 1/(1+exp(−x)), the inverse of Logit.
//
// The two-branch form never exponentiates a positive argument, so it
// cannot overflow; for x below about −745 it underflows to exactly 0.
func Expit(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)

	return e / (1 + e)
}

// Softplus returns log(1+exp(x)) without overflow.
//
// For x ≥ 0 it rewrites to x + log1p(exp(−x)); either branch only ever
// exponentiates a non-positive argument. Softplus(x) + Softplus(−x) is
// the stable form of −log(s) − log(1−s) at s = Expit(x).
func Softplus(x float64) float64 {
	if x >= 0 {
		return x + math.Log1p(math.Exp(-x))
	}

	return math.Log1p(math.Exp(x))
}

// Log1mExp returns log(1−exp(x)) for x ≤ 0.
//
// Uses log(−expm1(x)) near zero and log1p(−exp(x)) in the far tail,
// switching at ln(½). Log1mExp(0) = −Inf; positive x yields NaN.
func Log1mExp(x float64) float64 {
	if x > 0 {
		return math.NaN()
	}
	if x > logHalf {
		return math.Log(-math.Expm1(x))
	}

	return math.Log1p(-math.Exp(x))
}
