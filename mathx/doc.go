// Package mathx provides the small set of numerically stable scalar
// primitives shared by the cutpoint transforms and their consumers.
//
// The logistic family is notoriously easy to get wrong in float64:
// naive logit(s) = log(s/(1−s)) loses digits near s≈1, naive
// log(1−exp(x)) underflows, and exp-based softplus overflows past ~709.
// This package centralizes the stable formulations so every caller uses
// the same ones:
//
//   - Logit / Expit — log-odds and its inverse, computed via log/log1p
//     rather than division
//   - Softplus      — log(1+exp(x)) without overflow for large |x|
//   - Log1mExp      — log(1−exp(x)) for x ≤ 0, switching between log1p
//     and expm1 branches at the standard ln(½) threshold
//
// All functions are pure and allocation-free. Domain violations return
// NaN or ±Inf following math package conventions (callers validate).
package mathx
