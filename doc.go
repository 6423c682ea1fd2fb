// Package kalc implements the core of an interactive calculator: a
// recursive-descent parser for a small, ambiguous surface grammar, a
// tree-walking evaluator over interchangeable numeric backends, and a
// heuristic estimator that turns raw floating-point results back into
// human-meaningful forms such as 1/2, 2π/3, and √2.
//
// A Parser is a session. Functions and variables declared in one call to
// Parse stay visible to later calls, so "f(x) = x^2" followed by "f(4)"
// evaluates to 16, and a function declared earlier may be called with a
// juxtaposed literal argument, as in "sqrt64".
//
// Estimation is deliberately best-effort: it inspects the rendered decimal
// digits of a value rather than reconstructing exact rationals, and it is
// allowed to decline.
package kalc
