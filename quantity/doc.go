// Package quantity pairs a floating-point magnitude with a dimension vector
// and threads the dim algebra through its arithmetic.
//
// Go's type system cannot derive the dimension of a product at compile time,
// so this package carries the vector alongside the magnitude and checks it
// at the call site: multiplication and division derive the result dimension
// from the operands, while addition, subtraction, and comparisons demand
// identical dimensions and fail with a DimensionMismatchError otherwise.
// That is the only error kind this package produces.
//
// Quantities are immutable. Every operation returns a new value; nothing is
// mutated in place, so values are safe to share across goroutines without
// coordination.
//
// Magnitude arithmetic is ordinary IEEE 754 float64 math. Division by a
// zero magnitude yields infinity or NaN with the algebraically-derived
// dimension - it is never an error. Comparisons keep float semantics as-is,
// including the non-reflexive treatment of NaN.
package quantity
