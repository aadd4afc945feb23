// Package transform provides the Moebius (fractional-linear) transform over
// any algebra satisfying the [algebra.Element] arithmetic contract.
//
// # Overview
//
// A Moebius transform maps a point x to (a·x + b) / (c·x + d), where the
// four coefficients a, b, c, d are elements of the same algebra as x. The
// [Moebius] type holds the coefficients; [Moebius.Apply] evaluates the map
// at a point, and [Moebius.Chain] composes two transforms into a single
// equivalent one by multiplying their coefficient matrices.
//
// Two small interfaces, [Transform] and [Chain], name these capabilities so
// callers can accept any transform kind that provides them.
//
// # Operand Order
//
// Coefficients multiply the point from the left: a·x, never x·a. Over the
// quaternions and octonions multiplication is not commutative, so the order
// is part of the transform's definition, not a style choice.
//
// # Composition and Associativity
//
// [Moebius.Chain] multiplies the 2x2 coefficient matrices [[a,b],[c,d]] of
// the two transforms. The identity
//
//	m.Apply(n.Apply(x)) == m.Chain(n).Apply(x)
//
// is the defining property of composition, and its derivation relies on
// associativity of the algebra's multiplication. It therefore holds over the
// reals, complex numbers, and quaternions, but not over the octonions: the
// matrix product is still computable there (it only needs addition and
// multiplication), yet the resulting transform is not equivalent to
// sequential application. This is an algebraic fact about octonions, not a
// defect to be patched; the test suite asserts the divergence.
//
// # Degenerate Transforms
//
// No invertibility check is performed anywhere: a transform whose
// determinant a·d - b·c is zero is representable and Apply simply yields
// whatever the algebra's division produces (typically Inf/NaN components).
// Construction is total and validation-free.
//
// [algebra.Element]: https://pkg.go.dev/github.com/matzehuels/moebius/pkg/algebra#Element
package transform
