// Package pkg provides the core libraries for Moebius transform arithmetic
// over field-like algebras.
//
// # Overview
//
// A Moebius (fractional-linear) transform maps a point x to
// (a·x + b) / (c·x + d). The library makes that map generic over the algebra
// the point and the coefficients live in, from plain real numbers up the
// Cayley-Dickson ladder to octonions. The pkg directory is organized into
// two areas:
//
//  1. [algebra] - Concrete algebras (real, complex, quaternion, octonion)
//     and the arithmetic contract the transform core consumes
//  2. [transform] - The generic Moebius transform: evaluation and
//     composition
//
// # Quick Start
//
// Evaluate and compose transforms over the complex numbers:
//
//	import (
//	    "github.com/matzehuels/moebius/pkg/algebra"
//	    "github.com/matzehuels/moebius/pkg/transform"
//	)
//
//	m := transform.New(
//	    algebra.NewComplex(2.0, 0), algebra.NewComplex(0.0, 0),
//	    algebra.NewComplex(0.0, 0), algebra.NewComplex(1.0, 0),
//	)
//	y := m.Apply(algebra.NewComplex(3.0, 0)) // (6+0i)
//	c := m.Chain(m)                          // doubling twice quadruples
//
// # Composition Caveat
//
// Composing transforms via [transform.Moebius.Chain] is matrix
// multiplication of the coefficient matrices, and its equivalence with
// sequential application depends on the algebra being associative. Reals,
// complex numbers, and quaternions qualify; octonions do not. See the
// [transform] package documentation for the full story.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/transform    # Transform properties only
//	go test -run Example       # Examples only
//
// [algebra]: https://pkg.go.dev/github.com/matzehuels/moebius/pkg/algebra
// [transform]: https://pkg.go.dev/github.com/matzehuels/moebius/pkg/transform
// [transform.Moebius.Chain]: https://pkg.go.dev/github.com/matzehuels/moebius/pkg/transform
package pkg
