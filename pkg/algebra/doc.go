// Package algebra provides the concrete algebras a Moebius transform can act
// on: real numbers, complex numbers, quaternions, and octonions.
//
// # Overview
//
// Every algebra in this package is a plain comparable struct with value
// semantics. Operations never mutate the receiver; they return new values.
// The shared arithmetic surface is captured by the [Element] constraint
// (addition, multiplication, division), which is all the transform core in
// [transform] requires.
//
// The four algebras form the Cayley-Dickson ladder: each one is built from
// pairs of the previous, doubling the dimension and shedding a property at
// every step:
//
//   - [Real]: 1-dimensional, ordered, commutative, associative
//   - [Complex]: 2-dimensional, commutative, associative
//   - [Quaternion]: 4-dimensional, non-commutative, associative
//   - [Octonion]: 8-dimensional, non-commutative, non-associative
//
// The loss of associativity at the octonion step matters downstream: Moebius
// transform composition ([transform.Moebius.Chain]) is only equivalent to
// sequential application over associative algebras.
//
// # Division
//
// Division is defined as right multiplication by the inverse, x.Div(y) =
// x·y⁻¹, with the inverse computed as the conjugate scaled by the reciprocal
// squared norm. For commutative algebras this is ordinary division. All
// operations are total: dividing by a non-invertible element flows IEEE
// Inf/NaN values through the scalar components rather than panicking. Callers
// that care must inspect the result themselves.
//
// # Scalar Type
//
// Each algebra is generic over its scalar type T, bounded by
// [constraints.Float]. float64 is the usual choice; float32 works wherever
// reduced precision is acceptable.
//
// [transform]: https://pkg.go.dev/github.com/matzehuels/moebius/pkg/transform
// [transform.Moebius.Chain]: https://pkg.go.dev/github.com/matzehuels/moebius/pkg/transform
// [constraints.Float]: https://pkg.go.dev/golang.org/x/exp/constraints#Float
package algebra
