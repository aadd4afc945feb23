package transform

import "github.com/matzehuels/moebius/pkg/algebra"

// Transform maps points of an algebra to points of the same algebra.
type Transform[E any] interface {
	// Apply evaluates the transform at x.
	Apply(x E) E
}

// Chain composes two transforms of the same concrete kind into a single
// transform whose action equals applying other first, then the receiver.
// The equivalence only holds over associative algebras; see the package
// documentation.
type Chain[M any] interface {
	Chain(other M) M
}

// Moebius is the fractional-linear transform x -> (A·x + B) / (C·x + D)
// over the algebra E.
//
// A Moebius value is conceptually the 2x2 coefficient matrix [[A,B],[C,D]].
// It is a plain immutable value: Apply and Chain return new values and never
// mutate the receiver, so a Moebius may be shared freely across goroutines.
//
// No non-degeneracy invariant is enforced. A zero-determinant transform is a
// valid value whose Apply produces degenerate results through the algebra's
// own division.
type Moebius[E algebra.Element[E]] struct {
	A, B, C, D E
}

// New constructs a Moebius transform directly from its four coefficients.
// Construction is pure and total; no validation is performed.
func New[E algebra.Element[E]](a, b, c, d E) Moebius[E] {
	return Moebius[E]{A: a, B: b, C: c, D: d}
}

// Apply evaluates the transform at x, computing (A·x + B) / (C·x + D) with
// the coefficients multiplying x from the left. A degenerate denominator is
// not special-cased; the algebra's division result is returned as is.
func (m Moebius[E]) Apply(x E) E {
	return m.A.Mul(x).Add(m.B).Div(m.C.Mul(x).Add(m.D))
}

// Chain returns the composition of m with other: the transform whose
// coefficient matrix is the row-major product m·other. Over an associative
// algebra the result satisfies
//
//	m.Chain(other).Apply(x) == m.Apply(other.Apply(x))
//
// up to floating-point error. Over the octonions the matrix product is still
// well defined but the equivalence does not hold.
func (m Moebius[E]) Chain(other Moebius[E]) Moebius[E] {
	return New(
		m.A.Mul(other.A).Add(m.B.Mul(other.C)),
		m.A.Mul(other.B).Add(m.B.Mul(other.D)),
		m.C.Mul(other.A).Add(m.D.Mul(other.C)),
		m.C.Mul(other.B).Add(m.D.Mul(other.D)),
	)
}

var (
	_ Transform[algebra.Complex[float64]]       = Moebius[algebra.Complex[float64]]{}
	_ Chain[Moebius[algebra.Complex[float64]]]  = Moebius[algebra.Complex[float64]]{}
	_ Transform[algebra.Octonion[float64]]      = Moebius[algebra.Octonion[float64]]{}
	_ Chain[Moebius[algebra.Octonion[float64]]] = Moebius[algebra.Octonion[float64]]{}
)
