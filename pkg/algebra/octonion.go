package algebra

import "golang.org/x/exp/constraints"

// Octonion is an octonion represented as its Cayley-Dickson pair of
// quaternions, o = A + B·l, where l is the doubling unit.
//
// Octonion multiplication is neither commutative nor associative. It is
// still alternative (x·(x·y) = (x·x)·y) and norm-multiplicative
// (|x·y| = |x|·|y|), which the tests lean on to pin the multiplication
// convention down.
type Octonion[T constraints.Float] struct {
	A, B Quaternion[T]
}

// NewOctonion returns the octonion a + b·l from its quaternion pair.
func NewOctonion[T constraints.Float](a, b Quaternion[T]) Octonion[T] {
	return Octonion[T]{A: a, B: b}
}

// Add returns o + p.
func (o Octonion[T]) Add(p Octonion[T]) Octonion[T] {
	return Octonion[T]{A: o.A.Add(p.A), B: o.B.Add(p.B)}
}

// Sub returns o - p.
func (o Octonion[T]) Sub(p Octonion[T]) Octonion[T] {
	return Octonion[T]{A: o.A.Sub(p.A), B: o.B.Sub(p.B)}
}

// Mul returns the product o·p, receiver on the left, via the Cayley-Dickson
// doubling formula (a,b)·(c,d) = (a·c - conj(d)·b, d·a + b·conj(c)).
func (o Octonion[T]) Mul(p Octonion[T]) Octonion[T] {
	return Octonion[T]{
		A: o.A.Mul(p.A).Sub(p.B.Conj().Mul(o.B)),
		B: p.B.Mul(o.A).Add(o.B.Mul(p.A.Conj())),
	}
}

// Div returns the right quotient o·p⁻¹. Division by zero yields Inf/NaN
// components.
func (o Octonion[T]) Div(p Octonion[T]) Octonion[T] {
	return o.Mul(p.Inv())
}

// Neg returns -o.
func (o Octonion[T]) Neg() Octonion[T] {
	return Octonion[T]{A: o.A.Neg(), B: o.B.Neg()}
}

// Conj returns the octonion conjugate (conj(A), -B).
func (o Octonion[T]) Conj() Octonion[T] {
	return Octonion[T]{A: o.A.Conj(), B: o.B.Neg()}
}

// Scale returns o with every component multiplied by the scalar s.
func (o Octonion[T]) Scale(s T) Octonion[T] {
	return Octonion[T]{A: o.A.Scale(s), B: o.B.Scale(s)}
}

// SqrNorm returns the squared norm, the sum of all eight squared components.
func (o Octonion[T]) SqrNorm() T {
	return o.A.SqrNorm() + o.B.SqrNorm()
}

// Inv returns the multiplicative inverse o⁻¹ = conj(o)/|o|².
func (o Octonion[T]) Inv() Octonion[T] {
	return o.Conj().Scale(1 / o.SqrNorm())
}
