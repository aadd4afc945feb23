package algebra

import "golang.org/x/exp/constraints"

// Quaternion is a quaternion w + x·i + y·j + z·k over the scalar type T.
//
// Multiplication follows the Hamilton convention (i·j = k). It is
// associative but not commutative, so left and right division differ;
// [Quaternion.Div] is right division.
type Quaternion[T constraints.Float] struct {
	W, X, Y, Z T
}

// NewQuaternion returns the quaternion w + x·i + y·j + z·k.
func NewQuaternion[T constraints.Float](w, x, y, z T) Quaternion[T] {
	return Quaternion[T]{W: w, X: x, Y: y, Z: z}
}

// QuaternionFromComplex returns the quaternion a + b·j, the Cayley-Dickson
// pair view of a quaternion as two complex numbers.
func QuaternionFromComplex[T constraints.Float](a, b Complex[T]) Quaternion[T] {
	return Quaternion[T]{W: a.Re, X: a.Im, Y: b.Re, Z: b.Im}
}

// Add returns q + r.
func (q Quaternion[T]) Add(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{W: q.W + r.W, X: q.X + r.X, Y: q.Y + r.Y, Z: q.Z + r.Z}
}

// Sub returns q - r.
func (q Quaternion[T]) Sub(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{W: q.W - r.W, X: q.X - r.X, Y: q.Y - r.Y, Z: q.Z - r.Z}
}

// Mul returns the Hamilton product q·r, receiver on the left.
func (q Quaternion[T]) Mul(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Div returns the right quotient q·r⁻¹. Division by zero yields Inf/NaN
// components.
func (q Quaternion[T]) Div(r Quaternion[T]) Quaternion[T] {
	return q.Mul(r.Inv())
}

// Neg returns -q.
func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Conj returns the quaternion conjugate w - x·i - y·j - z·k.
func (q Quaternion[T]) Conj() Quaternion[T] {
	return Quaternion[T]{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Scale returns q with every component multiplied by the scalar s.
func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{W: q.W * s, X: q.X * s, Y: q.Y * s, Z: q.Z * s}
}

// SqrNorm returns the squared norm w² + x² + y² + z².
func (q Quaternion[T]) SqrNorm() T {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Inv returns the multiplicative inverse q⁻¹ = conj(q)/|q|².
func (q Quaternion[T]) Inv() Quaternion[T] {
	return q.Conj().Scale(1 / q.SqrNorm())
}
