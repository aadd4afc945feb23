package algebra

// Element is the arithmetic capability the transform core requires from an
// algebra. The type parameter is the element type itself, so a concrete
// algebra satisfies the constraint with plain value-receiver methods:
//
//	func (z Complex[T]) Add(w Complex[T]) Complex[T] { ... }
//
// All three operations are total from the caller's perspective. Dividing by
// a non-invertible element yields whatever the scalar arithmetic produces
// (Inf/NaN components); implementations never panic and never return errors.
//
// Nothing beyond arithmetic is required: no comparison, no ordering, no
// serialization.
type Element[A any] interface {
	// Add returns the sum of the receiver and a.
	Add(a A) A
	// Mul returns the product of the receiver and a, receiver on the left.
	// Multiplication is not commutative for quaternions and octonions.
	Mul(a A) A
	// Div returns the receiver right-divided by a, i.e. the receiver
	// multiplied by a's inverse.
	Div(a A) A
}
