package algebra

import "golang.org/x/exp/constraints"

// Complex is a complex number re + im·i over the scalar type T.
//
// The struct is a plain value: operations return new values and never mutate
// the receiver. Two Complex values are comparable with ==.
type Complex[T constraints.Float] struct {
	Re, Im T
}

// NewComplex returns the complex number re + im·i.
func NewComplex[T constraints.Float](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// Add returns z + w.
func (z Complex[T]) Add(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Sub returns z - w.
func (z Complex[T]) Sub(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// Mul returns the product z·w.
func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	return Complex[T]{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Div returns z·w⁻¹. Division by zero yields Inf/NaN components.
func (z Complex[T]) Div(w Complex[T]) Complex[T] {
	return z.Mul(w.Inv())
}

// Neg returns -z.
func (z Complex[T]) Neg() Complex[T] {
	return Complex[T]{Re: -z.Re, Im: -z.Im}
}

// Conj returns the complex conjugate re - im·i.
func (z Complex[T]) Conj() Complex[T] {
	return Complex[T]{Re: z.Re, Im: -z.Im}
}

// Scale returns z with both components multiplied by the scalar s.
func (z Complex[T]) Scale(s T) Complex[T] {
	return Complex[T]{Re: z.Re * s, Im: z.Im * s}
}

// SqrNorm returns the squared norm re² + im².
func (z Complex[T]) SqrNorm() T {
	return z.Re*z.Re + z.Im*z.Im
}

// Inv returns the multiplicative inverse z⁻¹ = conj(z)/|z|².
func (z Complex[T]) Inv() Complex[T] {
	return z.Conj().Scale(1 / z.SqrNorm())
}
