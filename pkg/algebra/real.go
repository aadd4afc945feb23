package algebra

import "golang.org/x/exp/constraints"

// Real wraps a bare floating-point scalar so it carries the [Element] method
// set. The scalar already is a one-dimensional algebra on its own; the
// wrapper exists only because Go cannot declare methods on a type parameter.
type Real[T constraints.Float] struct {
	V T
}

// NewReal returns v as a one-dimensional algebra element.
func NewReal[T constraints.Float](v T) Real[T] {
	return Real[T]{V: v}
}

// Add returns r + s.
func (r Real[T]) Add(s Real[T]) Real[T] { return Real[T]{V: r.V + s.V} }

// Sub returns r - s.
func (r Real[T]) Sub(s Real[T]) Real[T] { return Real[T]{V: r.V - s.V} }

// Mul returns r * s.
func (r Real[T]) Mul(s Real[T]) Real[T] { return Real[T]{V: r.V * s.V} }

// Div returns r / s. Division by zero yields ±Inf or NaN per IEEE rules.
func (r Real[T]) Div(s Real[T]) Real[T] { return Real[T]{V: r.V / s.V} }

// Neg returns -r.
func (r Real[T]) Neg() Real[T] { return Real[T]{V: -r.V} }

// SqrNorm returns r².
func (r Real[T]) SqrNorm() T { return r.V * r.V }
