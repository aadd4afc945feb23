package algebra_test

import (
	"fmt"

	"github.com/matzehuels/moebius/pkg/algebra"
)

func ExampleComplex_Mul() {
	x := algebra.NewComplex(1.0, 2)
	y := algebra.NewComplex(3.0, 4)

	z := x.Mul(y)
	fmt.Println(z.Re, z.Im)
	// Output: -5 10
}

func ExampleQuaternion_Mul() {
	i := algebra.NewQuaternion(0.0, 1, 0, 0)
	j := algebra.NewQuaternion(0.0, 0, 1, 0)

	// Hamilton convention: i·j = k, j·i = -k.
	fmt.Println(i.Mul(j))
	fmt.Println(j.Mul(i))
	// Output:
	// {0 0 0 1}
	// {0 0 0 -1}
}

func ExampleOctonion_Mul() {
	e1 := algebra.NewOctonion(algebra.NewQuaternion(0.0, 1, 0, 0), algebra.Quaternion[float64]{})
	e2 := algebra.NewOctonion(algebra.NewQuaternion(0.0, 0, 1, 0), algebra.Quaternion[float64]{})
	e4 := algebra.NewOctonion(algebra.Quaternion[float64]{}, algebra.NewQuaternion(1.0, 0, 0, 0))

	// Octonion multiplication is not associative: the two association
	// orders differ by a sign.
	fmt.Println(e1.Mul(e2).Mul(e4).B)
	fmt.Println(e1.Mul(e2.Mul(e4)).B)
	// Output:
	// {0 0 0 1}
	// {0 0 0 -1}
}
