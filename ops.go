package lazyunits

import (
	"fmt"
	"math"
)

// The result unit of a product or quotient cannot be computed by Go's type
// checker, so these operations take it as an explicit leading type parameter
// and verify the exponent arithmetic against the operand units. The check
// depends only on the instantiated types, never on the values: a wrong
// declaration panics on the first execution of the call site, a correct one
// costs a few integer compares. Numeric edge cases (division by zero, square
// root of a negative) never panic; they flow through IEEE semantics and are
// observable via IsNaN and IsInf.

// Mul multiplies two Scalars. The declared result unit P must have the
// component-wise sum of the operand exponents.
func Mul[P, A, B Unit](a Scalar[A], b Scalar[B]) Scalar[P] {
	mustDerive("Mul", dimsOf[P](), dimsOf[A]().Add(dimsOf[B]()))
	return Scalar[P]{a.val * b.val}
}

// Div divides a by b. The declared result unit Q must have the component-wise
// difference of the operand exponents.
func Div[Q, A, B Unit](a Scalar[A], b Scalar[B]) Scalar[Q] {
	mustDerive("Div", dimsOf[Q](), dimsOf[A]().Sub(dimsOf[B]()))
	return Scalar[Q]{a.val / b.val}
}

// Pow2 squares x. The declared result unit P must have every exponent of U
// doubled.
func Pow2[P, U Unit](x Scalar[U]) Scalar[P] {
	mustDerive("Pow2", dimsOf[P](), dimsOf[U]().ScaleUp(2))
	return Scalar[P]{x.val * x.val}
}

// Sqrt returns the square root of x. The declared result unit R must have
// every exponent of U halved; a unit with an odd exponent has no root and no
// valid R can be written for it. A negative magnitude yields NaN.
func Sqrt[R, U Unit](x Scalar[U]) Scalar[R] {
	half, ok := dimsOf[U]().ScaleDown(2)
	if !ok {
		panic(fmt.Sprintf("lazyunits: Sqrt: unit %s has an odd exponent and no square root", dimsOf[U]()))
	}
	mustDerive("Sqrt", dimsOf[R](), half)
	return Scalar[R]{math.Sqrt(x.val)}
}

// As reinterprets x under the alias tag To. Distinct tags may share one
// exponent vector (energy and torque, for example); As renames between such
// aliases and nothing else. It never converts magnitudes.
func As[To, From Unit](x Scalar[From]) Scalar[To] {
	mustDerive("As", dimsOf[To](), dimsOf[From]())
	return Scalar[To]{x.val}
}

// mustDerive panics when a declared result unit does not match the exponent
// vector required by the operand units.
func mustDerive(op string, declared, required Dims) {
	if declared != required {
		panic(fmt.Sprintf("lazyunits: %s: declared result unit %s, operands require %s", op, declared, required))
	}
}
