package lazyunits

import "math"

// Transcendental functions accept only dimensionless Scalars: a unit cannot
// pass through them meaningfully (the sine of a length is not a thing), so
// the signatures make the mistake unrepresentable. Strip a value explicitly
// if that is really what is wanted.

// Pow raises x to the power y.
func Pow(x, y Scalar[Dimensionless]) Scalar[Dimensionless] {
	return Scalar[Dimensionless]{math.Pow(x.val, y.val)}
}

// Exp returns e**x.
func Exp(x Scalar[Dimensionless]) Scalar[Dimensionless] {
	return Scalar[Dimensionless]{math.Exp(x.val)}
}

// Log returns the natural logarithm of x.
func Log(x Scalar[Dimensionless]) Scalar[Dimensionless] {
	return Scalar[Dimensionless]{math.Log(x.val)}
}

// Sin returns the sine of the angle x, in radians.
func Sin(x Scalar[Dimensionless]) Scalar[Dimensionless] {
	return Scalar[Dimensionless]{math.Sin(x.val)}
}

// Cos returns the cosine of the angle x, in radians.
func Cos(x Scalar[Dimensionless]) Scalar[Dimensionless] {
	return Scalar[Dimensionless]{math.Cos(x.val)}
}

// Tan returns the tangent of the angle x, in radians.
func Tan(x Scalar[Dimensionless]) Scalar[Dimensionless] {
	return Scalar[Dimensionless]{math.Tan(x.val)}
}
