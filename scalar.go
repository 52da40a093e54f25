package lazyunits

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number constrains the raw magnitude types accepted by New.
type Number interface {
	constraints.Float | constraints.Integer
}

// Scalar is a float64 magnitude tagged with the unit U. The tag lives only in
// the type system: a Scalar occupies exactly one float64 at runtime, copies
// are independent, and no operation allocates. Operations that keep the unit
// are methods; operations that derive a new unit (Mul, Div, Pow2, Sqrt) are
// free functions because a method cannot introduce a result type parameter.
type Scalar[U Unit] struct {
	val float64
}

// New returns a Scalar of unit U holding the given magnitude. The unit is
// chosen by the call site's type argument, never inferred from the number.
func New[U Unit, N Number](v N) Scalar[U] {
	return Scalar[U]{float64(v)}
}

// Zero returns the Scalar with magnitude 0.
func Zero[U Unit]() Scalar[U] {
	return Scalar[U]{}
}

// NaN returns the Scalar with a NaN magnitude.
func NaN[U Unit]() Scalar[U] {
	return Scalar[U]{math.NaN()}
}

// PosInf returns the Scalar with magnitude +Inf.
func PosInf[U Unit]() Scalar[U] {
	return Scalar[U]{math.Inf(1)}
}

// NegInf returns the Scalar with magnitude -Inf.
func NegInf[U Unit]() Scalar[U] {
	return Scalar[U]{math.Inf(-1)}
}

// Inf is shorthand for PosInf.
func Inf[U Unit]() Scalar[U] {
	return PosInf[U]()
}

// InfToward returns the infinity whose sign matches dir: a negative dir gives
// -Inf, anything else (zero included) gives +Inf.
func InfToward[U Unit](dir Scalar[U]) Scalar[U] {
	if dir.val < 0 {
		return NegInf[U]()
	}
	return PosInf[U]()
}

// Pi returns the dimensionless circle constant.
func Pi() Scalar[Dimensionless] {
	return Scalar[Dimensionless]{3.1415926535897932384626433832795028841971693993751}
}

// Value returns the raw magnitude.
func (self Scalar[U]) Value() float64 {
	return self.val
}

// IsNaN reports whether the magnitude is NaN, using NaN's self-inequality.
func (self Scalar[U]) IsNaN() bool {
	return self.val != self.val
}

// IsInf reports whether the magnitude is +Inf or -Inf.
func (self Scalar[U]) IsInf() bool {
	return self.val == math.Inf(1) || self.val == math.Inf(-1)
}

// IsZero reports whether the magnitude is exactly zero. There is no epsilon
// tolerance; use an explicit comparison against a threshold for that.
func (self Scalar[U]) IsZero() bool {
	return self.val == 0
}

// Strip discards the unit tag, returning a dimensionless Scalar with the same
// magnitude. This is the one deliberate escape hatch out of unit checking and
// is always an explicit, visible call.
func (self Scalar[U]) Strip() Scalar[Dimensionless] {
	return Scalar[Dimensionless]{self.val}
}

// Neg returns the Scalar with the opposite sign.
func (self Scalar[U]) Neg() Scalar[U] {
	return Scalar[U]{-self.val}
}

// Abs returns the Scalar with the magnitude's absolute value.
func (self Scalar[U]) Abs() Scalar[U] {
	return Scalar[U]{math.Abs(self.val)}
}

// Add returns the sum of two Scalars of the same unit.
func (self Scalar[U]) Add(other Scalar[U]) Scalar[U] {
	return Scalar[U]{self.val + other.val}
}

// Sub returns the difference of two Scalars of the same unit.
func (self Scalar[U]) Sub(other Scalar[U]) Scalar[U] {
	return Scalar[U]{self.val - other.val}
}

// Times scales the value by a dimensionless factor, keeping the unit. For a
// unit-changing product use Mul.
func (self Scalar[U]) Times(k Scalar[Dimensionless]) Scalar[U] {
	return Scalar[U]{self.val * k.val}
}

// Over divides the value by a dimensionless factor, keeping the unit. For a
// unit-changing quotient use Div. Division by a zero factor follows IEEE
// semantics and yields an infinity or NaN.
func (self Scalar[U]) Over(k Scalar[Dimensionless]) Scalar[U] {
	return Scalar[U]{self.val / k.val}
}

// Mod returns the floating-point remainder of self divided by divisor. The
// sign of the result follows the dividend.
func (self Scalar[U]) Mod(divisor Scalar[U]) Scalar[U] {
	return Scalar[U]{math.Mod(self.val, divisor.val)}
}

// Equal reports self == other. Scalars are comparable, so the == operator
// works too; both follow float64 semantics, in particular NaN != NaN.
func (self Scalar[U]) Equal(other Scalar[U]) bool {
	return self.val == other.val
}

// Less reports self < other. All relational comparisons against NaN are false.
func (self Scalar[U]) Less(other Scalar[U]) bool {
	return self.val < other.val
}

// LessEqual reports self <= other.
func (self Scalar[U]) LessEqual(other Scalar[U]) bool {
	return self.val <= other.val
}

// Greater reports self > other.
func (self Scalar[U]) Greater(other Scalar[U]) bool {
	return self.val > other.val
}

// GreaterEqual reports self >= other.
func (self Scalar[U]) GreaterEqual(other Scalar[U]) bool {
	return self.val >= other.val
}
