// Package lazyunits provides dimension-checked scalar values for simulation
// and game physics code. A Scalar carries a phantom unit tag in its type, so
// mixing incompatible quantities (adding a length to a time) is rejected while
// the program is being built, and a checked value is still exactly one float64
// at runtime.
package lazyunits

import (
	"strconv"
	"strings"
)

// Axis indices of the base dimensions recognized by the unit algebra.
const (
	AxisLength = iota
	AxisMass
	AxisTime
	// NumAxes is the number of base dimensions.
	NumAxes
)

// axisSymbols holds the display symbol for each base axis.
var axisSymbols = [NumAxes]string{"L", "M", "T"}

// Dims is the exponent vector of a physical dimension: one signed integer
// exponent per base axis. The zero value is the dimensionless vector. Dims
// values only ever exist inside unit declarations and mismatch diagnostics;
// a Scalar never stores one.
type Dims [NumAxes]int8

// Add returns the component-wise sum of the two exponent vectors. This is the
// dimension of a product of quantities.
func (self Dims) Add(other Dims) Dims {
	var nd Dims
	for i := 0; i < NumAxes; i++ {
		nd[i] = self[i] + other[i]
	}
	return nd
}

// Sub returns the component-wise difference of the two exponent vectors. This
// is the dimension of a quotient of quantities.
func (self Dims) Sub(other Dims) Dims {
	var nd Dims
	for i := 0; i < NumAxes; i++ {
		nd[i] = self[i] - other[i]
	}
	return nd
}

// ScaleUp multiplies every exponent by n. This is the dimension of a quantity
// raised to the integer power n.
func (self Dims) ScaleUp(n int) Dims {
	var nd Dims
	for i := 0; i < NumAxes; i++ {
		nd[i] = self[i] * int8(n)
	}
	return nd
}

// ScaleDown divides every exponent by n. It reports false if any exponent is
// not exactly divisible by n; there is no fractional-exponent representation,
// so such a dimension simply does not exist.
func (self Dims) ScaleDown(n int) (Dims, bool) {
	var nd Dims
	for i := 0; i < NumAxes; i++ {
		if int(self[i])%n != 0 {
			return Dims{}, false
		}
		nd[i] = self[i] / int8(n)
	}
	return nd, true
}

// IsDimensionless reports whether every exponent is zero.
func (self Dims) IsDimensionless() bool {
	return self == Dims{}
}

// String renders the exponent vector for diagnostics, e.g. "L*T^-2". The
// dimensionless vector renders as "1".
func (self Dims) String() string {
	var sb strings.Builder
	for i := 0; i < NumAxes; i++ {
		if self[i] == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('*')
		}
		sb.WriteString(axisSymbols[i])
		if self[i] != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(int(self[i])))
		}
	}
	if sb.Len() == 0 {
		return "1"
	}
	return sb.String()
}
