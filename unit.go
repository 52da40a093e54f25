package lazyunits

// Unit is the constraint satisfied by phantom unit tags. A unit tag is a
// zero-size struct type whose Dims method returns its exponent vector; the
// tag never appears in a value, only in type parameters. The simulation layer
// declares its own tags (see the units subpackage for the usual set).
type Unit interface {
	Dims() Dims
}

// Dimensionless is the unit whose exponents are all zero. It is the identity
// of the unit algebra and the only unit the transcendental functions accept.
type Dimensionless struct{}

// Dims returns the all-zero exponent vector.
func (Dimensionless) Dims() Dims { return Dims{} }

// dimsOf returns the exponent vector of the unit type U.
func dimsOf[U Unit]() Dims {
	var u U
	return u.Dims()
}
