// Package units declares the unit tags a simulation layer typically needs:
// one tag per base axis of the lazyunits algebra plus the derived dimensions
// of basic kinematics. The tags are zero-size phantom types; declaring more
// in your own package works the same way.
package units

import "github.com/edwinsyarief/lazyunits"

// Length is the base length dimension, L.
type Length struct{}

func (Length) Dims() lazyunits.Dims {
	return lazyunits.Dims{lazyunits.AxisLength: 1}
}

// Mass is the base mass dimension, M.
type Mass struct{}

func (Mass) Dims() lazyunits.Dims {
	return lazyunits.Dims{lazyunits.AxisMass: 1}
}

// Time is the base time dimension, T.
type Time struct{}

func (Time) Dims() lazyunits.Dims {
	return lazyunits.Dims{lazyunits.AxisTime: 1}
}

// Area is L^2.
type Area struct{}

func (Area) Dims() lazyunits.Dims {
	return lazyunits.Dims{lazyunits.AxisLength: 2}
}

// Frequency is T^-1.
type Frequency struct{}

func (Frequency) Dims() lazyunits.Dims {
	return lazyunits.Dims{lazyunits.AxisTime: -1}
}

// Velocity is L*T^-1.
type Velocity struct{}

func (Velocity) Dims() lazyunits.Dims {
	return lazyunits.Dims{lazyunits.AxisLength: 1, lazyunits.AxisTime: -1}
}

// Acceleration is L*T^-2.
type Acceleration struct{}

func (Acceleration) Dims() lazyunits.Dims {
	return lazyunits.Dims{lazyunits.AxisLength: 1, lazyunits.AxisTime: -2}
}

// Momentum is L*M*T^-1.
type Momentum struct{}

func (Momentum) Dims() lazyunits.Dims {
	return lazyunits.Dims{lazyunits.AxisLength: 1, lazyunits.AxisMass: 1, lazyunits.AxisTime: -1}
}

// Force is L*M*T^-2.
type Force struct{}

func (Force) Dims() lazyunits.Dims {
	return lazyunits.Dims{lazyunits.AxisLength: 1, lazyunits.AxisMass: 1, lazyunits.AxisTime: -2}
}

// Energy is L^2*M*T^-2.
type Energy struct{}

func (Energy) Dims() lazyunits.Dims {
	return lazyunits.Dims{lazyunits.AxisLength: 2, lazyunits.AxisMass: 1, lazyunits.AxisTime: -2}
}

// Torque shares Energy's exponent vector but is kept as a separate tag so the
// two cannot be mixed by accident; use lazyunits.As to rename deliberately.
type Torque struct{}

func (Torque) Dims() lazyunits.Dims {
	return lazyunits.Dims{lazyunits.AxisLength: 2, lazyunits.AxisMass: 1, lazyunits.AxisTime: -2}
}
