package lazyunits_test

import (
	"math"
	"testing"

	"github.com/edwinsyarief/lazyunits"
	"github.com/edwinsyarief/lazyunits/units"
)

// Tags declared outside the units subpackage work the same way; these two
// exist to exercise the failure paths.
type volume struct{}

func (volume) Dims() lazyunits.Dims {
	return lazyunits.Dims{lazyunits.AxisLength: 3}
}

// go test -run ^TestMulDiv$ . -count 1
func TestMulDiv(t *testing.T) {
	dist := lazyunits.New[units.Length](10.0)
	dur := lazyunits.New[units.Time](2.0)

	v := lazyunits.Div[units.Velocity](dist, dur)
	if v.Value() != 5.0 {
		t.Errorf("Expected 5, got %v", v.Value())
	}

	back := lazyunits.Mul[units.Length](v, dur)
	if back.Value() != 10.0 {
		t.Errorf("Expected 10, got %v", back.Value())
	}

	// x/x is dimensionless with magnitude 1.
	one := lazyunits.Div[lazyunits.Dimensionless](dist, dist)
	if one.Value() != 1.0 {
		t.Errorf("Expected 1, got %v", one.Value())
	}

	// Division by a zero magnitude is not a failure; it yields infinity.
	inf := lazyunits.Div[units.Velocity](dist, lazyunits.Zero[units.Time]())
	if !inf.IsInf() {
		t.Errorf("Expected infinity, got %v", inf.Value())
	}
}

// go test -run ^TestMulClosure$ . -count 1
func TestMulClosure(t *testing.T) {
	cases := []struct{ a, b float64 }{
		{2, 3}, {-4, 0.5}, {0, 123.25}, {1e9, 1e-9},
	}
	for _, c := range cases {
		w := lazyunits.New[units.Length](c.a)
		h := lazyunits.New[units.Length](c.b)
		if got := lazyunits.Mul[units.Area](w, h).Value(); got != c.a*c.b {
			t.Errorf("Expected %v*%v = %v, got %v", c.a, c.b, c.a*c.b, got)
		}
	}
}

// go test -run ^TestPow2SqrtRoundTrip$ . -count 1
func TestPow2SqrtRoundTrip(t *testing.T) {
	for _, a := range []float64{0, 1, 2.5, 7, 1e6} {
		x := lazyunits.New[units.Length](a)
		sq := lazyunits.Pow2[units.Area](x)
		if sq.Value() != a*a {
			t.Errorf("Expected %v, got %v", a*a, sq.Value())
		}
		root := lazyunits.Sqrt[units.Length](sq)
		if math.Abs(root.Value()-a) > 1e-12*a {
			t.Errorf("Expected sqrt(pow2(%v)) = %v, got %v", a, a, root.Value())
		}
	}

	// A negative magnitude has no real root; the result is NaN, not a panic.
	neg := lazyunits.Sqrt[units.Length](lazyunits.New[units.Area](-4.0))
	if !neg.IsNaN() {
		t.Errorf("Expected NaN, got %v", neg.Value())
	}
}

// go test -run ^TestAs$ . -count 1
func TestAs(t *testing.T) {
	e := lazyunits.New[units.Energy](42.0)
	tq := lazyunits.As[units.Torque](e)
	if tq.Value() != 42.0 {
		t.Errorf("Expected 42, got %v", tq.Value())
	}
}

// go test -run ^TestDeclaredUnitMismatchPanics$ . -count 1
func TestDeclaredUnitMismatchPanics(t *testing.T) {
	expectPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("Expected %s to panic on a wrong result unit", name)
			}
		}()
		f()
	}

	dist := lazyunits.New[units.Length](10.0)
	dur := lazyunits.New[units.Time](2.0)

	expectPanic("Mul", func() {
		lazyunits.Mul[units.Velocity](dist, dur)
	})
	expectPanic("Div", func() {
		lazyunits.Div[units.Force](dist, dur)
	})
	expectPanic("Pow2", func() {
		lazyunits.Pow2[units.Length](dist)
	})
	expectPanic("Sqrt odd exponent", func() {
		lazyunits.Sqrt[units.Length](lazyunits.New[volume](8.0))
	})
	expectPanic("As", func() {
		lazyunits.As[units.Time](dist)
	})
}
