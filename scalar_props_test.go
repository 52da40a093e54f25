package lazyunits_test

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"

	"github.com/edwinsyarief/lazyunits"
	"github.com/edwinsyarief/lazyunits/units"
)

// Randomized checks over finite magnitudes. The fuzzer is seeded so failures
// reproduce.
//
// go test -run ^TestScalarProperties$ . -count 1
func TestScalarProperties(t *testing.T) {
	f := fuzz.NewWithSeed(1).Funcs(func(v *float64, c fuzz.Continue) {
		*v = (c.Float64() - 0.5) * 2e6
	})

	for i := 0; i < 1000; i++ {
		var a, b float64
		f.Fuzz(&a)
		f.Fuzz(&b)

		// Product magnitude matches the raw float product.
		w := lazyunits.New[units.Length](a)
		h := lazyunits.New[units.Length](b)
		if got := lazyunits.Mul[units.Area](w, h).Value(); got != a*b {
			t.Fatalf("Expected %v*%v = %v, got %v", a, b, a*b, got)
		}

		// x/x is 1 for any non-zero finite x.
		if a != 0 {
			one := lazyunits.Div[lazyunits.Dimensionless](w, w)
			if one.Value() != 1 {
				t.Fatalf("Expected %v/%v = 1, got %v", a, a, one.Value())
			}
		}

		// sqrt(x^2) recovers |x| within floating-point tolerance.
		sq := lazyunits.Pow2[units.Area](w)
		root := lazyunits.Sqrt[units.Length](sq).Value()
		want := math.Abs(a)
		if math.Abs(root-want) > 1e-12*want {
			t.Fatalf("Expected sqrt(pow2(%v)) = %v, got %v", a, want, root)
		}

		// Abs never returns a negative magnitude and preserves the unit's
		// comparisons.
		if w.Abs().Less(lazyunits.Zero[units.Length]()) {
			t.Fatalf("Expected abs(%v) to be non-negative", a)
		}

		// The remainder's sign follows the dividend.
		if b != 0 {
			rem := w.Mod(h).Value()
			if rem != 0 && math.Signbit(rem) != math.Signbit(a) {
				t.Fatalf("Expected mod sign to follow dividend %v, got %v", a, rem)
			}
		}
	}
}
