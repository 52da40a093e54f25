// Profiling:
// go build ./profile/trajectory
// go tool pprof -http=":8000" -nodefraction=0.001 ./trajectory cpu.pprof

package main

import (
	"github.com/edwinsyarief/lazyunits"
	"github.com/edwinsyarief/lazyunits/units"
	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/pkg/profile"
)

type projectile struct {
	x, y   lazyunits.Scalar[units.Length]
	vx, vy lazyunits.Scalar[units.Velocity]
}

func main() {
	rounds := 100
	steps := 10000
	bodies := 1000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, steps, bodies)
	p.Stop()
}

// run integrates a batch of projectiles under gravity and noise-driven wind
// gusts. The noise keeps the inputs opaque to the compiler so the loop
// reflects real per-step cost.
func run(rounds, steps, bodies int) {
	noise := opensimplex.NewNormalized(7)
	dt := lazyunits.New[units.Time](1.0 / 120.0)
	gravity := lazyunits.New[units.Acceleration](-9.81)
	maxGust := lazyunits.New[units.Acceleration](3.0)

	for r := 0; r < rounds; r++ {
		ps := make([]projectile, bodies)
		for i := range ps {
			ps[i].vx = lazyunits.New[units.Velocity](float64(i%13) + 1)
			ps[i].vy = lazyunits.New[units.Velocity](float64(i%17) + 5)
		}
		for s := 0; s < steps; s++ {
			for i := range ps {
				gust := lazyunits.New[lazyunits.Dimensionless](noise.Eval2(float64(s)*0.01, float64(i)*0.1)*2 - 1)
				wind := maxGust.Times(gust)
				ps[i].vx = ps[i].vx.Add(lazyunits.Mul[units.Velocity](wind, dt))
				ps[i].vy = ps[i].vy.Add(lazyunits.Mul[units.Velocity](gravity, dt))
				ps[i].x = ps[i].x.Add(lazyunits.Mul[units.Length](ps[i].vx, dt))
				ps[i].y = ps[i].y.Add(lazyunits.Mul[units.Length](ps[i].vy, dt))
				if ps[i].y.Less(lazyunits.Zero[units.Length]()) {
					ps[i].y = ps[i].y.Neg()
					ps[i].vy = ps[i].vy.Neg().Times(lazyunits.New[lazyunits.Dimensionless](0.8))
				}
			}
		}
	}
}
