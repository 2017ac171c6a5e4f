package dirichlet

import (
	"fmt"
	"math/rand"

	"github.com/stochaster/dirichlet/dirichlet/distribution"
	"github.com/stochaster/dirichlet/dirichlet/stickbreak"
)

// MaxSampleAtoms caps the number of stick-breaking steps of a single call.
// Extreme parameter choices (large concentration combined with a tiny
// tolerance) would otherwise keep the sampling loop running for a very
// long time.
const MaxSampleAtoms = 100000

// Process describes a Dirichlet process DP(alpha, base).
type Process struct {
	// Alpha is the concentration parameter; it controls how quickly the
	// stick-breaking fractions eat up the unit stick. Must be positive.
	Alpha float64

	// Base is the distribution from which atom locations are drawn.
	Base distribution.Sampler
}

// Sample draws a truncated stick-breaking sample of the process. The unit
// stick is broken with Beta(1, alpha) fractions until the remaining mass
// drops below eps; for each break an atom location is drawn from the base
// distribution. The remaining mass is carried in a running accumulator so
// that each step costs constant time.
//
// If MaxSampleAtoms breaks do not reach the tolerance, the measure drawn
// so far is returned with its Truncated flag set.
func (p Process) Sample(rg *rand.Rand, eps float64) (*Measure, error) {
	if p.Alpha <= 0.0 {
		return nil, fmt.Errorf("Sample: concentration parameter (%v) must be positive", p.Alpha)
	}
	if p.Base == nil {
		return nil, fmt.Errorf("Sample: no base distribution")
	}
	if eps <= 0.0 || eps >= 1.0 {
		return nil, fmt.Errorf("Sample: tolerance (%v) must lie strictly between zero and one", eps)
	}

	breaks := []float64{}
	weights := []float64{}
	locations := []float64{}

	// remaining stick length before the next break
	remaining := 1.0
	for len(breaks) < MaxSampleAtoms {
		v := stickbreak.Sample(rg, p.Alpha)
		c := v * remaining
		remaining *= 1.0 - v

		breaks = append(breaks, v)
		weights = append(weights, c)
		locations = append(locations, p.Base.Sample(rg))

		if remaining < eps {
			return &Measure{Breaks: breaks, Weights: weights, Locations: locations}, nil
		}
	}
	return &Measure{Breaks: breaks, Weights: weights, Locations: locations, Truncated: true}, nil
}
