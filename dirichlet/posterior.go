package dirichlet

import (
	"fmt"

	"github.com/stochaster/dirichlet/dirichlet/distribution"
)

// Posterior returns the process conditioned on a set of observations. By
// Ferguson's theorem the posterior of DP(alpha, G) given n observations is
// again a Dirichlet process with concentration alpha+n and base
// (alpha*G + sum of point masses) / (alpha+n). Sampling the returned
// process is therefore plain stick-breaking; no inference machinery is
// involved.
func (p Process) Posterior(obs []float64) (Process, error) {
	if p.Alpha <= 0.0 {
		return Process{}, fmt.Errorf("Posterior: concentration parameter (%v) must be positive", p.Alpha)
	}
	if p.Base == nil {
		return Process{}, fmt.Errorf("Posterior: no base distribution")
	}
	if len(obs) == 0 {
		return Process{}, fmt.Errorf("Posterior: no observations")
	}
	n := float64(len(obs))
	base, err := distribution.NewMixture(
		[]float64{p.Alpha / (p.Alpha + n), n / (p.Alpha + n)},
		[]distribution.Sampler{p.Base, distribution.Empirical{Values: obs}},
	)
	if err != nil {
		return Process{}, fmt.Errorf("Posterior: cannot build posterior base; %v", err)
	}
	return Process{Alpha: p.Alpha + n, Base: base}, nil
}
