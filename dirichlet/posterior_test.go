package dirichlet

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stochaster/dirichlet/dirichlet/distribution"
)

// TestPosteriorParameters checks the conjugate update of the concentration.
func TestPosteriorParameters(t *testing.T) {
	p := Process{Alpha: 2.0, Base: distribution.Gaussian{Mean: 0.0, StdDev: 1.0}}
	obs := []float64{-1.0, 0.5, 2.0}
	posterior, err := p.Posterior(obs)
	if err != nil {
		t.Fatalf("posterior update failed; error: %v", err)
	}
	if posterior.Alpha != 5.0 {
		t.Fatalf("wrong posterior concentration; got %v", posterior.Alpha)
	}
}

// TestPosteriorSampling checks that the posterior base puts the expected
// share of mass on the observations.
func TestPosteriorSampling(t *testing.T) {
	// create random generator with fixed seed value
	rg := rand.New(rand.NewSource(999))

	// a bounded prior base makes prior draws distinguishable from the
	// observations outside its support
	p := Process{Alpha: 2.0, Base: distribution.Uniform{Low: 0.0, High: 1.0}}
	obs := []float64{10.0, 20.0}
	posterior, err := p.Posterior(obs)
	if err != nil {
		t.Fatalf("posterior update failed; error: %v", err)
	}

	n := 100000
	count := 0
	for i := 0; i < n; i++ {
		if x := posterior.Base.Sample(rg); x >= 10.0 {
			count++
		}
	}
	// observations carry weight n/(alpha+n) = 2/4
	if share := float64(count) / float64(n); math.Abs(share-0.5) > 0.01 {
		t.Fatalf("observation share deviates; got %v", share)
	}
}

// TestPosteriorSamplingMeasure draws a truncated measure from a posterior process.
func TestPosteriorSamplingMeasure(t *testing.T) {
	// create random generator with fixed seed value
	rg := rand.New(rand.NewSource(99))
	p := Process{Alpha: 1.0, Base: distribution.Gaussian{Mean: 0.0, StdDev: 1.0}}
	posterior, err := p.Posterior([]float64{1.0, 2.0, 3.0})
	if err != nil {
		t.Fatalf("posterior update failed; error: %v", err)
	}
	m, err := posterior.Sample(rg, 1e-3)
	if err != nil {
		t.Fatalf("sampling the posterior failed; error: %v", err)
	}
	checkMeasureInvariants(t, m, 1e-3)
}

// TestPosteriorErrors checks rejection of invalid posterior updates.
func TestPosteriorErrors(t *testing.T) {
	base := distribution.Gaussian{Mean: 0.0, StdDev: 1.0}
	if _, err := (Process{Alpha: 0.0, Base: base}).Posterior([]float64{1.0}); err == nil {
		t.Fatalf("zero concentration not rejected")
	}
	if _, err := (Process{Alpha: 1.0}).Posterior([]float64{1.0}); err == nil {
		t.Fatalf("missing base distribution not rejected")
	}
	if _, err := (Process{Alpha: 1.0, Base: base}).Posterior([]float64{}); err == nil {
		t.Fatalf("empty observation set not rejected")
	}
}
