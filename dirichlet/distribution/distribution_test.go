package distribution

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"
)

// TestGaussianMoments checks the sample moments of the Gaussian sampler.
func TestGaussianMoments(t *testing.T) {
	// create random generator with fixed seed value
	rg := rand.New(rand.NewSource(99))
	g := Gaussian{Mean: 2.0, StdDev: 3.0}
	n := 100000
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = g.Sample(rg)
	}
	mean, std := stat.MeanStdDev(values, nil)
	if math.Abs(mean-2.0) > 0.05 {
		t.Fatalf("sample mean deviates from distribution mean; got %v", mean)
	}
	if math.Abs(std-3.0) > 0.05 {
		t.Fatalf("sample standard deviation deviates; got %v", std)
	}
}

// TestGaussianDensity checks the density at the mode.
func TestGaussianDensity(t *testing.T) {
	g := Gaussian{Mean: 0.0, StdDev: 1.0}
	want := 1.0 / math.Sqrt(2.0*math.Pi)
	if math.Abs(g.Density(0.0)-want) > 1e-12 {
		t.Fatalf("wrong density at the mode")
	}
}

// TestUniformRange checks range and density of the uniform distribution.
func TestUniformRange(t *testing.T) {
	// create random generator with fixed seed value
	rg := rand.New(rand.NewSource(99))
	u := Uniform{Low: -1.0, High: 3.0}
	for i := 0; i < 10000; i++ {
		x := u.Sample(rg)
		if x < -1.0 || x > 3.0 {
			t.Fatalf("sample out of support; got %v", x)
		}
	}
	if math.Abs(u.Density(0.0)-0.25) > 1e-12 {
		t.Fatalf("wrong uniform density")
	}
	if u.Density(5.0) != 0.0 {
		t.Fatalf("density outside the support must be zero")
	}
}

// TestExponentialMoments checks mean and support of the exponential sampler.
func TestExponentialMoments(t *testing.T) {
	// create random generator with fixed seed value
	rg := rand.New(rand.NewSource(999))
	e := Exponential{Rate: 2.0}
	n := 100000
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = e.Sample(rg)
		if values[i] < 0.0 {
			t.Fatalf("negative exponential sample")
		}
	}
	if mean := stat.Mean(values, nil); math.Abs(mean-0.5) > 0.01 {
		t.Fatalf("sample mean deviates from 1/rate; got %v", mean)
	}
}

// TestEmpiricalSample checks that the empirical measure only produces observations.
func TestEmpiricalSample(t *testing.T) {
	// create random generator with fixed seed value
	rg := rand.New(rand.NewSource(99))
	obs := []float64{-1.5, 0.0, 2.25}
	e := Empirical{Values: obs}
	seen := map[float64]bool{}
	for i := 0; i < 1000; i++ {
		x := e.Sample(rg)
		if x != obs[0] && x != obs[1] && x != obs[2] {
			t.Fatalf("sample is not an observation; got %v", x)
		}
		seen[x] = true
	}
	if len(seen) != len(obs) {
		t.Fatalf("not all observations were sampled")
	}
}

// TestNewMixtureValidation checks the weight-vector validation.
func TestNewMixtureValidation(t *testing.T) {
	parts := []Sampler{Gaussian{Mean: 0.0, StdDev: 1.0}, Empirical{Values: []float64{1.0}}}
	if _, err := NewMixture([]float64{0.5, 0.5}, parts); err != nil {
		t.Fatalf("valid mixture rejected; error: %v", err)
	}
	if _, err := NewMixture([]float64{0.5}, parts); err == nil {
		t.Fatalf("length mismatch not detected")
	}
	if _, err := NewMixture([]float64{0.9, 0.9}, parts); err == nil {
		t.Fatalf("non-normalized weights not detected")
	}
	if _, err := NewMixture([]float64{-0.5, 1.5}, parts); err == nil {
		t.Fatalf("negative weight not detected")
	}
	if _, err := NewMixture([]float64{}, []Sampler{}); err == nil {
		t.Fatalf("empty mixture not detected")
	}
}

// TestMixtureSelection checks that component selection follows the weights.
func TestMixtureSelection(t *testing.T) {
	// create random generator with fixed seed value
	rg := rand.New(rand.NewSource(999))

	// two point masses make the selected component observable
	m, err := NewMixture(
		[]float64{0.25, 0.75},
		[]Sampler{Empirical{Values: []float64{0.0}}, Empirical{Values: []float64{1.0}}},
	)
	if err != nil {
		t.Fatalf("failed to create mixture; error: %v", err)
	}
	n := 100000
	count := 0
	for i := 0; i < n; i++ {
		if m.Sample(rg) == 1.0 {
			count++
		}
	}
	if p := float64(count) / float64(n); math.Abs(p-0.75) > 0.01 {
		t.Fatalf("component selection is biased; got %v", p)
	}
}
