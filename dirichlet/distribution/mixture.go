package distribution

import (
	"fmt"
	"math"
	"math/rand"
)

// Mixture is a finite mixture of component distributions. The component
// weights must form a probability vector. A mixture supports only the
// Sampler capability since its components may lack a density.
type Mixture struct {
	Weights []float64
	Parts   []Sampler
}

// NewMixture creates a mixture after validating the weight vector.
func NewMixture(weights []float64, parts []Sampler) (Mixture, error) {
	if len(weights) != len(parts) {
		return Mixture{}, fmt.Errorf("NewMixture: %v weights for %v components", len(weights), len(parts))
	}
	if len(parts) == 0 {
		return Mixture{}, fmt.Errorf("NewMixture: no components")
	}
	total := 0.0
	for _, w := range weights {
		if w < 0.0 || w > 1.0 || math.IsNaN(w) {
			return Mixture{}, fmt.Errorf("NewMixture: invalid weight (%v)", w)
		}
		total += w
	}
	if math.Abs(total-1.0) > 1e-9 {
		return Mixture{}, fmt.Errorf("NewMixture: weights sum to %v instead of one", total)
	}
	return Mixture{Weights: weights, Parts: parts}, nil
}

// Sample selects a component by inverting the weight CDF and draws from it.
func (m Mixture) Sample(rg *rand.Rand) float64 {
	r := rg.Float64()

	// Use Kahan's sum for accumulating the weights to avoid
	// numerical issues with many small components.
	sum := float64(0.0)
	c := float64(0.0)
	for i, w := range m.Weights {
		y := w - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		if r <= sum {
			return m.Parts[i].Sample(rg)
		}
	}
	// numerical slack; fall back to the last component
	return m.Parts[len(m.Parts)-1].Sample(rg)
}
