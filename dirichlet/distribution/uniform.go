package distribution

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is a uniform base distribution on [Low, High].
type Uniform struct {
	Low  float64
	High float64
}

// Sample draws a value via inversion sampling on the caller's generator.
func (u Uniform) Sample(rg *rand.Rand) float64 {
	return distuv.Uniform{Min: u.Low, Max: u.High}.Quantile(rg.Float64())
}

// Density evaluates the uniform density at x.
func (u Uniform) Density(x float64) float64 {
	return distuv.Uniform{Min: u.Low, Max: u.High}.Prob(x)
}
