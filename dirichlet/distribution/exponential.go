package distribution

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Exponential is an exponential base distribution with a rate parameter.
type Exponential struct {
	Rate float64
}

// Sample draws a value via inversion sampling on the caller's generator.
func (e Exponential) Sample(rg *rand.Rand) float64 {
	return distuv.Exponential{Rate: e.Rate}.Quantile(rg.Float64())
}

// Density evaluates the exponential density at x.
func (e Exponential) Density(x float64) float64 {
	return distuv.Exponential{Rate: e.Rate}.Prob(x)
}
