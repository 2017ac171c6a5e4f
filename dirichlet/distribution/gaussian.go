package distribution

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian is a normal base distribution.
type Gaussian struct {
	Mean   float64
	StdDev float64
}

// Sample draws a value via inversion sampling on the caller's generator.
func (g Gaussian) Sample(rg *rand.Rand) float64 {
	return distuv.Normal{Mu: g.Mean, Sigma: g.StdDev}.Quantile(rg.Float64())
}

// Density evaluates the normal density at x.
func (g Gaussian) Density(x float64) float64 {
	return distuv.Normal{Mu: g.Mean, Sigma: g.StdDev}.Prob(x)
}
