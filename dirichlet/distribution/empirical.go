package distribution

import (
	"math/rand"
)

// Empirical is the empirical measure of a set of observations. It places
// equal point mass on every observation and hence has no density; it only
// satisfies the Sampler capability.
type Empirical struct {
	Values []float64
}

// Sample picks an observation uniformly at random.
func (e Empirical) Sample(rg *rand.Rand) float64 {
	return e.Values[rg.Intn(len(e.Values))]
}
