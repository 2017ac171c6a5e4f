package distribution

import (
	"math/rand"
)

// Sampler draws independent values from a probability distribution. All
// randomness flows through the caller's generator so that sampling is
// reproducible with a fixed seed and safe for concurrent use with
// distinct generators.
type Sampler interface {
	Sample(rg *rand.Rand) float64
}

// Densitier evaluates the probability density of a distribution at a point.
// It is a separate capability from Sampler: discrete and mixed
// distributions can serve as base distributions without carrying a
// density, which only the visualizer needs.
type Densitier interface {
	Density(x float64) float64
}
