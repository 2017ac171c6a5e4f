package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/stochaster/dirichlet/dirichlet/distribution"
	"github.com/urfave/cli/v2"
)

// NewRand creates a random generator for a seed value. A negative seed
// selects a time-based seed for natural usage; a fixed seed reproduces
// an identical draw sequence.
func NewRand(seed int64) *rand.Rand {
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewBaseDistribution constructs the base distribution selected by the
// cli flags.
func NewBaseDistribution(ctx *cli.Context) (distribution.Sampler, error) {
	switch ctx.String(BaseFlag.Name) {
	case "gaussian":
		stdDev := ctx.Float64(StdDevFlag.Name)
		if stdDev <= 0.0 {
			return nil, fmt.Errorf("standard deviation (%v) must be positive", stdDev)
		}
		return distribution.Gaussian{Mean: ctx.Float64(MeanFlag.Name), StdDev: stdDev}, nil
	case "uniform":
		low := ctx.Float64(LowFlag.Name)
		high := ctx.Float64(HighFlag.Name)
		if low >= high {
			return nil, fmt.Errorf("lower bound (%v) must be below upper bound (%v)", low, high)
		}
		return distribution.Uniform{Low: low, High: high}, nil
	case "exponential":
		rate := ctx.Float64(RateFlag.Name)
		if rate <= 0.0 {
			return nil, fmt.Errorf("rate (%v) must be positive", rate)
		}
		return distribution.Exponential{Rate: rate}, nil
	default:
		return nil, fmt.Errorf("unknown base distribution %v", ctx.String(BaseFlag.Name))
	}
}
