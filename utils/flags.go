package utils

import (
	"github.com/urfave/cli/v2"
)

var (
	AlphaFlag = cli.Float64Flag{
		Name:    "alpha",
		Aliases: []string{"a"},
		Usage:   "concentration parameter of the Dirichlet process",
		Value:   5.0,
	}
	ToleranceFlag = cli.Float64Flag{
		Name:    "tolerance",
		Aliases: []string{"e"},
		Usage:   "maximum unrepresented probability mass of the truncation",
		Value:   1e-3,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "set random seed",
		Value: -1,
	}
	TrialsFlag = cli.IntFlag{
		Name:  "trials",
		Usage: "number of sampling trials",
		Value: 1000,
	}
	BaseFlag = cli.StringFlag{
		Name:  "base",
		Usage: "base distribution (\"gaussian\", \"uniform\", \"exponential\")",
		Value: "gaussian",
	}
	MeanFlag = cli.Float64Flag{
		Name:  "mean",
		Usage: "mean of the gaussian base distribution",
		Value: 0.0,
	}
	StdDevFlag = cli.Float64Flag{
		Name:  "std-dev",
		Usage: "standard deviation of the gaussian base distribution",
		Value: 1.0,
	}
	LowFlag = cli.Float64Flag{
		Name:  "low",
		Usage: "lower bound of the uniform base distribution",
		Value: 0.0,
	}
	HighFlag = cli.Float64Flag{
		Name:  "high",
		Usage: "upper bound of the uniform base distribution",
		Value: 1.0,
	}
	RateFlag = cli.Float64Flag{
		Name:  "rate",
		Usage: "rate of the exponential base distribution",
		Value: 1.0,
	}
	OutputFlag = cli.PathFlag{
		Name:  "output",
		Usage: "output path",
	}
	PortFlag = cli.StringFlag{
		Name:        "port",
		Aliases:     []string{"v"},
		Usage:       "enable visualization on `PORT`",
		DefaultText: "8080",
	}
)
