package dirichlet

import (
	"github.com/stochaster/dirichlet/dirichlet"
	"github.com/stochaster/dirichlet/logger"
	"github.com/stochaster/dirichlet/utils"
	"github.com/urfave/cli/v2"
)

// SampleCommand data structure for the sample app.
var SampleCommand = cli.Command{
	Action: sampleAction,
	Name:   "sample",
	Usage:  "draws a truncated stick-breaking sample of a Dirichlet process",
	Flags: []cli.Flag{
		&utils.AlphaFlag,
		&utils.ToleranceFlag,
		&utils.RandomSeedFlag,
		&utils.BaseFlag,
		&utils.MeanFlag,
		&utils.StdDevFlag,
		&utils.LowFlag,
		&utils.HighFlag,
		&utils.RateFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The sample command draws atoms until the unrepresented probability mass
drops below the truncation tolerance and writes the resulting measure as
a JSON file.`,
}

// sampleAction implements the sample command for drawing a truncated measure.
func sampleAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "DirichletSample")

	// construct process from flags
	base, err := utils.NewBaseDistribution(ctx)
	if err != nil {
		return err
	}
	process := dirichlet.Process{
		Alpha: ctx.Float64(utils.AlphaFlag.Name),
		Base:  base,
	}
	eps := ctx.Float64(utils.ToleranceFlag.Name)
	rg := utils.NewRand(ctx.Int64(utils.RandomSeedFlag.Name))

	// draw a truncated measure
	log.Infof("Sample process with concentration %v and tolerance %v", process.Alpha, eps)
	measure, err := process.Sample(rg, eps)
	if err != nil {
		return err
	}
	if measure.Truncated {
		log.Warningf("Sampling hit the atom cap; unrepresented mass is %v", measure.RemainingMass())
	}
	log.Infof("Sampled %v atoms representing %v probability mass", measure.NumAtoms(), measure.Mass())

	// write measure file
	outputFileName := ctx.String(utils.OutputFlag.Name)
	if outputFileName == "" {
		outputFileName = "./measure.json"
	}
	log.Noticef("Write measure file %v", outputFileName)
	if err := measure.WriteJSON(outputFileName); err != nil {
		return err
	}

	return nil
}
