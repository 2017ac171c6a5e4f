package dirichlet

import (
	"fmt"

	"github.com/stochaster/dirichlet/dirichlet"
	"github.com/stochaster/dirichlet/logger"
	"github.com/stochaster/dirichlet/utils"
	"github.com/urfave/cli/v2"
)

// EstimateCommand data structure for the estimator app.
var EstimateCommand = cli.Command{
	Action:    estimateAction,
	Name:      "estimate",
	Usage:     "estimates the concentration parameter of a sampled measure",
	ArgsUsage: "<measure-file>",
	Flags: []cli.Flag{
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The estimate command requires one argument:
<measure.json>

<measure.json> is the measure file produced by the sample command.`,
}

// estimateAction implements the estimate command for computing the
// maximum-likelihood concentration parameter.
func estimateAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "DirichletEstimate")

	// parse arguments
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("missing measure file")
	}
	inputFileName := ctx.Args().Get(0)

	// read measure file in JSON format
	log.Infof("Read measure file %v", inputFileName)
	measure, err := dirichlet.ReadMeasure(inputFileName)
	if err != nil {
		return err
	}

	// estimate parameters
	log.Info("Estimate parameters")
	estimation, err := dirichlet.NewEstimationJSON(measure)
	if err != nil {
		return err
	}
	log.Noticef("Estimated concentration: %v", estimation.Alpha)
	log.Infof("Observed %v atoms; %v were expected at the achieved truncation",
		estimation.NumAtoms, estimation.ExpectedAtoms)

	// write estimation file
	outputFileName := ctx.String(utils.OutputFlag.Name)
	if outputFileName == "" {
		outputFileName = "./estimation.json"
	}
	log.Noticef("Write estimation file %v", outputFileName)
	if err := estimation.WriteJSON(outputFileName); err != nil {
		return err
	}

	return nil
}
