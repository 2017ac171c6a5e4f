package dirichlet

import (
	"fmt"

	"github.com/stochaster/dirichlet/dirichlet"
	"github.com/stochaster/dirichlet/dirichlet/distribution"
	"github.com/stochaster/dirichlet/logger"
	"github.com/stochaster/dirichlet/utils"
	"github.com/stochaster/dirichlet/visualizer"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand data structure for the visualize app.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "produces a graphical view of a sampled measure",
	ArgsUsage: "<measure-file>",
	Flags: []cli.Flag{
		&utils.PortFlag,
		&utils.BaseFlag,
		&utils.MeanFlag,
		&utils.StdDevFlag,
		&utils.LowFlag,
		&utils.HighFlag,
		&utils.RateFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command requires one argument:
<measure.json>

<measure.json> is the measure file produced by the sample command. The
base-distribution flags must match the ones used for sampling so that
the density view lines up with the atom locations.`,
}

// visualizeAction implements the visualize command for viewing a sampled measure.
func visualizeAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "DirichletVisualize")

	// parse parameters
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("missing measure file")
	}
	inputFileName := ctx.Args().Get(0)

	// read measure file
	log.Infof("Read measure file %v", inputFileName)
	measure, err := dirichlet.ReadMeasure(inputFileName)
	if err != nil {
		return err
	}

	// the density view needs the density capability of the base
	base, err := utils.NewBaseDistribution(ctx)
	if err != nil {
		return err
	}
	densitier, _ := base.(distribution.Densitier)
	visualizer.GetMeasureData().PopulateMeasureData(measure, densitier)

	// fire-up web-server and visualize the measure
	port := ctx.String(utils.PortFlag.Name)
	if port == "" {
		port = "8080"
	}
	log.Noticef("Open web browser with http://localhost:" + port)
	log.Notice("Cancel visualize with ^C")
	visualizer.FireUpWeb(port)

	return nil
}
