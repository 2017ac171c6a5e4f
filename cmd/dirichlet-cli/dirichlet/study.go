package dirichlet

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/stochaster/dirichlet/dirichlet"
	"github.com/stochaster/dirichlet/dirichlet/statistics"
	"github.com/stochaster/dirichlet/dirichlet/stickbreak"
	"github.com/stochaster/dirichlet/logger"
	"github.com/stochaster/dirichlet/utils"
	"github.com/urfave/cli/v2"
)

// AlphasFlag selects the concentration parameters of a study.
var AlphasFlag = cli.Float64SliceFlag{
	Name:  "alphas",
	Usage: "concentration parameters to compare",
	Value: cli.NewFloat64Slice(1.0, 2.0, 5.0, 10.0),
}

// StudyCommand data structure for the study app.
var StudyCommand = cli.Command{
	Action: studyAction,
	Name:   "study",
	Usage:  "studies atom counts over repeated trials for several concentrations",
	Flags: []cli.Flag{
		&AlphasFlag,
		&utils.TrialsFlag,
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
The study command repeatedly draws truncated measures for each requested
concentration parameter and reports the observed atom-count statistics
next to their expectation.`,
}

// studyAction implements the study command for comparing atom counts.
func studyAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "DirichletStudy")

	base, err := utils.NewBaseDistribution(ctx)
	if err != nil {
		return err
	}
	alphas := ctx.Float64Slice(AlphasFlag.Name)
	numTrials := ctx.Int(utils.TrialsFlag.Name)
	if numTrials < 1 {
		return fmt.Errorf("number of trials (%v) must be positive", numTrials)
	}
	eps := ctx.Float64(utils.ToleranceFlag.Name)
	rg := utils.NewRand(ctx.Int64(utils.RandomSeedFlag.Name))

	// run the trials per concentration parameter
	summaries := map[string]statistics.AtomCountJSON{}
	rows := [][]string{}
	for _, alpha := range alphas {
		log.Infof("Run %v trials with concentration %v", numTrials, alpha)
		process := dirichlet.Process{Alpha: alpha, Base: base}
		stats := statistics.NewAtomCount()
		numCapped := 0
		for i := 0; i < numTrials; i++ {
			measure, err := process.Sample(rg, eps)
			if err != nil {
				return err
			}
			if measure.Truncated {
				numCapped++
			}
			stats.Count(measure.NumAtoms())
		}
		if numCapped > 0 {
			log.Warningf("%v of %v trials hit the atom cap", numCapped, numTrials)
		}
		summary := stats.NewAtomCountJSON()
		summaries[fmt.Sprintf("%v", alpha)] = summary
		rows = append(rows, []string{
			fmt.Sprintf("%v", alpha),
			fmt.Sprintf("%v", numTrials),
			fmt.Sprintf("%.2f", summary.Mean),
			fmt.Sprintf("%.2f", summary.StdDev),
			fmt.Sprintf("%.0f", stickbreak.ExpectedAtoms(alpha, eps)),
		})
	}

	// print summary table
	color.New(color.Bold).Printf("Atom counts for tolerance %v\n", eps)
	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"Alpha", "Trials", "Mean Atoms", "Std Dev", "Expected"})
	tbl.SetBorder(true)
	for _, row := range rows {
		tbl.Append(row)
	}
	tbl.Render()

	// write study file if requested
	outputFileName := ctx.String(utils.OutputFlag.Name)
	if outputFileName != "" {
		log.Noticef("Write study file %v", outputFileName)
		content, err := json.MarshalIndent(summaries, "", "    ")
		if err != nil {
			return fmt.Errorf("failed to convert study results to JSON; %v", err)
		}
		if err := os.WriteFile(outputFileName, content, 0644); err != nil {
			return fmt.Errorf("failed to write study file; %v", err)
		}
	}

	return nil
}
