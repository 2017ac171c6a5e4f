package main

import (
	"fmt"
	"os"

	"github.com/stochaster/dirichlet/cmd/dirichlet-cli/dirichlet"
	"github.com/urfave/cli/v2"
)

// initDirichletApp initializes a dirichlet-cli app. This function is
// called by the main function and unit tests.
func initDirichletApp() *cli.App {
	return &cli.App{
		Name:     "Dirichlet Sampling Manager",
		HelpName: "dirichlet",
		Flags:    []cli.Flag{},
		Commands: []*cli.Command{
			&dirichlet.SampleCommand,
			&dirichlet.EstimateCommand,
			&dirichlet.StudyCommand,
			&dirichlet.VisualizeCommand,
		},
	}
}

// main implements "dirichlet" cli application.
func main() {
	app := initDirichletApp()
	if err := app.Run(os.Args); err != nil {
		code := 1
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}
