package main

import (
	"github.com/aretw0/plantctl/internal/cli"
	"github.com/aretw0/plantctl/internal/tuning"
	"github.com/spf13/cobra"
)

var tuneOpts cli.TuneOptions

var tuneCmd = &cobra.Command{
	Use:   "tune",
	Short: "Auto-tune a PID controller",
	Long: `Repeats a setpoint response from the initial condition, scores it by IAE, ISE and
ITAE and adjusts the controller gains after each iteration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printBanner(cmd)
		_, err := app.Tune(cmd.Context(), tuneOpts)
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuneCmd)
	e := &tuneOpts.Experiment
	f := tuneCmd.Flags()
	f.StringVar(&e.Tag, "tag", "23LIC002", "Controller block")
	f.Float64Var(&e.Setpoint, "setpoint", 500, "Setpoint written each iteration")
	f.StringVar(&e.Unit, "unit", "mm", "Unit of the setpoint and measurement")
	f.DurationVar(&e.Duration, "duration", 0, "Model time per iteration (default 20m)")
	f.IntVar(&e.Samples, "samples", 0, "Samples per iteration (default 20)")
	f.IntVar(&e.Iterations, "iterations", 0, "Number of iterations (default 8)")
	f.Float64Var(&e.Speed, "speed", 0, "Execution speed (default 1000)")
	f.Float64Var(&e.Thresholds.IAE, "iae", tuning.DefaultThresholds.IAE, "IAE threshold")
	f.Float64Var(&e.Thresholds.ISE, "ise", tuning.DefaultThresholds.ISE, "ISE threshold")
	f.Float64Var(&e.Thresholds.ITAE, "itae", tuning.DefaultThresholds.ITAE, "ITAE threshold")
	f.StringVar(&tuneOpts.PlotDir, "plot-dir", "", "Write one response PNG per iteration here")
	f.BoolVar(&tuneOpts.JSON, "json", false, "Print iterations as JSON")
}
