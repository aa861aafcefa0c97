package main

import (
	"context"
	"errors"

	"github.com/aretw0/plantctl/internal/cli"
	"github.com/spf13/cobra"
)

var runOpts cli.RunOptions

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [sequence]",
	Short: "Run a shutdown sequence",
	Long: `Opens the configured project, runs the named sequence (or a sequence file)
until its last stage completes, and writes one sample per tick to the output CSV.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printBanner(cmd)
		runOpts.Sequence = "separator-shutdown"
		if len(args) > 0 {
			runOpts.Sequence = args[0]
		}
		_, err := app.Run(cmd.Context(), runOpts)
		if errors.Is(err, context.Canceled) {
			// Interrupted runs keep their partial log and exit cleanly.
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	f := runCmd.Flags()
	f.StringVarP(&runOpts.Output, "output", "o", "", "Sample CSV path (default from config)")
	f.StringVar(&runOpts.Plot, "plot", "", "Also render the samples to this PNG")
	f.DurationVar(&runOpts.Tick, "tick", 0, "Model time per tick (default from sequence or config)")
	f.IntVar(&runOpts.MaxTicks, "max-ticks", 0, "Fail the run after this many ticks (0: from sequence or config)")
	f.StringVar(&runOpts.Policy, "policy", "", "Stage entry policy: on-transition or on-next-tick")
	f.StringVar(&runOpts.RunID, "id", "", "Run ID (default: random UUID)")
	f.BoolVar(&runOpts.NoStore, "no-store", false, "Do not persist the run record")
	f.BoolVarP(&runOpts.Quiet, "quiet", "q", false, "Only write the sample log")
}
