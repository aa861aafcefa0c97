package main

import (
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage stored run records",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.ListRuns(cmd.Context())
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a run record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return app.ShowRun(cmd.Context(), args[0], asJSON)
	},
}

var runsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a run's samples as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		plot, _ := cmd.Flags().GetString("plot")
		return app.ExportRun(cmd.Context(), args[0], out, plot)
	},
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a run record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.DeleteRun(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd, runsShowCmd, runsExportCmd, runsDeleteCmd)

	runsShowCmd.Flags().Bool("json", false, "Print the full record as JSON")
	runsExportCmd.Flags().StringP("output", "o", "", "CSV path (default: stdout)")
	runsExportCmd.Flags().String("plot", "", "Also render the samples to this PNG")
}
