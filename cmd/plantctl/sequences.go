package main

import (
	"github.com/spf13/cobra"
)

var sequencesCmd = &cobra.Command{
	Use:     "sequences",
	Aliases: []string{"seq"},
	Short:   "List, validate and show sequence definitions",
}

var sequencesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List builtin and local sequences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.ListSequences()
	},
}

var sequencesValidateCmd = &cobra.Command{
	Use:   "validate [sequence...]",
	Short: "Compile sequences and optionally check their variables on the engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		live, _ := cmd.Flags().GetBool("live")
		return app.ValidateSequences(cmd.Context(), args, live)
	},
}

var sequencesShowCmd = &cobra.Command{
	Use:   "show <sequence>",
	Short: "Print a sequence as a Mermaid chart or YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		runID, _ := cmd.Flags().GetString("run")
		return app.ShowSequence(cmd.Context(), args[0], format, runID)
	},
}

func init() {
	rootCmd.AddCommand(sequencesCmd)
	sequencesCmd.AddCommand(sequencesListCmd, sequencesValidateCmd, sequencesShowCmd)

	sequencesValidateCmd.Flags().Bool("live", false, "Read every referenced variable from the engine")
	sequencesShowCmd.Flags().StringP("format", "f", "mermaid", "Output format: mermaid or yaml")
	sequencesShowCmd.Flags().String("run", "", "Highlight the progress of a stored run")
}
