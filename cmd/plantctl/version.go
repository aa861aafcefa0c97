package main

import (
	"fmt"

	"github.com/aretw0/plantctl"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of plantctl",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "plantctl version %s\n", plantctl.Version)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
