package main

import (
	"github.com/aretw0/plantctl/internal/cli"
	"github.com/aretw0/plantctl/internal/topology"
	"github.com/spf13/cobra"
)

var topologyOpts cli.TopologyOptions

var topologyCmd = &cobra.Command{
	Use:   "topology",
	Short: "Export the plant topology graph",
	Long:  `Builds an undirected graph from the block connections of the application and writes it as DOT, JSON, Mermaid or PNG.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Topology(cmd.Context(), topologyOpts)
	},
}

func init() {
	rootCmd.AddCommand(topologyCmd)
	f := topologyCmd.Flags()
	f.StringVarP(&topologyOpts.Format, "format", "f", "dot", "Output format: dot, json, mermaid or png")
	f.StringVarP(&topologyOpts.Output, "output", "o", "", "Output file (required for png)")
	f.IntVar(&topologyOpts.Updates, "layout-updates", topology.DefaultLayoutUpdates, "Force-directed layout iterations")
}
