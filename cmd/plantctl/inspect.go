package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/plantctl/internal/inspect"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/spf13/cobra"
)

var inspectOpts inspect.Options

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List blocks and read their outputs",
	Long: `Lists the applications and blocks of the timeline, reads one output of every
block of the selected type, optionally writes a variable, runs for a while and
reads again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, _ := cmd.Flags().GetString("set")
		if set != "" {
			w, err := parseWrite(set)
			if err != nil {
				return err
			}
			inspectOpts.Write = &w
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		return app.Inspect(cmd.Context(), inspectOpts, asJSON)
	},
}

// parseWrite reads name[=value][@unit]: "25ESV0001:LocalInput=false" or
// "23LIC002:InternalSetpoint=500@mm".
func parseWrite(s string) (domain.Write, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return domain.Write{}, fmt.Errorf("invalid --set %q: want name=value[@unit]", s)
	}
	var unit string
	if v, u, found := strings.Cut(value, "@"); found {
		value, unit = v, u
	}
	w := domain.Write{Variable: name, Unit: unit}
	if b, err := strconv.ParseBool(value); err == nil {
		w.Value = b
	} else if f, err := strconv.ParseFloat(value, 64); err == nil {
		w.Value = f
	} else {
		w.Value = value
	}
	return w, nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	f := inspectCmd.Flags()
	f.StringVar(&inspectOpts.Application, "application", "", "Application (default: from config, else the first)")
	f.StringVar(&inspectOpts.BlockType, "type", domain.BlockTypeAlarmTransmitter, "Block type whose outputs are read")
	f.StringVar(&inspectOpts.Output, "output-name", inspect.DefaultOutput, "Output read from each selected block")
	f.StringVar(&inspectOpts.Unit, "unit", "", "Unit of every reading")
	f.Float64Var(&inspectOpts.Speed, "speed", 0, "Execution speed before running")
	f.DurationVar(&inspectOpts.RunFor, "run-for", 0, "Model time to run before reading again")
	f.String("set", "", "Write name=value[@unit] after the first reading")
	f.Bool("json", false, "Print the report as JSON")
}
