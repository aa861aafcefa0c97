package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/plantctl/internal/cli"
	"github.com/aretw0/plantctl/internal/config"
	"github.com/aretw0/plantctl/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// defaultConfigFile is read from the working directory when --config is unset.
const defaultConfigFile = "plantctl.yaml"

// app is built by the root command before any subcommand runs.
var app *cli.App

var rootCmd = &cobra.Command{
	Use:           "plantctl",
	Short:         "plantctl drives process simulator shutdown sequences",
	Long:          `plantctl runs staged shutdown sequences against a dynamic process simulator, logs samples, extracts plant topology and tunes PID loops.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		app = a
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app == nil {
			return nil
		}
		return app.Close()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx := cli.NewSignalContext(context.Background())
	defer ctx.Cancel()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default ./"+defaultConfigFile+" when present)")
	flags.String("engine", "", "Engine kind: memory or http")
	flags.String("engine-url", "", "Engine bridge URL for the http engine")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.Bool("debug", false, "Log every stage transition and actuation")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address during runs")
	flags.Bool("no-banner", false, "Do not print the banner")
}

func newApp(cmd *cobra.Command) (*cli.App, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if v, _ := flags.GetString("engine"); v != "" {
		cfg.Engine.Kind = v
	}
	if v, _ := flags.GetString("engine-url"); v != "" {
		cfg.Engine.URL = v
		if !flags.Changed("engine") {
			cfg.Engine.Kind = config.EngineHTTP
		}
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := flags.GetString("metrics-addr"); v != "" {
		cfg.Metrics.Addr = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	debug, _ := flags.GetBool("debug")
	logger, err := cli.NewLogger(os.Stderr, cfg.LogLevel, debug)
	if err != nil {
		return nil, err
	}
	a := cli.NewApp(cfg, logger)
	a.Debug = debug
	if path != "" {
		logger.Debug("config loaded", "path", filepath.Clean(path))
	}
	return a, nil
}

// printBanner prints the banner for interactive commands.
func printBanner(cmd *cobra.Command) {
	if noBanner, _ := cmd.Flags().GetBool("no-banner"); noBanner {
		return
	}
	if tui.IsTerminal(os.Stdout) {
		tui.PrintBanner(os.Stdout)
	}
}
