// Package main provides the apigen CLI tool entry point.
//
// Overview:
//   - Responsibility: CLI command parsing and execution
//   - Key Types: Cobra command structure
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Exit code 1 and a printed message on any error
//
// Usage:
//
//	apigen                                   # interactive session
//	apigen add billing get list_invoices
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"go.eggybyte.com/egg/apigen/internal/ui"
)

var (
	verbose        bool
	nonInteractive bool
	jsonOutput     bool
	rootDir        string
	configPath     string
)

// rootCmd runs the interactive session when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "apigen",
	Short: "FastAPI boilerplate generator",
	Long: `Generate FastAPI route handlers and logic stubs for a service.

Each service lives in its own directory with three files:
- _init.py  package initializer, written once
- app.py    FastAPI application with one route per operation
- logic.py  <Service>Logic class with one static method per operation

Existing routes and methods are detected and never duplicated.

Run without a subcommand to be prompted for the service, method and operation ID.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
		ui.SetNonInteractive(nonInteractive)
		ui.SetJSONOutput(jsonOutput)
	},
	RunE: runInteractive,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error("Command failed: %v", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Output root directory (default from config, else .)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default apigen.yaml or apigen.toml in the working directory)")
}

func main() {
	Execute()
}
