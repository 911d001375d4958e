package main

import (
	"github.com/spf13/cobra"

	"go.eggybyte.com/egg/apigen/internal/errors"
	"go.eggybyte.com/egg/apigen/internal/oasimport"
	"go.eggybyte.com/egg/apigen/internal/scaffold"
	"go.eggybyte.com/egg/apigen/internal/ui"
)

var (
	importService string
	importDryRun  bool
)

// importCmd generates every named operation of an OpenAPI document.
var importCmd = &cobra.Command{
	Use:   "import <openapi-file>",
	Short: "Add every operation of an OpenAPI 3 document to a service",
	Long: `Read an OpenAPI 3 document and add each operation that has an
operationId to the given service, in path then method order.

Operations without an operationId are reported and skipped.

Example:
  apigen import openapi.yaml --service billing`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importService, "service", "", "Service to add the operations to (required)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Report what would change without writing")
	_ = importCmd.MarkFlagRequired("service")
}

type importSummary struct {
	Document string `json:"document"`
	Service  string `json:"service"`
	Added    int    `json:"added"`
	Skipped  int    `json:"skipped"`
	Unnamed  int    `json:"unnamed"`
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	report, err := oasimport.Load(ctx, args[0])
	if err != nil {
		return err
	}

	gen, _, err := newGenerator(importDryRun)
	if err != nil {
		return err
	}

	if report.Title != "" {
		ui.Info("Importing %d operations from %s", len(report.Operations), report.Title)
	}
	for _, op := range report.Unnamed {
		ui.Warning("%s %s has no operationId. Skipping...", op.Method, op.Path)
	}

	summary := importSummary{Document: args[0], Service: importService, Unnamed: len(report.Unnamed)}
	for _, op := range report.Operations {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := gen.Generate(ctx, scaffold.Request{
			Service:     importService,
			Method:      op.Method,
			OperationID: op.OperationID,
		})
		if err != nil {
			if code := errors.CodeOf(err); code != "" {
				return errors.Wrapf(code, op.OperationID, err, "import %s %s", op.Method, op.Path)
			}
			return err
		}
		if res.Complete {
			summary.Added++
		} else {
			summary.Skipped++
		}
	}

	ui.Data(summary, "Imported %s into %s: %d added, %d skipped, %d without operationId",
		args[0], importService, summary.Added, summary.Skipped, summary.Unnamed)
	return nil
}
