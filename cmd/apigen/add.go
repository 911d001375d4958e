package main

import (
	"github.com/spf13/cobra"

	"go.eggybyte.com/egg/apigen/internal/scaffold"
)

var addDryRun bool

// addCmd generates one operation without prompting.
var addCmd = &cobra.Command{
	Use:   "add <service> <method> <operation_id>",
	Short: "Add a route and logic stub to a service",
	Long: `Add one operation to a service without prompting.

The route is appended to app.py and a static method stub to logic.py.
An operation that is already declared is skipped.

Examples:
  apigen add billing get list_invoices
  apigen add billing post create_invoice --dry-run`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Report what would change without writing")
}

func runAdd(cmd *cobra.Command, args []string) error {
	gen, _, err := newGenerator(addDryRun)
	if err != nil {
		return err
	}

	_, err = gen.Generate(cmd.Context(), scaffold.Request{
		Service:     args[0],
		Method:      normalizeMethod(args[1]),
		OperationID: args[2],
	})
	return err
}
