package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"go.eggybyte.com/egg/apigen/internal/scaffold"
	"go.eggybyte.com/egg/apigen/internal/ui"
)

const (
	welcomeMessage    = "Welcome to the Advanced API Code Generation Script for FastAPI!"
	serviceNamePrompt = "Enter the service name (e.g., service1): "
	httpMethodPrompt  = "Enter the HTTP method (get, post, patch, delete): "
	operationIDPrompt = "Enter the operation ID (unique identifier for the API): "
	completionMessage = "Code generation completed for %s."
)

func runInteractive(cmd *cobra.Command, args []string) error {
	gen, _, err := newGenerator(false)
	if err != nil {
		return err
	}
	return runGenerateInteractive(cmd.Context(), gen, ui.NewPrompter(os.Stdin, ui.Stdout()))
}

// runGenerateInteractive asks for the three inputs and generates one operation.
func runGenerateInteractive(ctx context.Context, gen *scaffold.Generator, prompter ui.Prompter) error {
	ui.Println(welcomeMessage)

	service, err := prompter.Prompt(serviceNamePrompt)
	if err != nil {
		return err
	}
	method, err := prompter.Prompt(httpMethodPrompt)
	if err != nil {
		return err
	}
	operationID, err := prompter.Prompt(operationIDPrompt)
	if err != nil {
		return err
	}

	service = strings.TrimSpace(service)
	req := scaffold.Request{
		Service:     service,
		Method:      normalizeMethod(method),
		OperationID: strings.TrimSpace(operationID),
	}
	if _, err := gen.Generate(ctx, req); err != nil {
		return err
	}

	ui.Println(completionMessage, service)
	return nil
}

func normalizeMethod(method string) string {
	return strings.ToLower(strings.TrimSpace(method))
}
