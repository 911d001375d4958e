package main

import (
	"github.com/spf13/cobra"

	"go.eggybyte.com/egg/apigen/internal/errors"
	"go.eggybyte.com/egg/apigen/internal/ui"
)

// listCmd prints the declaration index of a service, or the services under the root.
var listCmd = &cobra.Command{
	Use:   "list [service]",
	Short: "List services or the operations of a service",
	Long: `Without an argument, list the service directories under the root that
contain an app file.

With a service name, list its routes and whether each has a logic method,
followed by logic methods that have no route.

Examples:
  apigen list
  apigen list billing --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

type routeListing struct {
	Method      string `json:"method"`
	OperationID string `json:"operation_id"`
	HasLogic    bool   `json:"has_logic"`
}

type serviceListing struct {
	Service string         `json:"service"`
	App     string         `json:"app"`
	Logic   string         `json:"logic"`
	Routes  []routeListing `json:"routes"`
	Orphans []string       `json:"orphans,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	gen, fs, err := newGenerator(false)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		dirs, err := fs.ListDirectories(".")
		if err != nil {
			return err
		}
		var services []string
		for _, dir := range dirs {
			exists, err := fs.FileExists(gen.Repository(dir).Paths().App)
			if err != nil {
				return err
			}
			if exists {
				services = append(services, dir)
			}
		}
		if len(services) == 0 {
			ui.Info("No services found under %s", fs.RootDir())
			return nil
		}
		ui.Data(services, "Services under %s:", fs.RootDir())
		if !jsonOutput {
			for _, service := range services {
				ui.Println("  %s", service)
			}
		}
		return nil
	}

	service := args[0]
	repo := gen.Repository(service)
	ix, err := repo.Index()
	if err != nil {
		return err
	}
	if !ix.AppExists && !ix.LogicExists {
		return errors.Newf(errors.CodeNotFound, "service %s has no generated files under %s", service, fs.RootDir())
	}

	listing := serviceListing{
		Service: service,
		App:     repo.Paths().App,
		Logic:   repo.Paths().Logic,
		Orphans: ix.Orphans(),
	}
	for _, route := range ix.Routes {
		listing.Routes = append(listing.Routes, routeListing{
			Method:      route.Method,
			OperationID: route.Path,
			HasLogic:    ix.HasMethod(route.Path),
		})
	}
	if ix.LogicExists && !ix.HasClass(repo.Class()) {
		ui.Warning("%s does not declare class %s", listing.Logic, repo.Class())
	}

	ui.Data(listing, "%s: %d routes", service, len(listing.Routes))
	if jsonOutput {
		return nil
	}
	for _, route := range listing.Routes {
		logic := "missing"
		if route.HasLogic {
			logic = "ok"
		}
		ui.Println("  %-7s /%-32s logic: %s", route.Method, route.OperationID, logic)
	}
	for _, orphan := range listing.Orphans {
		ui.Println("  %-7s %-33s logic: no route", "-", orphan)
	}
	return nil
}
