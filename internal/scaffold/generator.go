// Package scaffold generates FastAPI service boilerplate idempotently.
//
// Overview:
//   - Responsibility: Ensure a service's init, app, and logic files declare an operation
//   - Key Types: Generator, Request, Result, ServiceRepository, Index
//   - Concurrency Model: Single-threaded; concurrent runs on one service are unsupported
//   - Error Semantics: File system failures are INTERNAL errors; duplicates are skips
//   - Performance Notes: Each step re-reads the files it inspects
//
// Usage:
//
//	gen := scaffold.NewGenerator(projectfs.NewProjectFS("."))
//	res, err := gen.Generate(ctx, scaffold.Request{Service: "billing", Method: "get", OperationID: "list_invoices"})
package scaffold

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"go.eggybyte.com/egg/apigen/internal/errors"
	"go.eggybyte.com/egg/apigen/internal/log"
	"go.eggybyte.com/egg/apigen/internal/naming"
	"go.eggybyte.com/egg/apigen/internal/projectfs"
	"go.eggybyte.com/egg/apigen/internal/templates"
	"go.eggybyte.com/egg/apigen/internal/ui"
)

// KnownMethods are the HTTP methods the prompt suggests. Others are accepted.
var KnownMethods = []string{"get", "post", "patch", "delete"}

// Request names one operation of one service.
type Request struct {
	Service     string
	Method      string
	OperationID string
}

// Result reports what Generate did to each artifact.
type Result struct {
	Request
	RunID    string
	Init     Outcome
	App      Outcome
	Logic    Outcome
	Complete bool // the completion notice was emitted
	DryRun   bool
}

// Skipped reports whether the route already existed and nothing was written.
func (r *Result) Skipped() bool {
	return r.App == OutcomeSkipped
}

// Options configures a Generator.
type Options struct {
	Layout naming.Layout
	Loader *templates.Loader
	Logger log.Logger
	DryRun bool
}

// Option configures a Generator.
type Option func(*Options)

// WithLayout sets the artifact file names.
func WithLayout(layout naming.Layout) Option {
	return func(o *Options) { o.Layout = layout }
}

// WithLoader sets the template loader.
func WithLoader(loader *templates.Loader) Option {
	return func(o *Options) { o.Loader = loader }
}

// WithLogger sets the structured logger.
func WithLogger(logger log.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithDryRun reports outcomes without writing.
func WithDryRun(enabled bool) Option {
	return func(o *Options) { o.DryRun = enabled }
}

// Generator runs the scaffolding steps for one operation at a time.
type Generator struct {
	fs   *projectfs.ProjectFS
	opts Options
}

// NewGenerator creates a Generator writing under fs's root.
func NewGenerator(fs *projectfs.ProjectFS, opts ...Option) *Generator {
	options := Options{
		Layout: naming.DefaultLayout(),
		Logger: log.Nop(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Loader == nil {
		options.Loader = templates.NewLoader()
	}
	if options.Logger == nil {
		options.Logger = log.Nop()
	}
	return &Generator{fs: fs, opts: options}
}

// Repository returns the repository for service.
func (g *Generator) Repository(service string) *ServiceRepository {
	repo := NewServiceRepository(g.fs, g.opts.Loader, g.opts.Layout, service)
	repo.SetDryRun(g.opts.DryRun)
	return repo
}

// Generate ensures the service files declare req.
//
// The steps run in a fixed order: service directory, init file, route, logic
// method. An already declared route ends the run before the logic file is
// read. The route is appended before the logic file is inspected, so a run
// that then finds the method already present leaves the new route in place.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Service) == "" {
		return nil, errors.New(errors.CodeInvalidArgument, "service name is required")
	}
	if strings.TrimSpace(req.OperationID) == "" {
		return nil, errors.New(errors.CodeInvalidArgument, "operation ID is required")
	}
	if !slices.Contains(KnownMethods, req.Method) {
		ui.Warning("HTTP method '%s' is not one of %s; generating it verbatim", req.Method, strings.Join(KnownMethods, ", "))
	}

	res := &Result{Request: req, RunID: uuid.NewString(), DryRun: g.opts.DryRun}
	logger := g.opts.Logger.With(
		"run_id", res.RunID,
		"service", req.Service,
		"method", req.Method,
		"operation_id", req.OperationID,
	)
	if g.opts.DryRun {
		logger = logger.With("dry_run", true)
	}

	repo := g.Repository(req.Service)
	paths := repo.Paths()

	if err := repo.EnsureDir(); err != nil {
		logger.Error(err, "ensure service directory failed")
		return nil, err
	}

	var err error
	if res.Init, err = repo.EnsureInit(); err != nil {
		logger.Error(err, "ensure init file failed", "artifact", paths.Init)
		return nil, err
	}
	logger.Debug("init file ensured", "artifact", paths.Init, "outcome", string(res.Init))

	if res.App, err = repo.EnsureRoute(req.Method, req.OperationID); err != nil {
		logger.Error(err, "ensure route failed", "artifact", paths.App)
		return nil, err
	}
	logger.Debug("route ensured", "artifact", paths.App, "outcome", string(res.App))
	if res.App == OutcomeSkipped {
		ui.Skip("Operation ID '%s' already exists in %s. Skipping...", req.OperationID, paths.App)
		return res, nil
	}

	if res.Logic, err = repo.EnsureMethod(req.OperationID); err != nil {
		logger.Error(err, "ensure logic method failed", "artifact", paths.Logic)
		return nil, err
	}
	logger.Debug("logic method ensured", "artifact", paths.Logic, "outcome", string(res.Logic))
	switch res.Logic {
	case OutcomeSkipped:
		ui.Skip("Method '%s' already exists in %s. Skipping...", req.OperationID, paths.Logic)
		return res, nil
	case OutcomeReplaced:
		ui.Warning("%s did not declare class %s and was rewritten", paths.Logic, repo.Class())
	}

	res.Complete = true
	if g.opts.DryRun {
		ui.Info("Would add API skeleton and logic for '%s' to %s (app: %s, logic: %s).",
			req.OperationID, req.Service, res.App, res.Logic)
		return res, nil
	}
	ui.Success("API skeleton and logic for '%s' added to %s.", req.OperationID, req.Service)
	logger.Info("operation generated", "app", string(res.App), "logic", string(res.Logic))
	return res, nil
}
