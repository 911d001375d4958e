package scaffold

import (
	"go.eggybyte.com/egg/apigen/internal/naming"
	"go.eggybyte.com/egg/apigen/internal/projectfs"
	"go.eggybyte.com/egg/apigen/internal/templates"
)

// Outcome is what an ensure operation did to an artifact.
type Outcome string

const (
	// OutcomeNone means the artifact was not looked at.
	OutcomeNone Outcome = ""
	// OutcomeCreated means the file was written from scratch.
	OutcomeCreated Outcome = "created"
	// OutcomeUpdated means text was appended to an existing file.
	OutcomeUpdated Outcome = "updated"
	// OutcomeSkipped means the entry was already present and nothing was written.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeReplaced means the logic file lacked its class and was overwritten.
	OutcomeReplaced Outcome = "replaced"
)

// ServiceRepository owns the three artifacts of one service: the init file,
// the app file, and the logic file. In dry-run mode it reports the outcome
// each operation would have without touching the file system.
type ServiceRepository struct {
	fs     *projectfs.ProjectFS
	loader *templates.Loader
	paths  naming.ServicePaths
	data   templates.Data
	dryRun bool
}

// NewServiceRepository creates the repository for service under fs's root.
func NewServiceRepository(fs *projectfs.ProjectFS, loader *templates.Loader, layout naming.Layout, service string) *ServiceRepository {
	return &ServiceRepository{
		fs:     fs,
		loader: loader,
		paths:  layout.Paths(service),
		data: templates.Data{
			Service:     service,
			ClassPrefix: naming.Capitalize(service),
			Class:       naming.LogicClass(service),
			AppModule:   naming.ModuleName(layout.AppFile),
			LogicModule: naming.ModuleName(layout.LogicFile),
		},
	}
}

// SetDryRun toggles dry-run mode.
func (r *ServiceRepository) SetDryRun(enabled bool) {
	r.dryRun = enabled
}

// Paths returns the artifact paths relative to the root.
func (r *ServiceRepository) Paths() naming.ServicePaths {
	return r.paths
}

// Class returns the logic class name.
func (r *ServiceRepository) Class() string {
	return r.data.Class
}

// EnsureDir creates the service directory.
func (r *ServiceRepository) EnsureDir() error {
	if r.dryRun {
		return nil
	}
	return r.fs.EnsureDirectory(r.paths.Dir)
}

// EnsureInit writes the init file if it is absent. It is never updated later.
func (r *ServiceRepository) EnsureInit() (Outcome, error) {
	exists, err := r.fs.FileExists(r.paths.Init)
	if err != nil {
		return OutcomeNone, err
	}
	if exists {
		return OutcomeSkipped, nil
	}

	content, err := r.loader.Render(templates.Init, r.data)
	if err != nil {
		return OutcomeNone, err
	}
	if !r.dryRun {
		if err := r.fs.WriteFile(r.paths.Init, content); err != nil {
			return OutcomeNone, err
		}
	}
	return OutcomeCreated, nil
}

// Index parses the app and logic files. Missing files yield an empty index.
func (r *ServiceRepository) Index() (*Index, error) {
	app, appExists, err := r.read(r.paths.App)
	if err != nil {
		return nil, err
	}
	logic, logicExists, err := r.read(r.paths.Logic)
	if err != nil {
		return nil, err
	}

	ix := newIndex(app, logic)
	ix.AppExists = appExists
	ix.LogicExists = logicExists
	return ix, nil
}

// EnsureRoute declares (method, operationID) in the app file. An absent app
// file is first written with the skeleton. A route that is already declared
// yields OutcomeSkipped.
func (r *ServiceRepository) EnsureRoute(method, operationID string) (Outcome, error) {
	ix, err := r.Index()
	if err != nil {
		return OutcomeNone, err
	}
	if ix.HasRoute(method, operationID) {
		return OutcomeSkipped, nil
	}

	data := r.operationData(method, operationID)

	outcome := OutcomeUpdated
	if !ix.AppExists {
		skeleton, err := r.loader.Render(templates.App, data)
		if err != nil {
			return OutcomeNone, err
		}
		if !r.dryRun {
			if err := r.fs.WriteFile(r.paths.App, skeleton); err != nil {
				return OutcomeNone, err
			}
		}
		outcome = OutcomeCreated
	}

	route, err := r.loader.Render(templates.Route, data)
	if err != nil {
		return OutcomeNone, err
	}
	if !r.dryRun {
		if err := r.fs.AppendFile(r.paths.App, route); err != nil {
			return OutcomeNone, err
		}
	}
	return outcome, nil
}

// EnsureMethod adds the stub for operationID to the logic file.
//
// With the class declared, an existing method is skipped and a missing one is
// appended. Without the class declaration the file is overwritten with the
// header, the class, and this stub alone; anything else it held is lost.
func (r *ServiceRepository) EnsureMethod(operationID string) (Outcome, error) {
	ix, err := r.Index()
	if err != nil {
		return OutcomeNone, err
	}

	data := r.operationData("", operationID)
	stub, err := r.loader.Render(templates.LogicMethod, data)
	if err != nil {
		return OutcomeNone, err
	}

	if ix.LogicExists && ix.HasClass(r.data.Class) {
		if ix.HasMethod(operationID) {
			return OutcomeSkipped, nil
		}
		if !r.dryRun {
			if err := r.fs.AppendFile(r.paths.Logic, stub); err != nil {
				return OutcomeNone, err
			}
		}
		return OutcomeUpdated, nil
	}

	header, err := r.loader.Render(templates.LogicHeader, data)
	if err != nil {
		return OutcomeNone, err
	}
	if !r.dryRun {
		if err := r.fs.WriteFile(r.paths.Logic, header+stub); err != nil {
			return OutcomeNone, err
		}
	}
	if ix.LogicExists {
		return OutcomeReplaced, nil
	}
	return OutcomeCreated, nil
}

func (r *ServiceRepository) operationData(method, operationID string) templates.Data {
	data := r.data
	data.Method = method
	data.OperationID = operationID
	return data
}

func (r *ServiceRepository) read(path string) (string, bool, error) {
	exists, err := r.fs.FileExists(path)
	if err != nil || !exists {
		return "", false, err
	}
	content, err := r.fs.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	return content, true, nil
}
