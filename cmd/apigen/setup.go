package main

import (
	"log/slog"
	"os"

	"go.eggybyte.com/egg/apigen/internal/configschema"
	"go.eggybyte.com/egg/apigen/internal/errors"
	"go.eggybyte.com/egg/apigen/internal/log"
	"go.eggybyte.com/egg/apigen/internal/logx"
	"go.eggybyte.com/egg/apigen/internal/projectfs"
	"go.eggybyte.com/egg/apigen/internal/scaffold"
	"go.eggybyte.com/egg/apigen/internal/templates"
	"go.eggybyte.com/egg/apigen/internal/ui"
)

// loadConfig reads the explicit or discovered configuration file, prints its
// warnings, and applies flag overrides.
func loadConfig() (*configschema.Config, error) {
	path := configPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(errors.CodeInternal, "getwd", err)
		}
		if found, ok := configschema.Discover(cwd); ok {
			path = found
		}
	} else if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Newf(errors.CodeNotFound, "configuration file %s not found", path)
	}

	config := configschema.Default()
	if path != "" {
		var diags *configschema.Diagnostics
		config, diags = configschema.Load(path)
		for _, d := range diags.Items() {
			if d.Severity == configschema.SeverityWarning {
				ui.Warning("%s: %s (%s)", d.Path, d.Message, d.Suggestion)
			}
		}
		if diags.HasErrors() {
			return nil, errors.Wrap(errors.CodeInvalidArgument, path, diags)
		}
		ui.Debug("Loaded configuration from %s", path)
	}

	if rootDir != "" {
		config.Root = rootDir
	}
	return config, nil
}

// newLogger builds the structured logger from the log section. Verbose mode
// lowers the level to debug.
func newLogger(config *configschema.Config) log.Logger {
	level, _ := logx.ParseLevel(config.Log.Level)
	if verbose {
		level = slog.LevelDebug
	}
	return logx.New(
		logx.WithFormat(logx.Format(config.Log.Format)),
		logx.WithLevel(level),
		logx.WithColor(config.Log.Color),
		logx.WithWriter(os.Stderr),
	)
}

// newGenerator wires configuration, file system, templates and logging into
// a scaffold.Generator.
func newGenerator(dryRun bool) (*scaffold.Generator, *projectfs.ProjectFS, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	fs := projectfs.NewProjectFS(config.Root)
	fs.SetVerbose(verbose)

	loader := templates.NewLoader()
	if config.TemplatesDir != "" {
		if info, err := os.Stat(config.TemplatesDir); err == nil && info.IsDir() {
			loader = loader.WithOverride(os.DirFS(config.TemplatesDir))
			if err := loader.ValidateAllTemplates(); err != nil {
				return nil, nil, errors.Wrap(errors.CodeInvalidArgument, config.TemplatesDir, err)
			}
		}
	}

	gen := scaffold.NewGenerator(fs,
		scaffold.WithLayout(config.NamingLayout()),
		scaffold.WithLoader(loader),
		scaffold.WithLogger(newLogger(config)),
		scaffold.WithDryRun(dryRun),
	)
	return gen, fs, nil
}
