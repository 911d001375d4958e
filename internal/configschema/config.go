// Package configschema loads and validates the optional apigen configuration file.
//
// Overview:
//   - Responsibility: Parse apigen.yaml or apigen.toml, fill defaults, report diagnostics
//   - Key Types: Config, Diagnostics
//   - Concurrency Model: Immutable configuration after loading
//   - Error Semantics: Problems are collected as diagnostics rather than returned
//
// Usage:
//
//	config, diags := configschema.Load("apigen.yaml")
//	if diags.HasErrors() {
//	    return diags
//	}
package configschema

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"go.eggybyte.com/egg/apigen/internal/logx"
	"go.eggybyte.com/egg/apigen/internal/naming"
)

// FileNames are the configuration files looked up by Discover, in order.
var FileNames = []string{"apigen.yaml", "apigen.yml", "apigen.toml"}

// Config is the apigen configuration.
type Config struct {
	Root         string       `yaml:"root" toml:"root"`
	TemplatesDir string       `yaml:"templates_dir" toml:"templates_dir"`
	Layout       LayoutConfig `yaml:"layout" toml:"layout"`
	Log          LogConfig    `yaml:"log" toml:"log"`
}

// LayoutConfig names the generated files inside a service directory.
type LayoutConfig struct {
	AppFile   string `yaml:"app_file" toml:"app_file" validate:"required,excludesall=/\\"`
	LogicFile string `yaml:"logic_file" toml:"logic_file" validate:"required,excludesall=/\\"`
	InitFile  string `yaml:"init_file" toml:"init_file" validate:"required,excludesall=/\\"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format" validate:"oneof=logfmt json"`
	Color  bool   `yaml:"color" toml:"color"`
}

// NamingLayout converts the layout section for the scaffolder.
func (c *Config) NamingLayout() naming.Layout {
	return naming.Layout{
		AppFile:   c.Layout.AppFile,
		LogicFile: c.Layout.LogicFile,
		InitFile:  c.Layout.InitFile,
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// Diagnostic represents a validation issue.
type Diagnostic struct {
	Severity   DiagnosticSeverity `json:"severity"`
	Message    string             `json:"message"`
	Path       string             `json:"path,omitempty"`
	Suggestion string             `json:"suggestion,omitempty"`
}

// DiagnosticSeverity represents the severity of a diagnostic.
type DiagnosticSeverity string

const (
	SeverityError   DiagnosticSeverity = "error"
	SeverityWarning DiagnosticSeverity = "warning"
)

// Diagnostics collects validation issues.
type Diagnostics struct {
	items []Diagnostic
}

// NewDiagnostics creates an empty collection.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{items: make([]Diagnostic, 0)}
}

// AddError records an error.
func (d *Diagnostics) AddError(message, path, suggestion string) {
	d.items = append(d.items, Diagnostic{Severity: SeverityError, Message: message, Path: path, Suggestion: suggestion})
}

// AddWarning records a warning.
func (d *Diagnostics) AddWarning(message, path, suggestion string) {
	d.items = append(d.items, Diagnostic{Severity: SeverityWarning, Message: message, Path: path, Suggestion: suggestion})
}

// HasErrors reports whether any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Items returns a copy of all diagnostics.
func (d *Diagnostics) Items() []Diagnostic {
	result := make([]Diagnostic, len(d.items))
	copy(result, d.items)
	return result
}

// Error implements error so a failing collection can be returned directly.
func (d *Diagnostics) Error() string {
	var msgs []string
	for _, item := range d.items {
		if item.Severity == SeverityError {
			msgs = append(msgs, fmt.Sprintf("%s: %s", item.Path, item.Message))
		}
	}
	return "configuration validation failed: " + strings.Join(msgs, "; ")
}

// Discover returns the first configuration file found in dir.
func Discover(dir string) (string, bool) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Load reads a configuration file. The format follows the extension:
// .toml is TOML, .yaml and .yml are YAML.
func Load(path string) (*Config, *Diagnostics) {
	diags := NewDiagnostics()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		diags.AddError("Configuration file not found", path, "Create apigen.yaml or drop --config")
		return nil, diags
	}

	data, err := os.ReadFile(path)
	if err != nil {
		diags.AddError(fmt.Sprintf("Failed to read configuration file: %v", err), path, "Check file permissions")
		return nil, diags
	}

	var config Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &config); err != nil {
			diags.AddError(fmt.Sprintf("Failed to parse TOML: %v", err), path, "Check TOML syntax")
			return nil, diags
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			diags.AddError(fmt.Sprintf("Failed to parse YAML: %v", err), path, "Check YAML syntax")
			return nil, diags
		}
	default:
		diags.AddError("Unsupported configuration format", path, "Use a .yaml, .yml, or .toml file")
		return nil, diags
	}

	applyDefaults(&config)
	validateConfig(&config, diags)

	return &config, diags
}

func applyDefaults(config *Config) {
	defaults := naming.DefaultLayout()

	if config.Root == "" {
		config.Root = "."
	}
	if config.Layout.AppFile == "" {
		config.Layout.AppFile = defaults.AppFile
	}
	if config.Layout.LogicFile == "" {
		config.Layout.LogicFile = defaults.LogicFile
	}
	if config.Layout.InitFile == "" {
		config.Layout.InitFile = defaults.InitFile
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = string(logx.FormatLogfmt)
	}
}

var validate = newValidator()

// newValidator reports fields by their configuration key rather than the Go field name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateConfig(config *Config, diags *Diagnostics) {
	if err := validate.Struct(config); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			diags.AddError(err.Error(), "", "")
		}
		for _, fe := range fieldErrs {
			addFieldError(diags, fe)
		}
	}

	files := []struct {
		name string
		path string
	}{
		{config.Layout.AppFile, "layout.app_file"},
		{config.Layout.LogicFile, "layout.logic_file"},
		{config.Layout.InitFile, "layout.init_file"},
	}

	seen := make(map[string]string)
	for _, f := range files {
		if other, ok := seen[f.name]; ok {
			diags.AddError(fmt.Sprintf("File name %q is also used by %s", f.name, other), f.path, "Give each generated file its own name")
		}
		seen[f.name] = f.path
	}

	if filepath.Ext(config.Layout.AppFile) != ".py" {
		diags.AddWarning("App file does not end in .py", "layout.app_file", "The generated imports assume Python modules")
	}

	if _, err := logx.ParseLevel(config.Log.Level); err != nil {
		diags.AddError(err.Error(), "log.level", "Use debug, info, warn, or error")
	}

	if config.TemplatesDir != "" {
		if info, err := os.Stat(config.TemplatesDir); err != nil || !info.IsDir() {
			diags.AddWarning("Templates directory not found, using built-in templates", "templates_dir", "Create the directory or remove the setting")
		}
	}
}

func addFieldError(diags *Diagnostics, fe validator.FieldError) {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}

	switch fe.Tag() {
	case "required":
		diags.AddError("Value is required", path, "Remove the key to use the default")
	case "excludesall":
		diags.AddError("File name must not contain a path separator", path, "Use a bare file name such as app.py")
	case "oneof":
		diags.AddError(fmt.Sprintf("Unknown value %q", fe.Value()), path, "Use one of: "+fe.Param())
	default:
		diags.AddError(fmt.Sprintf("Failed %s validation", fe.Tag()), path, "")
	}
}
