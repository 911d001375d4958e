// Package templates renders the generated Python fragments.
//
// Overview:
//   - Responsibility: Load embedded fragment templates and render them with naming data
//   - Key Types: Loader, Data
//   - Concurrency Model: A Loader is immutable after construction
//   - Error Semantics: Load and render errors name the template
//
// Fragments are rendered verbatim; text/template performs no escaping, so
// service and operation names reach the output unchanged.
//
// Usage:
//
//	loader := templates.NewLoader()
//	route, err := loader.Render(templates.Route, data)
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"

	"go.eggybyte.com/egg/apigen/internal/naming"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Fragment names.
const (
	Init        = "init.py.tmpl"
	App         = "app.py.tmpl"
	Route       = "route.py.tmpl"
	LogicHeader = "logic_header.py.tmpl"
	LogicMethod = "logic_method.py.tmpl"
)

// Data is the input of every fragment.
type Data struct {
	Service     string // service name, verbatim
	Method      string // HTTP method, embedded verbatim
	OperationID string // route path segment and function name
	ClassPrefix string // Capitalize(Service)
	Class       string // logic class name
	AppModule   string // module name of the app file
	LogicModule string // module name of the logic file
}

// Loader loads fragments from an optional override directory first and
// falls back to the embedded set.
type Loader struct {
	embedded fs.FS
	override fs.FS
}

// NewLoader creates a Loader over the embedded fragments.
func NewLoader() *Loader {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(fmt.Sprintf("templates: embedded directory missing: %v", err))
	}
	return &Loader{embedded: sub}
}

// WithOverride returns a Loader that prefers fragments found in override.
// An overriding route fragment must still emit naming.RouteMarker, since
// duplicate routes are detected by that marker; ValidateAllTemplates checks it.
func (l *Loader) WithOverride(override fs.FS) *Loader {
	return &Loader{embedded: l.embedded, override: override}
}

// LoadTemplate returns the source of the named fragment.
func (l *Loader) LoadTemplate(name string) (string, error) {
	if l.override != nil {
		content, err := fs.ReadFile(l.override, name)
		if err == nil {
			return string(content), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to load template override %s: %w", name, err)
		}
	}

	content, err := fs.ReadFile(l.embedded, name)
	if err != nil {
		return "", fmt.Errorf("failed to load template %s: %w", name, err)
	}
	return string(content), nil
}

// RenderTemplate renders template source with data.
func (l *Loader) RenderTemplate(name, source string, data any) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(source)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return result.String(), nil
}

// Render loads and renders the named fragment.
func (l *Loader) Render(name string, data Data) (string, error) {
	source, err := l.LoadTemplate(name)
	if err != nil {
		return "", err
	}
	return l.RenderTemplate(name, source, data)
}

// ListTemplates returns the embedded fragment names, sorted.
func (l *Loader) ListTemplates() ([]string, error) {
	var names []string
	err := fs.WalkDir(l.embedded, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".tmpl" {
			names = append(names, p)
		}
		return nil
	})
	sort.Strings(names)
	return names, err
}

// ValidateAllTemplates renders every fragment with sample data.
func (l *Loader) ValidateAllTemplates() error {
	names, err := l.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	sample := Data{
		Service:     "service1",
		Method:      "get",
		OperationID: "operation",
		ClassPrefix: "Service1",
		Class:       "Service1Logic",
		AppModule:   "app",
		LogicModule: "logic",
	}
	for _, name := range names {
		content, err := l.Render(name, sample)
		if err != nil {
			return err
		}
		if name == Route {
			marker := naming.RouteMarker(sample.Method, sample.OperationID)
			if !strings.Contains(content, marker) {
				return fmt.Errorf("template %s must declare the route as %s", name, marker)
			}
		}
	}
	return nil
}
