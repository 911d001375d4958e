// Package naming derives every generated name from a service name.
//
// The rules are:
//   - the service directory and Python package are the service name verbatim;
//   - the logic class is Capitalize(service) + "Logic";
//   - a route for (method, op) is declared as @app.<method>("/<op>").
//
// No sanitization is applied. Names that are unsafe as file or identifier
// names are emitted as given.
package naming

import (
	"fmt"
	"path"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	title = cases.Title(language.Und)
	lower = cases.Lower(language.Und)
)

// Capitalize title-cases the first rune of s and lower-cases the rest,
// so "billing" becomes "Billing", "myService" becomes "Myservice" and
// "ßeta" becomes "Sseta".
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return title.String(s[:size]) + lower.String(s[size:])
}

// LogicClass returns the logic class name for service.
func LogicClass(service string) string {
	return Capitalize(service) + "Logic"
}

// RouteMarker returns the decorator that declares (method, op) in the app file.
func RouteMarker(method, operationID string) string {
	return fmt.Sprintf("@app.%s(\"/%s\")", method, operationID)
}

// Layout holds the file names of the three artifacts inside a service directory.
type Layout struct {
	AppFile   string
	LogicFile string
	InitFile  string
}

// DefaultLayout returns the FastAPI file names.
func DefaultLayout() Layout {
	return Layout{
		AppFile:   "app.py",
		LogicFile: "logic.py",
		InitFile:  "_init.py",
	}
}

// ModuleName returns the Python module name of a file, "logic" for "logic.py".
func ModuleName(file string) string {
	return trimExt(path.Base(file))
}

// ServicePaths are the artifact paths of one service, relative to the output root.
type ServicePaths struct {
	Dir   string
	App   string
	Logic string
	Init  string
}

// Paths returns the artifact paths for service under l.
func (l Layout) Paths(service string) ServicePaths {
	return ServicePaths{
		Dir:   service,
		App:   path.Join(service, l.AppFile),
		Logic: path.Join(service, l.LogicFile),
		Init:  path.Join(service, l.InitFile),
	}
}

func trimExt(name string) string {
	ext := path.Ext(name)
	return name[:len(name)-len(ext)]
}
