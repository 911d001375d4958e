package scaffold

import (
	"regexp"
	"slices"
	"strings"

	"go.eggybyte.com/egg/apigen/internal/naming"
)

var (
	routeRe  = regexp.MustCompile(`@app\.([^\s("]+)\("/([^"\n]*)"\)`)
	methodRe = regexp.MustCompile(`(?m)^[ \t]*(?:async[ \t]+)?def[ \t]+([^\s(]+)[ \t]*\(`)
	classRe  = regexp.MustCompile(`(?m)^class[ \t]+([^\s(:]+)`)
)

// Route is one route declaration of an app file.
type Route struct {
	Method string
	Path   string
}

// Index is what a service already declares, parsed from its app and logic
// files. Duplicate detection is membership in an Index.
type Index struct {
	AppExists   bool
	LogicExists bool
	Routes      []Route  // file order; only well-formed methods are listed
	Classes     []string // top-level classes of the logic file
	Methods     []string // functions defined in the logic file, file order

	app string
}

// newIndex parses the contents of the app and logic files.
func newIndex(app, logic string) *Index {
	ix := &Index{Routes: parseRoutes(app), app: app}
	ix.Classes, ix.Methods = parseLogic(logic)
	return ix
}

// HasRoute reports whether the app file contains the route marker for
// (method, operationID). The marker is matched literally, so methods the
// Routes listing cannot parse, such as "" or "get all", are still found.
func (ix *Index) HasRoute(method, operationID string) bool {
	return strings.Contains(ix.app, naming.RouteMarker(method, operationID))
}

// HasClass reports whether the logic file declares class name.
func (ix *Index) HasClass(name string) bool {
	return slices.Contains(ix.Classes, name)
}

// HasMethod reports whether the logic file defines a function called name.
func (ix *Index) HasMethod(name string) bool {
	return slices.Contains(ix.Methods, name)
}

// Orphans returns logic methods that no route path refers to.
func (ix *Index) Orphans() []string {
	var out []string
	for _, m := range ix.Methods {
		if !slices.ContainsFunc(ix.Routes, func(r Route) bool { return r.Path == m }) {
			out = append(out, m)
		}
	}
	return out
}

func parseRoutes(content string) []Route {
	var routes []Route
	for _, m := range routeRe.FindAllStringSubmatch(content, -1) {
		routes = append(routes, Route{Method: m[1], Path: m[2]})
	}
	return routes
}

func parseLogic(content string) (classes, methods []string) {
	for _, m := range classRe.FindAllStringSubmatch(content, -1) {
		classes = append(classes, m[1])
	}
	for _, m := range methodRe.FindAllStringSubmatch(content, -1) {
		methods = append(methods, m[1])
	}
	return classes, methods
}
