package router

import (
	"github.com/vcrobe/navheader/runtime"
)

// Route maps a path pattern to the factory of the page rendered for it.
// The pattern can contain parameters in curly braces, e.g. "/blog/{year}".
type Route struct {
	Path    string
	Factory runtime.ComponentFactory
}

// Table holds registered routes in registration order.
type Table struct {
	routes   []Route
	notFound runtime.ComponentFactory
}

// Register appends routes to the table. Earlier routes win when several patterns match.
func (t *Table) Register(routes ...Route) {
	t.routes = append(t.routes, routes...)
}

// HandleNotFound sets the factory used when no route matches.
func (t *Table) HandleNotFound(factory runtime.ComponentFactory) {
	t.notFound = factory
}

// Resolve finds the route for path and returns it with the extracted parameters.
// When nothing matches and a not-found factory is set, it is returned with ok == true and an
// empty Path.
func (t *Table) Resolve(path string) (route Route, params map[string]string, ok bool) {
	for _, r := range t.routes {
		if MatchPattern(r.Path, path) {
			return r, ExtractParams(r.Path, path), true
		}
	}
	if t.notFound != nil {
		return Route{Factory: t.notFound}, map[string]string{}, true
	}
	return Route{}, nil, false
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	return len(t.routes)
}
