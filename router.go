package crudview

import (
	"net/http"
	"strings"

	"github.com/samber/lo"
)

// Viewer is what the Router needs from a registered view. *View[T]
// implements it for any model type.
type Viewer interface {
	http.Handler
	Allowed() []Operation
	PKParam() string
	Basename() string
}

// Route is one generated URL entry: a pattern, its handler and a stable name
// usable for reversing (see the urls package).
type Route struct {
	Operation Operation
	Pattern   string
	Name      string
	Handler   http.Handler
}

type registration struct {
	prefix   string
	view     Viewer
	basename string
}

// Router accumulates view registrations and emits the conventional route
// table: {prefix}, {prefix}create/, {prefix}{pk}/, {prefix}{pk}/update/ and
// {prefix}{pk}/delete/ per registered view, filtered to the view's allowed
// operations. Registrations are append-only and consumed once: the table is
// built on first use and the router refuses registrations afterwards.
type Router struct {
	registry  []registration
	routes    []Route
	finalized bool
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{}
}

// Register adds a view under the given path prefix. The prefix gets a
// trailing slash when missing. An empty basename is derived from the view.
// Duplicate prefixes or basenames are configuration errors.
func (rt *Router) Register(prefix string, view Viewer, basename string) error {
	if rt.finalized {
		return configErrorf("router already finalized, register views before requesting routes")
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if basename == "" {
		basename = view.Basename()
	}
	basename = strings.ToLower(basename)

	for _, reg := range rt.registry {
		if reg.prefix == prefix {
			return configErrorf("router prefix %q is already registered, provide a unique prefix", prefix)
		}
		if reg.basename == basename {
			return configErrorf("router basename %q is already registered, provide a unique basename", basename)
		}
	}

	rt.registry = append(rt.registry, registration{prefix: prefix, view: view, basename: basename})
	return nil
}

// Routes returns the generated route table. The table is computed once and
// reused on later calls.
func (rt *Router) Routes() []Route {
	if rt.finalized {
		return rt.routes
	}
	rt.finalized = true

	rt.routes = lo.FlatMap(rt.registry, func(reg registration, _ int) []Route {
		return lo.Map(reg.view.Allowed(), func(op Operation, _ int) Route {
			pattern, name := routeFor(op, reg.prefix, reg.basename, reg.view.PKParam())
			return Route{Operation: op, Pattern: pattern, Name: name, Handler: reg.view}
		})
	})
	return rt.routes
}

// Mount installs the route table on the given mux. Patterns are anchored with
// {$} so a route never swallows its subtree.
func (rt *Router) Mount(mux *http.ServeMux) {
	for _, route := range rt.Routes() {
		mux.Handle(mountPattern(route.Pattern), route.Handler)
	}
}

// Handler returns the mounted route table wrapped in the request-logging
// middleware.
func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	rt.Mount(mux)
	return RequestLogger(mux)
}

// routeFor maps one operation to its conventional (pattern, name) pair.
func routeFor(op Operation, prefix, basename, pkParam string) (string, string) {
	pk := "{" + pkParam + "}"
	switch op {
	case OperationCreate:
		return prefix + "create/", basename + "_create"
	case OperationDetail:
		return prefix + pk + "/", basename + "_detail"
	case OperationUpdate:
		return prefix + pk + "/update/", basename + "_update"
	case OperationDelete:
		return prefix + pk + "/delete/", basename + "_delete"
	default:
		return prefix, basename + "_list"
	}
}

func mountPattern(pattern string) string {
	if !strings.HasPrefix(pattern, "/") {
		pattern = "/" + pattern
	}
	if strings.HasSuffix(pattern, "/") {
		pattern += "{$}"
	}
	return pattern
}
