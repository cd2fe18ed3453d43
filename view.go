package crudview

import (
	"html/template"
	"io/fs"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// View serves the five CRUD operations for one GORM model type T.
// It implements http.Handler and is safe for concurrent use: all its state is
// set at construction time and read-only afterwards.
//
// Models are expected to follow the GORM convention of an ID primary key.
type View[T any] struct {
	cfg      Config
	db       *gorm.DB
	queryset *gorm.DB
	tmplFS   fs.FS
	funcs    template.FuncMap
	jsonMode bool
	allowed  map[Operation]bool
	validate *validator.Validate
}

// Option configures a View at construction time.
type Option[T any] func(*View[T])

// WithQueryset replaces the default "all records of the model" scope with an
// explicit GORM query, e.g. db.Model(&Task{}).Where("done = ?", false).
func WithQueryset[T any](qs *gorm.DB) Option[T] {
	return func(v *View[T]) { v.queryset = qs }
}

// WithTemplateFS sets the filesystem templates are loaded from
// (embed.FS or os.DirFS).
func WithTemplateFS[T any](fsys fs.FS) Option[T] {
	return func(v *View[T]) { v.tmplFS = fsys }
}

// WithFuncs adds functions available to the view's templates.
func WithFuncs[T any](funcs template.FuncMap) Option[T] {
	return func(v *View[T]) { v.funcs = funcs }
}

// WithJSON enables JSON responses for requests that ask for them via the
// Accept header or a format=json query parameter.
func WithJSON[T any]() Option[T] {
	return func(v *View[T]) { v.jsonMode = true }
}

// New builds a View for model type T over the given database.
// The configuration is validated here, not at request time: an unknown
// operation in AllowedViews, a missing redirect target for an enabled
// mutation, a missing template source or a missing database all fail fast.
func New[T any](db *gorm.DB, cfg Config, opts ...Option[T]) (*View[T], error) {
	v := &View[T]{db: db}
	for _, opt := range opts {
		opt(v)
	}

	v.cfg = cfg.withDefaults(modelName[T]())

	allowed, err := v.cfg.allowedSet()
	if err != nil {
		return nil, err
	}
	v.allowed = allowed

	if v.db == nil && v.queryset == nil {
		return nil, configErrorf("crudview: no model source, provide a database or a queryset")
	}
	if v.tmplFS == nil {
		return nil, configErrorf("crudview: no template source, use WithTemplateFS")
	}
	if v.cfg.TemplateFolder == "" && len(v.cfg.CustomTemplates) == 0 {
		return nil, configErrorf("crudview: provide TemplateFolder or CustomTemplates")
	}
	if v.cfg.RedirectURL == "" {
		for _, op := range mutations {
			if v.allowed[op] {
				return nil, configErrorf("crudview: operation %q is enabled but RedirectURL is not set", op)
			}
		}
	}

	v.validate = validator.New(validator.WithRequiredStructEnabled())
	return v, nil
}

// Allowed returns the enabled operations in emission order.
func (v *View[T]) Allowed() []Operation {
	ops := make([]Operation, 0, len(v.allowed))
	for _, op := range AllOperations {
		if v.allowed[op] {
			ops = append(ops, op)
		}
	}
	return ops
}

// PKParam returns the path wildcard name the primary key is read from.
func (v *View[T]) PKParam() string {
	return v.cfg.PKParam
}

// Basename returns the default route-name prefix for this view.
func (v *View[T]) Basename() string {
	return strings.ReplaceAll(v.cfg.VerboseName, " ", "_")
}

// ServeHTTP resolves the request to exactly one operation and delegates to
// its handler. A request whose shape matches no operation gets 405; one that
// resolves to a disabled operation gets 404, as if the route did not exist.
func (v *View[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	pk := r.PathValue(v.cfg.PKParam)

	op, ok := resolveOperation(r.Method, r.URL.Path, pk)
	if !ok {
		v.methodNotAllowed(w, r)
		return
	}
	if !v.allowed[op] {
		v.notFound(w, r)
		return
	}

	switch op {
	case OperationList:
		v.handleList(w, r)
	case OperationDetail:
		v.handleDetail(w, r, pk)
	case OperationCreate:
		v.handleCreate(w, r)
	case OperationUpdate:
		v.handleUpdate(w, r, pk)
	case OperationDelete:
		v.handleDelete(w, r, pk)
	}
}

func modelName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
