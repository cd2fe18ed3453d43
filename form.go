package crudview

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"rivaas.dev/binding"
)

// bindForm decodes the submitted form into obj using its `form` struct tags.
func (v *View[T]) bindForm(r *http.Request, obj *T) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return binding.FormTo(r.PostForm, obj)
}

// checkObject runs the model's `validate` tags and reports failures as a
// field → message map suitable for template and JSON error context.
func (v *View[T]) checkObject(obj *T) (map[string]string, error) {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	fieldErrors := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fieldErrors[fe.Field()] = "failed validation: " + fe.Tag()
	}
	return fieldErrors, nil
}

// joinFieldErrors flattens a field → message map into one sorted line.
func joinFieldErrors(fieldErrors map[string]string) string {
	keys := make([]string, 0, len(fieldErrors))
	for k := range fieldErrors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+fieldErrors[k])
	}
	return strings.Join(parts, "; ")
}

// wantsJSON reports whether the request asked for a JSON response. Only
// honored when the view was built with WithJSON.
func (v *View[T]) wantsJSON(r *http.Request) bool {
	if !v.jsonMode {
		return false
	}
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
