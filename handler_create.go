package crudview

import "net/http"

// handleCreate serves the creation form on GET and processes it on POST.
// A valid submission inserts exactly one record and redirects; an invalid one
// re-renders the create template with the submitted values and field errors.
// Nothing is persisted on failure.
func (v *View[T]) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		v.render(w, OperationCreate, http.StatusOK, map[string]any{
			"form":   new(T),
			"errors": map[string]string{},
		})
		return
	}

	obj := new(T)
	if err := v.bindForm(r, obj); err != nil {
		v.failValidation(w, r, OperationCreate, obj, map[string]string{"form": err.Error()}, nil)
		return
	}

	fieldErrors, err := v.checkObject(obj)
	if err != nil {
		v.serverError(w, r, err)
		return
	}
	if len(fieldErrors) > 0 {
		v.failValidation(w, r, OperationCreate, obj, fieldErrors, nil)
		return
	}

	if err := v.writer(r.Context()).Create(obj).Error; err != nil {
		v.serverError(w, r, err)
		return
	}

	if v.wantsJSON(r) {
		writeSuccessWithData(w, r, "created", map[string]any{v.cfg.VerboseName: obj})
		return
	}
	v.redirectAfterMutation(w, r)
}

// failValidation re-renders the input template with error context, or lists
// the field errors in the JSON envelope. extra adds operation-specific
// context entries (the update form includes the stored record).
func (v *View[T]) failValidation(w http.ResponseWriter, r *http.Request, op Operation, obj *T, fieldErrors map[string]string, extra map[string]any) {
	if v.wantsJSON(r) {
		writeError(w, r, "validation failed: "+joinFieldErrors(fieldErrors))
		return
	}
	data := map[string]any{
		"form":   obj,
		"errors": fieldErrors,
	}
	for k, val := range extra {
		data[k] = val
	}
	v.render(w, op, http.StatusUnprocessableEntity, data)
}
