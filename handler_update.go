package crudview

import "net/http"

// handleUpdate serves the edit form for an existing record on GET and
// processes it on POST/PUT/PATCH. Submitted values are bound over the stored
// record and validated before anything is saved, so an invalid submission
// leaves the record unchanged and re-renders the update template with field
// errors. The stored record stays available to the template under
// VerboseName, alongside the form values.
func (v *View[T]) handleUpdate(w http.ResponseWriter, r *http.Request, pk string) {
	obj, err := v.getObject(r.Context(), pk)
	if err != nil {
		if isNotFound(err) {
			v.notFound(w, r)
			return
		}
		v.serverError(w, r, err)
		return
	}

	if r.Method == http.MethodGet {
		v.render(w, OperationUpdate, http.StatusOK, map[string]any{
			"form":            obj,
			"errors":          map[string]string{},
			v.cfg.VerboseName: obj,
		})
		return
	}

	if err := v.bindForm(r, obj); err != nil {
		v.failValidation(w, r, OperationUpdate, obj,
			map[string]string{"form": err.Error()},
			map[string]any{v.cfg.VerboseName: obj})
		return
	}

	fieldErrors, err := v.checkObject(obj)
	if err != nil {
		v.serverError(w, r, err)
		return
	}
	if len(fieldErrors) > 0 {
		v.failValidation(w, r, OperationUpdate, obj, fieldErrors,
			map[string]any{v.cfg.VerboseName: obj})
		return
	}

	if err := v.writer(r.Context()).Save(obj).Error; err != nil {
		v.serverError(w, r, err)
		return
	}

	if v.wantsJSON(r) {
		writeSuccessWithData(w, r, "updated", map[string]any{v.cfg.VerboseName: obj})
		return
	}
	v.redirectAfterMutation(w, r)
}
