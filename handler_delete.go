package crudview

import "net/http"

// handleDelete renders a confirmation page on GET and deletes the record on
// POST/DELETE. A missing primary key is a plain 404 with no side effects.
func (v *View[T]) handleDelete(w http.ResponseWriter, r *http.Request, pk string) {
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
		if v.wantsJSON(r) {
			writeSuccessWithData(w, r, "", map[string]any{v.cfg.VerboseName: obj})
			return
		}
		v.render(w, OperationDelete, http.StatusOK, map[string]any{
			v.cfg.VerboseName: obj,
		})
		return
	}

	if err := v.writer(r.Context()).Delete(obj).Error; err != nil {
		v.serverError(w, r, err)
		return
	}

	if v.wantsJSON(r) {
		writeSuccess(w, r, "deleted")
		return
	}
	v.redirectAfterMutation(w, r)
}
