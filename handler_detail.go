package crudview

import "net/http"

// handleDetail renders a single record fetched by primary key. The template
// context holds the record under VerboseName.
func (v *View[T]) handleDetail(w http.ResponseWriter, r *http.Request, pk string) {
	obj, err := v.getObject(r.Context(), pk)
	if err != nil {
		if isNotFound(err) {
			v.notFound(w, r)
			return
		}
		v.serverError(w, r, err)
		return
	}

	if v.wantsJSON(r) {
		writeSuccessWithData(w, r, "", map[string]any{v.cfg.VerboseName: obj})
		return
	}
	v.render(w, OperationDetail, http.StatusOK, map[string]any{
		v.cfg.VerboseName: obj,
	})
}
