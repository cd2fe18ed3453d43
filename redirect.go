package crudview

import "net/http"

// redirectAfterMutation sends the caller to the configured RedirectURL after
// a successful create, update or delete. The URL is used verbatim.
func (v *View[T]) redirectAfterMutation(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, v.cfg.RedirectURL, http.StatusSeeOther)
}
