package crudview

import (
	"log/slog"
	"net/http"
)

// serverError reports an unexpected failure (database, template) for the
// current request. No retries: the failure is terminal and logged.
func (v *View[T]) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("crudview request failed",
		slog.String("id", GetRequestID(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	if v.wantsJSON(r) {
		writeError(w, r, err.Error())
		return
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// methodNotAllowed reports a shape/method combination no operation serves.
func (v *View[T]) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if v.wantsJSON(r) {
		writeError(w, r, "method not allowed")
		return
	}
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

// notFound reports a missing record.
func (v *View[T]) notFound(w http.ResponseWriter, r *http.Request) {
	if v.wantsJSON(r) {
		writeError(w, r, "record not found")
		return
	}
	http.NotFound(w, r)
}
