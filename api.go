package crudview

import (
	"net/http"

	api "github.com/dracory/api"
)

// writeSuccess writes a success envelope with a message using api.Respond.
func writeSuccess(w http.ResponseWriter, r *http.Request, msg string) {
	api.Respond(w, r, api.Success(msg))
}

// writeSuccessWithData writes a success envelope with message and data.
func writeSuccessWithData(w http.ResponseWriter, r *http.Request, msg string, data map[string]any) {
	api.Respond(w, r, api.SuccessWithData(msg, data))
}

// writeError writes an error envelope with a message.
func writeError(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	api.Respond(w, r, api.Error(msg))
}
