package controllers

import (
	"encoding/json"
	"net/http"

	"helpdesk/backend/app/apperr"
	"helpdesk/backend/global"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to its status code. Internal errors are logged
// with full detail but reach the client as an opaque message.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		global.Logger.Error().Err(err).Msg("request failed")
		msg = "Error interno del servidor"
	}
	writeJSON(w, status, map[string]string{"error": msg})
}
