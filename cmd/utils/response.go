package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

// WriteSuccess writes the {"success":true} body most mutation routes return.
func WriteSuccess(w http.ResponseWriter) {
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

// WriteError maps an error from the service layer onto the HTTP taxonomy:
// validation and duplicate-email problems are 400, credential problems 401,
// missing or foreign-owned records 404, anything else a logged 500 with a
// stable generic tag.
func WriteError(w http.ResponseWriter, err error) {
	var verr ValidationError
	switch {
	case errors.As(err, &verr):
		writeFailure(w, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, ErrEmailTaken):
		writeFailure(w, http.StatusBadRequest, "Email exists")
	case errors.Is(err, ErrBadCredentials), errors.Is(err, ErrUnauthorized):
		writeFailure(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrNotFound):
		writeFailure(w, http.StatusNotFound, "Not found")
	default:
		log.Printf("internal error: %v", err)
		writeFailure(w, http.StatusInternalServerError, "Internal error")
	}
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]any{"success": false, "error": msg})
}
