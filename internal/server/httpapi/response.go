package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mhartwell/equinesocial/internal/common"
)

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError translates service sentinels into HTTP status codes. Unknown
// errors collapse into a generic 500 so internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not_found", Message: "record not found"})
	case errors.Is(err, common.ErrorUnauthorized):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: "authentication required"})
	case errors.Is(err, common.ErrorForbidden):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "forbidden", Message: "not allowed"})
	case errors.Is(err, common.ErrorUploadFailed):
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "upload_failed", Message: "could not store the uploaded file"})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal", Message: "internal server error"})
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: message})
}
