package server

import (
	"encoding/json"
	"net/http"

	"github.com/lynxviz/lynxviz/pkg/errors"
	"github.com/lynxviz/lynxviz/pkg/observability"
)

// errorResponse is the JSON body of every error reply.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusForCode(code)

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	observability.Server().OnError(r.Context(), r.Method, r.URL.Path, err)

	s.writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: code})
}

// statusForCode maps structured error codes to HTTP statuses. Codes outside
// the table, including uncoded errors, are treated as internal failures.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidDirection,
		errors.ErrCodeInvalidVariant,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidOptions,
		errors.ErrCodeInvalidPath,
		errors.ErrCodeMalformedInput:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeFileNotFound,
		errors.ErrCodeLayoutNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
