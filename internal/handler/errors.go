package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/amc-activities/eventlist/internal/domain"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// parseErrorBody returns an ErrorResponse for a feed that could not be decoded.
func parseErrorBody(err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "parse_error", Message: unwrapMessage(err, domain.ErrParse)}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
func validationBody(err error, sentinel error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err, sentinel)}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. a malformed query parameter).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}}
}

// unwrapMessage extracts the human-readable part that follows the sentinel
// in a wrapped error.
// e.g. "service.EventListService.RenderList: feed.Parse: parse error: empty document"
// → "parse error: empty document"
func unwrapMessage(err error, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if sentinel != nil {
		if i := strings.Index(msg, sentinel.Error()); i >= 0 {
			return msg[i:]
		}
	}
	return msg
}

// writeError maps service errors to status codes. Unknown errors become 500
// without leaking their text.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrParse):
		writeJSON(w, http.StatusUnprocessableEntity, parseErrorBody(err))
	case errors.Is(err, domain.ErrInvalidDisplayMode):
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err, domain.ErrInvalidDisplayMode))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err, domain.ErrValidation))
	default:
		writeJSON(w, http.StatusInternalServerError,
			ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck — the status line is already written; nothing left to report to.
	json.NewEncoder(w).Encode(v)
}
