package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/sbgnconv/pkg/errors"
)

// APIError is the body of a failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	// Element is the id of the glyph or arc at fault.
	Element string `json:"element,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError answers with the status of err's code. Errors without a code
// are reported as internal without details.
func writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	body := APIError{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
		Element: errors.ElementOf(err),
	}

	var maxErr *http.MaxBytesError
	switch {
	case stderrors.As(err, &maxErr):
		status = http.StatusRequestEntityTooLarge
		body = APIError{Code: string(errors.ErrCodeInvalidInput), Message: "document too large"}
	case body.Code == "":
		body = APIError{Code: string(errors.ErrCodeInternal), Message: "internal error"}
	default:
		var e *errors.Error
		if stderrors.As(err, &e) && e.Cause != nil {
			body.Details = e.Cause.Error()
		}
	}
	writeJSON(w, status, body)
}
