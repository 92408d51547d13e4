package validation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// FieldError is one failed rule in a 422 response.
type FieldError struct {
	Field   string         `json:"field"`
	Message string         `json:"message"`
	Key     string         `json:"key,omitempty"`
	Values  map[string]any `json:"values,omitempty"`
}

// FailureResponse is the 422 body.
type FailureResponse struct {
	Errors []FieldError `json:"errors"`
}

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SchemasResponse lists registered schema names.
type SchemasResponse struct {
	Schemas []string `json:"schemas"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeFailures(w http.ResponseWriter, failures validator.ValidationErrors) {
	body := FailureResponse{Errors: make([]FieldError, 0, len(failures))}
	for _, f := range failures {
		body.Errors = append(body.Errors, FieldError{
			Field:   f.Field,
			Message: f.Message,
			Key:     f.TranslationKey,
			Values:  f.TranslationValues,
		})
	}
	writeJSON(w, http.StatusUnprocessableEntity, body)
}

// writeError answers with err's status when it is an HTTPError and 500 otherwise.
func writeError(w http.ResponseWriter, err error) {
	httpErr := ErrInternal
	var target HTTPError
	if errors.As(err, &target) {
		httpErr = target
	}

	writeJSON(w, httpErr.Status, ErrorResponse{Error: ErrorDetail{
		Code:    httpErr.Code,
		Message: http.StatusText(httpErr.Status),
	}})
}
