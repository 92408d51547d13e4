package validation

import "net/http"

// HTTPError is an error answered with a fixed status code and a stable code string.
type HTTPError struct {
	Status int
	Code   string
}

func (e HTTPError) Error() string {
	return e.Code
}

var (
	ErrBadRequest           = HTTPError{Status: http.StatusBadRequest, Code: "bad_request"}
	ErrInvalidScenario      = HTTPError{Status: http.StatusBadRequest, Code: "invalid_scenario"}
	ErrNotFound             = HTTPError{Status: http.StatusNotFound, Code: "not_found"}
	ErrUnsupportedMediaType = HTTPError{Status: http.StatusUnsupportedMediaType, Code: "unsupported_media_type"}
	ErrInternal             = HTTPError{Status: http.StatusInternalServerError, Code: "internal_error"}
)
