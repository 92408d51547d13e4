package binder

import (
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// Params binds the request into validator.Params based on its content type.
// Requests without a body (GET, HEAD, DELETE, or ContentLength 0 with no
// content type) are bound from the query string.
func Params(r *http.Request) (validator.Params, error) {
	if !hasBody(r) {
		return Query(r), nil
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, ErrMissingContentType
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, ErrUnsupportedMediaType
	}

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		return JSON(r)
	case mediaType == "application/x-www-form-urlencoded", mediaType == "multipart/form-data":
		return Form(r)
	default:
		return nil, ErrUnsupportedMediaType
	}
}

// Query binds the URL query string.
func Query(r *http.Request) validator.Params {
	return fromValues(r.URL.Query())
}

func hasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
		return false
	}
	if r.Body == nil || r.Body == http.NoBody {
		return false
	}
	return r.ContentLength != 0 || r.Header.Get("Content-Type") != ""
}

// fromValues collapses single-value fields to strings.
func fromValues(values map[string][]string) validator.Params {
	params := make(validator.Params, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
			params[key] = ""
		case 1:
			params[key] = vals[0]
		default:
			params[key] = append([]string(nil), vals...)
		}
	}
	return params
}
