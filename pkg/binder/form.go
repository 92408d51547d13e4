package binder

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Form binds url-encoded and multipart form bodies. Only body values are
// bound; the URL query is ignored.
func Form(r *http.Request) (validator.Params, error) {
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
	}

	if mediaType != "multipart/form-data" {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return fromValues(r.PostForm), nil
	}

	if params["boundary"] == "" {
		return nil, fmt.Errorf("%w: missing boundary in content type", ErrFailedToParseForm)
	}
	if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
	}

	if r.MultipartForm == nil {
		return fromValues(r.PostForm), nil
	}

	out := fromValues(r.MultipartForm.Value)
	for key, files := range r.MultipartForm.File {
		switch len(files) {
		case 0:
		case 1:
			out[key] = files[0]
		default:
			out[key] = files
		}
	}
	return out, nil
}
