package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON binds a JSON object body. Numbers decode as float64.
func JSON(r *http.Request) (validator.Params, error) {
	if err := r.Context().Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if len(body) > DefaultMaxJSONSize {
		return nil, fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, DefaultMaxJSONSize)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}

	var params validator.Params
	if err := json.Unmarshal(body, &params); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: body must be a JSON object", ErrFailedToParseJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	if params == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrFailedToParseJSON)
	}
	return params, nil
}
