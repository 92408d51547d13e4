package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser implements the Parser interface for JSON rule files.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes JSON content. Unknown keys are rejected.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (*RuleFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()

	var rf RuleFile
	if err := dec.Decode(&rf); err != nil {
		return nil, errors.Join(ErrInvalidRuleFile, err)
	}
	return &rf, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
