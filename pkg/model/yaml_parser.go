package model

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML rule files.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes YAML content. Unknown keys are rejected.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (*RuleFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var rf RuleFile
	if err := dec.Decode(&rf); err != nil {
		return nil, errors.Join(ErrInvalidRuleFile, err)
	}
	return &rf, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
