package i18n

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Parser decodes translation file content into language → tree.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// splitLanguages checks that every top-level value is a translation tree.
func splitLanguages(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		tree, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		result[lang] = tree
	}
	return result, nil
}
