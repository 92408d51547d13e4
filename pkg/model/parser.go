package model

import (
	"context"
	"path/filepath"
	"strings"
)

// RuleFile is the declarative form of a schema.
type RuleFile struct {
	Name  string     `yaml:"name" json:"name"`
	Rules []RuleSpec `yaml:"rules" json:"rules"`
}

// RuleSpec declares one rule. Which qualifier keys apply depends on the
// validator: qualifier (confirmed), pattern (format), length or min/max
// (length), func (withFunction).
type RuleSpec struct {
	Field     string   `yaml:"field" json:"field"`
	Validator string   `yaml:"validator" json:"validator"`
	Message   string   `yaml:"message,omitempty" json:"message,omitempty"`
	Qualifier string   `yaml:"qualifier,omitempty" json:"qualifier,omitempty"`
	Pattern   string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Length    *int     `yaml:"length,omitempty" json:"length,omitempty"`
	Min       *int     `yaml:"min,omitempty" json:"min,omitempty"`
	Max       *int     `yaml:"max,omitempty" json:"max,omitempty"`
	Func      string   `yaml:"func,omitempty" json:"func,omitempty"`
	On        []string `yaml:"on,omitempty" json:"on,omitempty"`
}

// Parser decodes rule file content.
type Parser interface {
	Parse(ctx context.Context, content []byte) (*RuleFile, error)

	// SupportsFileExtension reports whether the parser handles ext,
	// with or without the leading dot.
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
