package model

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/fieldrules/pkg/logger"
	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// FieldRule binds one validator and its rule to a field.
type FieldRule struct {
	Field     string
	Validator validator.Name
	Rule      validator.Rule
	// On limits the rule to the listed scenarios. Empty means always.
	On []Scenario
}

func (fr FieldRule) appliesTo(sc Scenario) bool {
	return len(fr.On) == 0 || sc == "" || slices.Contains(fr.On, sc)
}

// Schema is the ordered rule set of one record type.
type Schema struct {
	name   string
	rules  []FieldRule
	logger *slog.Logger
}

// SchemaOption configures a Schema.
type SchemaOption func(*Schema)

// WithLogger sets the logger used to report misconfigured rules.
func WithLogger(l *slog.Logger) SchemaOption {
	return func(s *Schema) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSchema creates an empty schema.
func NewSchema(name string, opts ...SchemaOption) *Schema {
	s := &Schema{name: name, logger: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Schema) Name() string { return s.name }

// Rules returns a copy of the declared rules in declaration order.
func (s *Schema) Rules() []FieldRule {
	return slices.Clone(s.rules)
}

// Add declares a rule that runs in every scenario.
func (s *Schema) Add(field string, name validator.Name, rule validator.Rule) *Schema {
	return s.AddOn(nil, field, name, rule)
}

// AddOn declares a rule limited to the given scenarios.
func (s *Schema) AddOn(on []Scenario, field string, name validator.Name, rule validator.Rule) *Schema {
	s.rules = append(s.rules, FieldRule{
		Field:     field,
		Validator: name,
		Rule:      rule,
		On:        slices.Clone(on),
	})
	return s
}

// Validate runs every rule active in sc against params. It returns nil when
// all rules pass, validator.ValidationErrors when some fail, and an error
// wrapping ErrInvalidSchema when a rule is misconfigured. An empty scenario
// runs all rules.
func (s *Schema) Validate(ctx context.Context, params validator.Params, sc Scenario) error {
	var failures validator.ValidationErrors

	for _, fr := range s.rules {
		if !fr.appliesTo(sc) {
			continue
		}

		failure, err := validator.Run(fr.Validator, fr.Field, params[fr.Field], params, fr.Rule)
		if err != nil {
			s.logger.ErrorContext(ctx, "validation rule misconfigured",
				logger.Schema(s.name),
				logger.Field(fr.Field),
				logger.Validator(string(fr.Validator)),
				logger.Error(err),
			)
			return errors.Join(ErrInvalidSchema, fmt.Errorf("schema %q: %w", s.name, err))
		}
		if failure != nil {
			failures.Add(*failure)
		}
	}

	if failures.IsEmpty() {
		return nil
	}

	s.logger.DebugContext(ctx, "validation failed",
		logger.Schema(s.name),
		logger.Scenario(string(sc)),
		logger.Failures(len(failures)),
	)
	return failures
}
