package model

import (
	"fmt"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// Funcs maps the names used in rule files to withFunction predicates.
type Funcs map[string]validator.Predicate

// Build turns a decoded rule file into a Schema. Every problem the file can
// have is reported here, so a built schema never fails with a configuration
// error at validation time.
func Build(rf *RuleFile, funcs Funcs, opts ...SchemaOption) (*Schema, error) {
	if rf == nil || rf.Name == "" {
		return nil, fmt.Errorf("%w: schema name is required", ErrInvalidRuleFile)
	}

	s := NewSchema(rf.Name, opts...)
	for i, spec := range rf.Rules {
		fr, err := buildRule(spec, funcs)
		if err != nil {
			return nil, fmt.Errorf("%w: schema %q, rule #%d (%s): %w", ErrInvalidRuleFile, rf.Name, i+1, spec.Field, err)
		}
		s.rules = append(s.rules, fr)
	}
	return s, nil
}

func buildRule(spec RuleSpec, funcs Funcs) (FieldRule, error) {
	if spec.Field == "" {
		return FieldRule{}, fmt.Errorf("field is required")
	}

	name, err := validator.ParseName(spec.Validator)
	if err != nil {
		return FieldRule{}, err
	}

	on := make([]Scenario, 0, len(spec.On))
	for _, raw := range spec.On {
		sc, err := ParseScenario(raw)
		if err != nil {
			return FieldRule{}, err
		}
		if sc != "" {
			on = append(on, sc)
		}
	}

	q, err := buildQualifier(name, spec, funcs)
	if err != nil {
		return FieldRule{}, err
	}

	return FieldRule{
		Field:     spec.Field,
		Validator: name,
		Rule:      validator.Rule{Qualifier: q, Message: spec.Message},
		On:        on,
	}, nil
}

func buildQualifier(name validator.Name, spec RuleSpec, funcs Funcs) (validator.Qualifier, error) {
	switch name {
	case validator.Present, validator.Absent:
		return validator.Required(true), nil

	case validator.Confirmed:
		if spec.Qualifier == "" {
			return nil, fmt.Errorf("confirmed needs the qualifier of the field to compare with")
		}
		return validator.FieldRef(spec.Qualifier), nil

	case validator.Format:
		if spec.Pattern == "" {
			return nil, fmt.Errorf("format needs a pattern")
		}
		p, err := validator.CompilePattern(spec.Pattern)
		if err != nil {
			return nil, err
		}
		return p, nil

	case validator.Length:
		switch {
		case spec.Length != nil && (spec.Min != nil || spec.Max != nil):
			return nil, fmt.Errorf("length takes either length or min/max, not both")
		case spec.Length != nil:
			return validator.ExactLength(*spec.Length), nil
		case spec.Min == nil && spec.Max == nil:
			return nil, fmt.Errorf("length needs length, min or max")
		}
		var r validator.LengthRange
		if spec.Min != nil {
			r.Min, r.HasMin = *spec.Min, true
		}
		if spec.Max != nil {
			r.Max, r.HasMax = *spec.Max, true
		}
		if r.HasMin && r.HasMax && r.Min > r.Max {
			return nil, fmt.Errorf("length min %d is greater than max %d", r.Min, r.Max)
		}
		return r, nil

	case validator.WithFunction:
		fn, ok := funcs[spec.Func]
		if spec.Func == "" || !ok || fn == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, spec.Func)
		}
		return fn, nil
	}

	return nil, fmt.Errorf("%w: %q", validator.ErrUnknownValidator, name)
}
