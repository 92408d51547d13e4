package validator

import "fmt"

// ValidateFormat fails when the value does not match the rule's Pattern.
// Non-string values are matched against their text form.
func ValidateFormat(name string, value any, _ Params, rule Rule) (*ValidationError, error) {
	pattern, ok := rule.Qualifier.(Pattern)
	if !ok || pattern.Regexp == nil {
		return nil, fmt.Errorf("%w: format validator for field %q needs a pattern, got %T",
			ErrInvalidQualifier, name, rule.Qualifier)
	}

	if pattern.MatchString(stringify(value)) {
		return nil, nil
	}
	return newFailure(name, rule, "validation.format", "is not correctly formatted", nil), nil
}
