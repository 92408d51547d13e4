package validator

import "fmt"

// ValidateConfirmed fails when the value differs from the field named by the
// rule's FieldRef, e.g. a password and its confirmation.
func ValidateConfirmed(name string, value any, params Params, rule Rule) (*ValidationError, error) {
	qual, ok := rule.Qualifier.(FieldRef)
	if !ok || qual == "" {
		return nil, fmt.Errorf("%w: confirmed validator for field %q needs a field reference, got %T",
			ErrInvalidQualifier, name, rule.Qualifier)
	}

	if looseEqual(value, params[string(qual)]) {
		return nil, nil
	}
	return newFailure(name, rule, "validation.confirmed",
		fmt.Sprintf("must match %s", qual),
		map[string]any{"qual": string(qual)},
	), nil
}
