package validator

import "fmt"

// ValidateWithFunction runs the rule's Predicate with the value and all params.
// A rule without a predicate is a configuration error wrapping ErrNotCallable.
func ValidateWithFunction(name string, value any, params Params, rule Rule) (*ValidationError, error) {
	fn, ok := rule.Qualifier.(Predicate)
	if !ok || fn == nil {
		return nil, fmt.Errorf("%w: withFunction validator for field %q must be a function", ErrNotCallable, name)
	}

	if fn(value, params) {
		return nil, nil
	}
	return newFailure(name, rule, "validation.with_function", "is not valid", nil), nil
}
