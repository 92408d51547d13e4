package validator

import "fmt"

// ValidateLength checks the value length against an ExactLength or a
// LengthRange. An empty value always fails. Range bounds are checked
// independently, min first.
func ValidateLength(name string, value any, _ Params, rule Rule) (*ValidationError, error) {
	switch rule.Qualifier.(type) {
	case ExactLength, LengthRange:
	default:
		return nil, fmt.Errorf("%w: length validator for field %q needs an exact length or a range, got %T",
			ErrInvalidQualifier, name, rule.Qualifier)
	}

	if !truthy(value) {
		return newFailure(name, rule, "validation.length_empty", "must not be empty", nil), nil
	}

	n, ok := measure(value)
	if !ok {
		return newFailure(name, rule, "validation.length_invalid", "has no measurable length", nil), nil
	}

	switch q := rule.Qualifier.(type) {
	case ExactLength:
		if n != int(q) {
			return newFailure(name, rule, "validation.exact_length",
				fmt.Sprintf("must be exactly %d characters long", int(q)),
				map[string]any{"length": int(q)},
			), nil
		}
	case LengthRange:
		if q.HasMin && n < q.Min {
			return newFailure(name, rule, "validation.min_length",
				fmt.Sprintf("must be at least %d characters long", q.Min),
				map[string]any{"min": q.Min},
			), nil
		}
		if q.HasMax && n > q.Max {
			return newFailure(name, rule, "validation.max_length",
				fmt.Sprintf("must be at most %d characters long", q.Max),
				map[string]any{"max": q.Max},
			), nil
		}
	}

	return nil, nil
}
