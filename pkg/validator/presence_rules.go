package validator

// ValidatePresent fails when the value is empty.
func ValidatePresent(name string, value any, _ Params, rule Rule) (*ValidationError, error) {
	if truthy(value) {
		return nil, nil
	}
	return newFailure(name, rule, "validation.present", "field is required", nil), nil
}

// ValidateAbsent fails when the value is filled in.
func ValidateAbsent(name string, value any, _ Params, rule Rule) (*ValidationError, error) {
	if !truthy(value) {
		return nil, nil
	}
	return newFailure(name, rule, "validation.absent", "field must not be filled in", nil), nil
}
