package validator

import "errors"

// Configuration errors. They signal a broken rule declaration, never bad input.
var (
	// ErrNotCallable is returned by withFunction when the rule's qualifier is not a predicate.
	ErrNotCallable = errors.New("qualifier is not a function")

	// ErrInvalidQualifier is returned when a rule carries a qualifier of the wrong kind for its validator.
	ErrInvalidQualifier = errors.New("invalid qualifier")

	// ErrUnknownValidator is returned when a validator name is not in the table.
	ErrUnknownValidator = errors.New("unknown validator")
)
