package model

import "errors"

var (
	// ErrInvalidSchema wraps configuration errors raised while validating.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrInvalidRuleFile is returned when a rule file cannot be turned into a schema.
	ErrInvalidRuleFile = errors.New("invalid rule file")

	// ErrUnknownFunction is returned when a rule file references an unregistered predicate.
	ErrUnknownFunction = errors.New("unknown function")

	// ErrSchemaNotFound is returned by Registry.Get for unknown names.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrDuplicateSchema is returned when a schema name is registered twice.
	ErrDuplicateSchema = errors.New("schema already registered")

	// ErrUnsupportedFile is returned for rule files with an unknown extension.
	ErrUnsupportedFile = errors.New("unsupported rule file")

	// ErrUnknownScenario is returned by ParseScenario.
	ErrUnknownScenario = errors.New("unknown scenario")

	ErrLoadingCancelled = errors.New("loading rule files cancelled")
)
