package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Params holds every submitted field value of a record, keyed by field name.
type Params map[string]any

// Rule is the declarative configuration of one validator for one field.
type Rule struct {
	Qualifier Qualifier
	// Message replaces the default failure message when set.
	Message string
}

// Func is the signature shared by every validator in the table.
// It returns (nil, nil) for a valid value, a failure for invalid input and
// an error for a misconfigured rule.
type Func func(name string, value any, params Params, rule Rule) (*ValidationError, error)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field   string
	Message string
	// Custom is true when Message comes from Rule.Message.
	Custom            bool
	TranslationKey    string
	TranslationValues map[string]any
}

// newFailure builds the failure descriptor, preferring the rule's own message.
func newFailure(name string, rule Rule, key, message string, values map[string]any) *ValidationError {
	tv := map[string]any{"field": name}
	for k, v := range values {
		tv[k] = v
	}

	if rule.Message != "" {
		return &ValidationError{
			Field:             name,
			Message:           rule.Message,
			Custom:            true,
			TranslationKey:    key,
			TranslationValues: tv,
		}
	}

	return &ValidationError{
		Field:             name,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: tv,
	}
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Translator renders a translation key with key/value arguments.
// *i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
}

// Translate returns a copy with default messages rendered in lang.
// Custom messages are kept as declared. Keys the translator does not know
// keep their English default.
func (ve ValidationErrors) Translate(tr Translator, lang string) ValidationErrors {
	if tr == nil || len(ve) == 0 {
		return ve
	}

	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		out[i] = err
		if err.Custom || err.TranslationKey == "" {
			continue
		}

		keys := make([]string, 0, len(err.TranslationValues))
		for k := range err.TranslationValues {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		args := make([]string, 0, len(keys)*2)
		for _, k := range keys {
			args = append(args, k, fmt.Sprint(err.TranslationValues[k]))
		}

		if msg := tr.T(lang, err.TranslationKey, args...); msg != "" && msg != err.TranslationKey {
			out[i].Message = msg
		}
	}
	return out
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
