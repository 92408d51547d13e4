// Package validator provides the table of field validators used by the model
// layer: present, absent, confirmed, format, length and withFunction.
//
// Every validator is a plain Func that receives the field name, the field
// value, the full set of submitted params (for cross-field checks such as
// password confirmation) and a declarative Rule. A validator reports its
// outcome through two separate channels:
//
//   - validation failure: a non-nil *ValidationError describing the problem,
//     either with the rule's custom message or with translation-friendly
//     metadata (field name, counterpart field, min/max bounds);
//   - configuration error: a non-nil error, returned when the rule itself is
//     wrong (for example a withFunction rule without a predicate). Those are
//     programming mistakes and must not be shown to end users.
//
// # Rules and qualifiers
//
// A Rule pairs a Qualifier with an optional Message. Qualifier is a closed set
// of variants, one per validator family:
//
//	validator.Rule{Qualifier: validator.Required(true)}
//	validator.Rule{Qualifier: validator.FieldRef("passwordConfirmation")}
//	validator.Rule{Qualifier: validator.MustPattern(`^\d{4}$`)}
//	validator.Rule{Qualifier: validator.ExactLength(4)}
//	validator.Rule{Qualifier: validator.Between(2, 12), Message: "2 to 12 characters"}
//	validator.Rule{Qualifier: validator.Predicate(func(v any, p validator.Params) bool { return true })}
//
// # Usage
//
//	params := validator.Params{"password": "secret", "passwordConfirmation": "secret"}
//	failure, err := validator.Run(validator.Confirmed, "password", params["password"], params,
//	    validator.Rule{Qualifier: validator.FieldRef("passwordConfirmation")})
//	if err != nil {
//	    // misconfigured rule
//	}
//	if failure != nil {
//	    // collect into ValidationErrors and report to the user
//	}
//
// # Error Handling
//
// Failures are aggregated by callers into ValidationErrors, which implements
// the error interface. ExtractValidationErrors and IsValidationError work with
// wrapped errors, so validation problems can be told apart from configuration
// errors (ErrNotCallable, ErrInvalidQualifier, ErrUnknownValidator) with the
// errors package.
//
// All validators are stateless and safe for concurrent use.
package validator
