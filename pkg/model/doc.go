// Package model is the consumer of the validator table: it holds the
// declared rules of a record type and runs them against submitted params.
//
// A Schema is an ordered list of FieldRule values. Validate looks up each
// rule's validator, calls it with the field value and all params, and
// collects failures into validator.ValidationErrors. A misconfigured rule
// stops validation and is reported as an error wrapping ErrInvalidSchema, so
// callers can keep user-facing failures and programming mistakes apart.
//
//	user := model.NewSchema("user").
//		Add("login", validator.Present, validator.Rule{Message: "Login is required"}).
//		Add("login", validator.Length, validator.Rule{Qualifier: validator.Between(3, 20)}).
//		Add("password", validator.Confirmed, validator.Rule{Qualifier: validator.FieldRef("passwordConfirmation")}).
//		AddOn([]model.Scenario{model.Create}, "terms", validator.Present, validator.Rule{})
//
//	err := user.Validate(ctx, params, model.Create)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// show verrs to the user
//	} else if err != nil {
//		// broken schema
//	}
//
// Schemas can also be declared in YAML or JSON rule files and loaded into a
// Registry. Custom predicates for withFunction rules are referenced by name
// and resolved from a Funcs map supplied by the application.
package model
