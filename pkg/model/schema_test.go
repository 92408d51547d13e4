package model_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/logger"
	"github.com/dmitrymomot/fieldrules/pkg/model"
	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

func userSchema(opts ...model.SchemaOption) *model.Schema {
	return model.NewSchema("user", opts...).
		Add("login", validator.Present, validator.Rule{Message: "Login is required"}).
		Add("login", validator.Length, validator.Rule{Qualifier: validator.Between(3, 20)}).
		Add("password", validator.Confirmed, validator.Rule{Qualifier: validator.FieldRef("passwordConfirmation")}).
		Add("email", validator.Format, validator.Rule{Qualifier: validator.MustPattern(`^[^@\s]+@[^@\s]+$`)}).
		Add("honeypot", validator.Absent, validator.Rule{}).
		AddOn([]model.Scenario{model.Create}, "terms", validator.Present, validator.Rule{})
}

func TestSchema_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid params", func(t *testing.T) {
		params := validator.Params{
			"login":                "mde",
			"password":             "secret",
			"passwordConfirmation": "secret",
			"email":                "mde@example.com",
			"terms":                true,
		}
		assert.NoError(t, userSchema().Validate(ctx, params, model.Create))
	})

	t.Run("aggregates failures in declaration order", func(t *testing.T) {
		params := validator.Params{
			"login":                "",
			"password":             "secret",
			"passwordConfirmation": "other",
			"email":                "nope",
			"honeypot":             "spam",
		}
		err := userSchema().Validate(ctx, params, model.Create)
		require.Error(t, err)
		require.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"login", "password", "email", "honeypot", "terms"}, verrs.Fields())
		assert.Equal(t, []string{"Login is required", "must not be empty"}, verrs.Get("login"))
		assert.Equal(t, "passwordConfirmation", verrs.GetErrors("password")[0].TranslationValues["qual"])
	})

	t.Run("scenario filters rules", func(t *testing.T) {
		params := validator.Params{
			"login":                "mde",
			"password":             "secret",
			"passwordConfirmation": "secret",
			"email":                "mde@example.com",
		}
		assert.NoError(t, userSchema().Validate(ctx, params, model.Update))

		err := userSchema().Validate(ctx, params, model.Create)
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"terms"}, verrs.Fields())
	})

	t.Run("empty scenario runs every rule", func(t *testing.T) {
		err := userSchema().Validate(ctx, validator.Params{
			"login": "mde", "email": "mde@example.com",
		}, "")
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("terms"))
	})

	t.Run("configuration error aborts and is not a validation error", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		s := model.NewSchema("broken", model.WithLogger(log)).
			Add("login", validator.Present, validator.Rule{}).
			Add("age", validator.WithFunction, validator.Rule{Qualifier: validator.Required(true)})

		err := s.Validate(ctx, validator.Params{}, model.Create)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidSchema)
		assert.ErrorIs(t, err, validator.ErrNotCallable)
		assert.False(t, validator.IsValidationError(err))
		assert.Contains(t, buf.String(), "validation rule misconfigured")
		assert.Contains(t, buf.String(), `"field":"age"`)
	})

	t.Run("unknown validator is a configuration error", func(t *testing.T) {
		s := model.NewSchema("odd").Add("login", "uniqueness", validator.Rule{})
		err := s.Validate(ctx, validator.Params{}, "")
		assert.ErrorIs(t, err, validator.ErrUnknownValidator)
		assert.ErrorIs(t, err, model.ErrInvalidSchema)
	})
}

func TestSchema_Rules(t *testing.T) {
	s := userSchema()
	assert.Equal(t, "user", s.Name())

	rules := s.Rules()
	require.Len(t, rules, 6)
	assert.Equal(t, "login", rules[0].Field)
	assert.Equal(t, validator.Present, rules[0].Validator)
	assert.Equal(t, []model.Scenario{model.Create}, rules[5].On)

	rules[0].Field = "changed"
	assert.Equal(t, "login", s.Rules()[0].Field, "Rules returns a copy")
}

func TestParseScenario(t *testing.T) {
	for _, s := range []string{"", "create", "update", "reify"} {
		sc, err := model.ParseScenario(s)
		require.NoError(t, err)
		assert.Equal(t, model.Scenario(s), sc)
	}

	_, err := model.ParseScenario("delete")
	assert.ErrorIs(t, err, model.ErrUnknownScenario)
}
