package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

func TestValidateConfirmed(t *testing.T) {
	t.Parallel()

	rule := validator.Rule{Qualifier: validator.FieldRef("pwConfirm")}

	t.Run("fails on mismatch with qual in descriptor", func(t *testing.T) {
		t.Parallel()

		params := validator.Params{"pw": "a", "pwConfirm": "b"}
		failure, err := validator.ValidateConfirmed("pw", "a", params, rule)
		require.NoError(t, err)
		require.NotNil(t, failure)
		assert.Equal(t, "pw", failure.Field)
		assert.Equal(t, "must match pwConfirm", failure.Message)
		assert.Equal(t, "validation.confirmed", failure.TranslationKey)
		assert.Equal(t, map[string]any{"field": "pw", "qual": "pwConfirm"}, failure.TranslationValues)
	})

	t.Run("passes on matching values", func(t *testing.T) {
		t.Parallel()

		params := validator.Params{"pw": "a", "pwConfirm": "a"}
		failure, err := validator.ValidateConfirmed("pw", "a", params, rule)
		require.NoError(t, err)
		assert.Nil(t, failure)
	})

	t.Run("fails when counterpart is missing", func(t *testing.T) {
		t.Parallel()

		params := validator.Params{"pw": "a"}
		failure, err := validator.ValidateConfirmed("pw", "a", params, rule)
		require.NoError(t, err)
		assert.NotNil(t, failure)
	})

	t.Run("passes when both are missing", func(t *testing.T) {
		t.Parallel()

		failure, err := validator.ValidateConfirmed("pw", nil, validator.Params{}, rule)
		require.NoError(t, err)
		assert.Nil(t, failure)
	})

	t.Run("compares scalars loosely", func(t *testing.T) {
		t.Parallel()

		params := validator.Params{"code": 42, "codeConfirm": "42"}
		failure, err := validator.ValidateConfirmed("code", params["code"], params,
			validator.Rule{Qualifier: validator.FieldRef("codeConfirm")})
		require.NoError(t, err)
		assert.Nil(t, failure)
	})

	t.Run("booleans only match booleans", func(t *testing.T) {
		t.Parallel()

		confirm := validator.Rule{Qualifier: validator.FieldRef("b")}

		params := validator.Params{"a": true, "b": "true"}
		failure, err := validator.ValidateConfirmed("a", params["a"], params, confirm)
		require.NoError(t, err)
		assert.NotNil(t, failure)

		params = validator.Params{"a": false, "b": 0}
		failure, err = validator.ValidateConfirmed("a", params["a"], params, confirm)
		require.NoError(t, err)
		assert.NotNil(t, failure)

		params = validator.Params{"a": true, "b": true}
		failure, err = validator.ValidateConfirmed("a", params["a"], params, confirm)
		require.NoError(t, err)
		assert.Nil(t, failure)
	})

	t.Run("compares collections deeply", func(t *testing.T) {
		t.Parallel()

		params := validator.Params{"tags": []string{"a", "b"}, "tagsConfirm": []string{"a", "b"}}
		failure, err := validator.ValidateConfirmed("tags", params["tags"], params,
			validator.Rule{Qualifier: validator.FieldRef("tagsConfirm")})
		require.NoError(t, err)
		assert.Nil(t, failure)
	})

	t.Run("returns rule message when set", func(t *testing.T) {
		t.Parallel()

		params := validator.Params{"pwConfirm": "b"}
		failure, err := validator.ValidateConfirmed("pw", "a", params, validator.Rule{
			Qualifier: validator.FieldRef("pwConfirm"),
			Message:   "Passwords do not match",
		})
		require.NoError(t, err)
		require.NotNil(t, failure)
		assert.Equal(t, "Passwords do not match", failure.Message)
		assert.Equal(t, "pwConfirm", failure.TranslationValues["qual"])
	})

	t.Run("missing field reference is a configuration error", func(t *testing.T) {
		t.Parallel()

		failure, err := validator.ValidateConfirmed("pw", "a", nil, validator.Rule{})
		require.ErrorIs(t, err, validator.ErrInvalidQualifier)
		assert.Nil(t, failure)
	})
}
