package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

func TestValidatePresent(t *testing.T) {
	t.Parallel()

	t.Run("fails for empty string with descriptor", func(t *testing.T) {
		t.Parallel()

		failure, err := validator.ValidatePresent("x", "", nil, validator.Rule{})
		require.NoError(t, err)
		require.NotNil(t, failure)
		assert.Equal(t, "x", failure.Field)
		assert.Equal(t, "field is required", failure.Message)
		assert.False(t, failure.Custom)
		assert.Equal(t, "validation.present", failure.TranslationKey)
		assert.Equal(t, map[string]any{"field": "x"}, failure.TranslationValues)
	})

	t.Run("returns rule message when set", func(t *testing.T) {
		t.Parallel()

		failure, err := validator.ValidatePresent("x", nil, nil, validator.Rule{
			Qualifier: validator.Required(true),
			Message:   "Gotta be here",
		})
		require.NoError(t, err)
		require.NotNil(t, failure)
		assert.Equal(t, "Gotta be here", failure.Message)
		assert.True(t, failure.Custom)
	})

	t.Run("falsy values fail", func(t *testing.T) {
		t.Parallel()

		var nilPtr *string
		for _, v := range []any{nil, "", false, 0, 0.0, math.NaN(), nilPtr, []string{}, map[string]any{}} {
			failure, err := validator.ValidatePresent("x", v, nil, validator.Rule{})
			require.NoError(t, err)
			assert.NotNil(t, failure, "value %#v should fail", v)
		}
	})

	t.Run("truthy values pass", func(t *testing.T) {
		t.Parallel()

		s := "v"
		for _, v := range []any{"v", " ", true, 1, -1, 0.5, &s, []string{"a"}, struct{}{}} {
			failure, err := validator.ValidatePresent("x", v, nil, validator.Rule{})
			require.NoError(t, err)
			assert.Nil(t, failure, "value %#v should pass", v)
		}
	})
}

func TestValidateAbsent(t *testing.T) {
	t.Parallel()

	t.Run("fails when value is filled in", func(t *testing.T) {
		t.Parallel()

		failure, err := validator.ValidateAbsent("x", "v", nil, validator.Rule{})
		require.NoError(t, err)
		require.NotNil(t, failure)
		assert.Equal(t, "x", failure.Field)
		assert.Equal(t, "validation.absent", failure.TranslationKey)
		assert.Equal(t, map[string]any{"field": "x"}, failure.TranslationValues)
	})

	t.Run("passes for empty value", func(t *testing.T) {
		t.Parallel()

		failure, err := validator.ValidateAbsent("x", "", nil, validator.Rule{})
		require.NoError(t, err)
		assert.Nil(t, failure)
	})

	t.Run("passes for missing value", func(t *testing.T) {
		t.Parallel()

		params := validator.Params{}
		failure, err := validator.ValidateAbsent("honeypot", params["honeypot"], params, validator.Rule{})
		require.NoError(t, err)
		assert.Nil(t, failure)
	})

	t.Run("returns rule message when set", func(t *testing.T) {
		t.Parallel()

		failure, err := validator.ValidateAbsent("honeypot", "spam", nil, validator.Rule{Message: "leave it blank"})
		require.NoError(t, err)
		require.NotNil(t, failure)
		assert.Equal(t, "leave it blank", failure.Message)
	})
}
