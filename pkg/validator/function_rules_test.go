package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

func TestValidateWithFunction(t *testing.T) {
	t.Parallel()

	adult := validator.Predicate(func(value any, _ validator.Params) bool {
		age, ok := value.(int)
		return ok && age >= 18
	})

	t.Run("passes when predicate returns true", func(t *testing.T) {
		t.Parallel()

		failure, err := validator.ValidateWithFunction("age", 21, nil, validator.Rule{Qualifier: adult})
		require.NoError(t, err)
		assert.Nil(t, failure)
	})

	t.Run("fails when predicate returns false", func(t *testing.T) {
		t.Parallel()

		failure, err := validator.ValidateWithFunction("age", 12, nil, validator.Rule{Qualifier: adult})
		require.NoError(t, err)
		require.NotNil(t, failure)
		assert.Equal(t, "is not valid", failure.Message)
		assert.Equal(t, "validation.with_function", failure.TranslationKey)
		assert.Equal(t, map[string]any{"field": "age"}, failure.TranslationValues)
	})

	t.Run("predicate receives all params", func(t *testing.T) {
		t.Parallel()

		params := validator.Params{"start": 1, "end": 5}
		after := validator.Predicate(func(value any, p validator.Params) bool {
			return value.(int) > p["start"].(int)
		})
		failure, err := validator.ValidateWithFunction("end", params["end"], params, validator.Rule{Qualifier: after})
		require.NoError(t, err)
		assert.Nil(t, failure)
	})

	t.Run("returns rule message when set", func(t *testing.T) {
		t.Parallel()

		failure, err := validator.ValidateWithFunction("age", 12, nil, validator.Rule{
			Qualifier: adult,
			Message:   "Something is wrong",
		})
		require.NoError(t, err)
		require.NotNil(t, failure)
		assert.Equal(t, "Something is wrong", failure.Message)
	})

	t.Run("non-function qualifier is a configuration error", func(t *testing.T) {
		t.Parallel()

		failure, err := validator.ValidateWithFunction("age", 21, nil, validator.Rule{Qualifier: validator.Required(true)})
		require.ErrorIs(t, err, validator.ErrNotCallable)
		assert.Contains(t, err.Error(), `"age"`)
		assert.Nil(t, failure)
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("nil predicate is a configuration error", func(t *testing.T) {
		t.Parallel()

		var fn validator.Predicate
		_, err := validator.ValidateWithFunction("age", 21, nil, validator.Rule{Qualifier: fn})
		require.ErrorIs(t, err, validator.ErrNotCallable)

		_, err = validator.ValidateWithFunction("age", 21, nil, validator.Rule{})
		require.ErrorIs(t, err, validator.ErrNotCallable)
	})
}
