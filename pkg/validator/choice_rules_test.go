package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/circuitcheck/pkg/validator"
)

func TestInList(t *testing.T) {
	t.Parallel()

	t.Run("accepts allowed values", func(t *testing.T) {
		for _, v := range []int{1, 3} {
			assert.NoError(t, validator.ApplyFirst(validator.InList("phaseCount", v, []int{1, 3})))
		}
	})

	t.Run("rejects other values", func(t *testing.T) {
		err := validator.ApplyFirst(validator.InList("phaseCount", 2, []int{1, 3}))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "must be one of: [1 3]", verrs[0].Message)
		assert.Equal(t, "validation.in_list", verrs[0].TranslationKey)
	})
}

func TestInListCaseInsensitive(t *testing.T) {
	t.Parallel()

	allowed := []string{"A", "AC", "F", "B"}

	t.Run("valid case insensitive matches", func(t *testing.T) {
		for _, value := range []string{"a", "AC", " ac ", "b"} {
			err := validator.ApplyFirst(validator.InListCaseInsensitive("rcdType", value, allowed))
			assert.NoError(t, err, "value should match: %q", value)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, value := range []string{"S", "B+", ""} {
			err := validator.ApplyFirst(validator.InListCaseInsensitive("rcdType", value, allowed))
			assert.Error(t, err, "value should not match: %q", value)

			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.Equal(t, "validation.in_list_case_insensitive", verrs[0].TranslationKey)
		}
	})
}

func TestNotBlank(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.NotBlank("cableType", "NYM-J").Check())
	assert.False(t, validator.NotBlank("cableType", "").Check())
	assert.False(t, validator.NotBlank("cableType", " \t").Check())
	assert.Equal(t, "must not be blank", validator.NotBlank("cableType", "").Error.Message)
}
