package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/circuitcheck/pkg/validator"
)

func TestFinite(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Finite("voltage", 230).Check())
	assert.True(t, validator.Finite("voltage", 0).Check())
	assert.False(t, validator.Finite("voltage", math.NaN()).Check())
	assert.False(t, validator.Finite("voltage", math.Inf(1)).Check())
	assert.False(t, validator.Finite("voltage", math.Inf(-1)).Check())

	rule := validator.Finite("voltage", math.NaN())
	assert.Equal(t, "must be a finite number", rule.Error.Message)
	assert.Equal(t, "validation.finite", rule.Error.TranslationKey)
}

func TestMinNum(t *testing.T) {
	t.Parallel()

	t.Run("passes when value equals minimum", func(t *testing.T) {
		rule := validator.MinNum("distance", 0.0, 0.0)
		assert.True(t, rule.Check())
		assert.Equal(t, "distance", rule.Error.Field)
		assert.Equal(t, "must be at least 0", rule.Error.Message)
		assert.Equal(t, "validation.min", rule.Error.TranslationKey)
	})

	t.Run("fails when value is below minimum", func(t *testing.T) {
		rule := validator.MinNum("distance", -0.5, 0.0)
		assert.False(t, rule.Check())
	})

	t.Run("handles negative bounds", func(t *testing.T) {
		assert.True(t, validator.MinNum("ambientTemperature", -20.0, -40.0).Check())
		assert.False(t, validator.MinNum("ambientTemperature", -41.0, -40.0).Check())
	})

	t.Run("works with int", func(t *testing.T) {
		assert.True(t, validator.MinNum("phaseCount", 3, 1).Check())
	})
}

func TestMaxNum(t *testing.T) {
	t.Parallel()

	rule := validator.MaxNum("powerFactor", 1.0, 1.0)
	assert.True(t, rule.Check())
	assert.Equal(t, "must be at most 1", rule.Error.Message)
	assert.Equal(t, 1.0, rule.Error.TranslationValues["max"])

	assert.False(t, validator.MaxNum("powerFactor", 1.01, 1.0).Check())
}

func TestRangeNum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		want  bool
	}{
		{"lower bound", 0, true},
		{"upper bound", 1000, true},
		{"inside", 230, true},
		{"below", -1, false},
		{"above", 1000.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.RangeNum("voltage", tt.value, 0, 1000).Check())
		})
	}

	rule := validator.RangeNum("voltage", 1200.0, 0, 1000)
	assert.Equal(t, "must be between 0 and 1000", rule.Error.Message)
	assert.Equal(t, "validation.range", rule.Error.TranslationKey)
}

func TestPositiveNum(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.PositiveNum("cableGauge", 1.5).Check())
	assert.False(t, validator.PositiveNum("cableGauge", 0.0).Check())
	assert.False(t, validator.PositiveNum("cableGauge", -2.5).Check())
	assert.True(t, validator.PositiveNum("count", uint(1)).Check())
	assert.False(t, validator.PositiveNum("count", uint(0)).Check())
}
