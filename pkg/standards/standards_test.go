package standards_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/circuitcheck/pkg/standards"
)

func TestData_MaxLoopImpedance(t *testing.T) {
	t.Parallel()
	std := standards.Default()

	zs, ok := std.MaxLoopImpedance(230, 80)
	require.True(t, ok)
	assert.InDelta(t, 2.3, zs, 1e-9)

	zs, ok = std.MaxLoopImpedance(230, 160)
	require.True(t, ok)
	assert.InDelta(t, 1.15, zs, 1e-9)

	_, ok = std.MaxLoopImpedance(230, 0)
	assert.False(t, ok)
	_, ok = std.MaxLoopImpedance(0, 80)
	assert.False(t, ok)

	custom := standards.Data{LoopImpedanceFactor: 1}
	zs, _ = custom.MaxLoopImpedance(230, 80)
	assert.InDelta(t, 2.875, zs, 1e-9)
}

func TestData_PhaseToEarthVoltage(t *testing.T) {
	t.Parallel()
	std := standards.Default()

	assert.Equal(t, 230.0, std.PhaseToEarthVoltage(230, 1))
	assert.Equal(t, 230.0, std.PhaseToEarthVoltage(230, 0))
	assert.Equal(t, 230.0, std.PhaseToEarthVoltage(400, 3))
	assert.Equal(t, 230.0, std.PhaseToEarthVoltage(398, 3))
	assert.Equal(t, 400.0, std.PhaseToEarthVoltage(690, 3))
	assert.InDelta(t, 300/1.7320508075688772, std.PhaseToEarthVoltage(300, 3), 1e-9)
}

func TestData_RequiredDisconnectionTime(t *testing.T) {
	t.Parallel()
	std := standards.Default()

	tests := []struct {
		name  string
		u0    float64
		final bool
		want  time.Duration
		ok    bool
	}{
		{"extra-low voltage", 24, true, 0, false},
		{"120 V final", 120, true, 800 * time.Millisecond, true},
		{"230 V final", 230, true, 400 * time.Millisecond, true},
		{"400 V final", 400, true, 200 * time.Millisecond, true},
		{"above 400 V final", 690, true, 100 * time.Millisecond, true},
		{"distribution", 230, false, 5 * time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := std.RequiredDisconnectionTime(tt.u0, tt.final)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestData_MinInsulationResistance(t *testing.T) {
	t.Parallel()
	std := standards.Default()

	req, ok := std.MinInsulationResistance(24)
	require.True(t, ok)
	assert.Equal(t, 0.5, req.MinResistance)
	assert.Equal(t, 250.0, req.TestVoltage)

	req, ok = std.MinInsulationResistance(230)
	require.True(t, ok)
	assert.Equal(t, 1.0, req.MinResistance)
	assert.Equal(t, 500.0, req.TestVoltage)

	req, ok = std.MinInsulationResistance(690)
	require.True(t, ok)
	assert.Equal(t, 1000.0, req.TestVoltage)

	_, ok = std.MinInsulationResistance(0)
	assert.False(t, ok)
	_, ok = std.MinInsulationResistance(1500)
	assert.False(t, ok)
}

func TestData_RCDLimits(t *testing.T) {
	t.Parallel()
	std := standards.Default()

	lim, ok := std.RCDLimits(standards.RCDGeneral)
	require.True(t, ok)
	assert.Equal(t, 300*time.Millisecond, lim.MaxTripTime)
	assert.Zero(t, lim.MinTripTime)
	assert.Equal(t, 0.5, lim.MinTripFraction)

	lim, ok = std.RCDLimits(standards.RCDSelective)
	require.True(t, ok)
	assert.Equal(t, 130*time.Millisecond, lim.MinTripTime)
	assert.Equal(t, 500*time.Millisecond, lim.MaxTripTime)

	_, ok = std.RCDLimits("other")
	assert.False(t, ok)
}

func TestParseRCDKind(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]standards.RCDKind{
		"":          standards.RCDGeneral,
		"General":   standards.RCDGeneral,
		"A":         standards.RCDGeneral,
		" S ":       standards.RCDSelective,
		"selective": standards.RCDSelective,
	} {
		got, ok := standards.ParseRCDKind(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := standards.ParseRCDKind("hybrid")
	assert.False(t, ok)
}

func TestData_MaxVoltageDrop(t *testing.T) {
	t.Parallel()
	std := standards.Default()

	assert.Equal(t, 3.0, std.MaxVoltageDrop("Lighting"))
	assert.Equal(t, 5.0, std.MaxVoltageDrop(standards.LoadMotor))
	assert.Equal(t, 5.0, std.MaxVoltageDrop(""))
}
