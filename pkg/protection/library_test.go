package protection_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/circuitcheck/pkg/protection"
)

func defaultLibrary(t *testing.T) *protection.Library {
	t.Helper()
	lib, err := protection.LoadDefault()
	require.NoError(t, err)
	return lib
}

func TestLibrary_Device(t *testing.T) {
	t.Parallel()
	lib := defaultLibrary(t)

	t.Run("alias resolves to family", func(t *testing.T) {
		d, ok := lib.Device("mcb", 16)
		require.True(t, ok)
		assert.Equal(t, "MCB-B", d.Type)
		assert.Equal(t, protection.Breaker, d.Kind)
		assert.Equal(t, 16.0, d.RatedCurrent)
		assert.InDelta(t, 23.2, d.ConventionalTripCurrent, 1e-9)
		assert.True(t, d.FinalCircuit)
		assert.Equal(t, 400*time.Millisecond, d.MaxDisconnectionTime)
	})

	t.Run("distribution circuit", func(t *testing.T) {
		d, ok := lib.Device("gG", 63)
		require.True(t, ok)
		assert.False(t, d.FinalCircuit)
		assert.Equal(t, 5*time.Second, d.MaxDisconnectionTime)
	})

	t.Run("rating not in series", func(t *testing.T) {
		_, ok := lib.Device("MCB-B", 17)
		assert.False(t, ok)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, ok := lib.Device("MCB-Z", 16)
		assert.False(t, ok)
	})
}

func TestLibrary_MaxDisconnectionTime(t *testing.T) {
	t.Parallel()
	lib := defaultLibrary(t)

	d, ok := lib.MaxDisconnectionTime("C", 32)
	assert.True(t, ok)
	assert.Equal(t, 400*time.Millisecond, d)

	d, ok = lib.MaxDisconnectionTime("C", 40)
	assert.True(t, ok)
	assert.Equal(t, 5*time.Second, d)

	_, ok = lib.MaxDisconnectionTime("C", 41)
	assert.False(t, ok)
}

func TestLibrary_TripCurrent(t *testing.T) {
	t.Parallel()
	lib := defaultLibrary(t)

	tests := []struct {
		name   string
		device string
		rated  float64
		within time.Duration
		want   float64
		ok     bool
	}{
		{"mcb b", "MCB", 16, 400 * time.Millisecond, 80, true},
		{"mcb c", "MCB-C", 16, 400 * time.Millisecond, 160, true},
		{"mcb d", "LS-D", 10, 5 * time.Second, 200, true},
		{"fuse fast", "gG", 16, 400 * time.Millisecond, 107, true},
		{"fuse slow", "NEOZED", 16, 5 * time.Second, 65, true},
		{"fuse between rows uses faster row", "gG", 16, time.Second, 107, true},
		{"fuse faster than any row", "gG", 16, 200 * time.Millisecond, 0, false},
		{"zero time", "MCB", 16, 0, 0, false},
		{"unknown rating", "gG", 17, 5 * time.Second, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lib.TripCurrent(tt.device, tt.rated, tt.within)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestLibrary_Ratings(t *testing.T) {
	t.Parallel()
	lib := defaultLibrary(t)

	r, ok := lib.Ratings("MCB-B")
	require.True(t, ok)
	assert.Contains(t, r, 16.0)

	r[0] = -1
	again, _ := lib.Ratings("MCB-B")
	assert.Equal(t, 6.0, again[0])

	_, ok = lib.Ratings("none")
	assert.False(t, ok)
}

func TestNewLibrary_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tables  protection.Tables
		wantErr error
	}{
		{
			name:    "no devices",
			tables:  protection.Tables{},
			wantErr: protection.ErrNoDevices,
		},
		{
			name: "breaker without multiple",
			tables: protection.Tables{Devices: []protection.DeviceSpec{
				{Type: "X", Kind: protection.Breaker, Ratings: []float64{16}},
			}},
			wantErr: protection.ErrInvalidDevice,
		},
		{
			name: "unknown kind",
			tables: protection.Tables{Devices: []protection.DeviceSpec{
				{Type: "X", Kind: "relay", Ratings: []float64{16}},
			}},
			wantErr: protection.ErrInvalidDevice,
		},
		{
			name: "fuse table misaligned",
			tables: protection.Tables{Devices: []protection.DeviceSpec{
				{Type: "F", Kind: protection.Fuse, Ratings: []float64{16, 20}, TripCurrents: []protection.TripPoint{
					{Seconds: 5, Currents: []float64{65}},
				}},
			}},
			wantErr: protection.ErrInvalidTripTable,
		},
		{
			name: "duplicate alias",
			tables: protection.Tables{Devices: []protection.DeviceSpec{
				{Type: "A", Kind: protection.Breaker, Ratings: []float64{16}, TripMultiple: 5},
				{Type: "B", Aliases: []string{"a"}, Kind: protection.Breaker, Ratings: []float64{16}, TripMultiple: 10},
			}},
			wantErr: protection.ErrDuplicateDevice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := protection.NewLibrary(tt.tables)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewLibrary_Defaults(t *testing.T) {
	t.Parallel()

	lib, err := protection.NewLibrary(protection.Tables{Devices: []protection.DeviceSpec{
		{Type: "B", Kind: protection.Breaker, Ratings: []float64{16, 40}, TripMultiple: 5},
	}})
	require.NoError(t, err)

	d, ok := lib.Device("B", 40)
	require.True(t, ok)
	assert.Equal(t, protection.DefaultDistributionDisconnectionTime, d.MaxDisconnectionTime)
	assert.InDelta(t, 58.0, d.ConventionalTripCurrent, 1e-9)
}
