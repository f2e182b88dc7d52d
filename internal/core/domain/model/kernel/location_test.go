package kernel_test

import (
	"math"
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   error
	}{
		{name: "valid location", latitude: 43.2389, longitude: 76.8897},
		{name: "valid location at bounds", latitude: kernel.MaxLatitude, longitude: kernel.MinLongitude},
		{name: "latitude too large", latitude: 90.5, longitude: 10, wantErr: errs.ErrValueIsOutOfRange},
		{name: "longitude too small", latitude: 10, longitude: -180.1, wantErr: errs.ErrValueIsOutOfRange},
		{name: "NaN latitude", latitude: math.NaN(), longitude: 10, wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.latitude, tt.longitude)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, loc.Validate(), kernel.ErrLocationIsNotConstructed)
				return
			}

			require.NoError(t, err)
			require.NoError(t, loc.Validate())
			assert.InDelta(t, tt.latitude, loc.Latitude(), 1e-9)
			assert.InDelta(t, tt.longitude, loc.Longitude(), 1e-9)
		})
	}

	t.Run("should report both invalid coordinates", func(t *testing.T) {
		_, err := kernel.NewLocation(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation(1.5, 2.5)
	b, _ := kernel.NewLocation(1.5, 2.5)
	c, _ := kernel.NewLocation(1.5, 2.6)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = a.IsEqual(kernel.Location{})
	require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
}

func TestLocation_DistanceKm(t *testing.T) {
	t.Run("should be zero for the same point", func(t *testing.T) {
		a, _ := kernel.NewLocation(51.5007, -0.1246)

		d, err := a.DistanceKm(a)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("should match the known London to Paris distance", func(t *testing.T) {
		london, _ := kernel.NewLocation(51.5074, -0.1278)
		paris, _ := kernel.NewLocation(48.8566, 2.3522)

		d, err := london.DistanceKm(paris)
		back, _ := paris.DistanceKm(london)

		require.NoError(t, err)
		assert.InDelta(t, 343.5, d, 1.5)
		assert.InDelta(t, d, back, 1e-9)
	})
}
