package utils

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midpoint-service/internal/domain"
	"github.com/midpoint-service/internal/pkg/errors"
)

var samplePoints = []domain.Coordinate{
	{Lat: 41.9028, Lon: 12.4964},   // Rome
	{Lat: 45.4642, Lon: 9.1900},    // Milan
	{Lat: -33.8688, Lon: 151.2093}, // Sydney
	{Lat: 0, Lon: 0},
	{Lat: 90, Lon: 0},
	{Lat: -90, Lon: 180},
	{Lat: 10, Lon: -179.9},
}

func TestHaversineDistanceKm_Zero(t *testing.T) {
	for _, p := range samplePoints {
		assert.Equal(t, 0.0, HaversineDistanceKm(p, p))
	}
}

func TestHaversineDistanceKm_Symmetric(t *testing.T) {
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			assert.InDelta(t, HaversineDistanceKm(a, b), HaversineDistanceKm(b, a), 1e-9)
		}
	}
}

func TestHaversineDistanceKm_Bounded(t *testing.T) {
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			d := HaversineDistanceKm(a, b)
			assert.False(t, math.IsNaN(d))
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, MaxDistanceKm+1e-9)
		}
	}

	antipodal := HaversineDistanceKm(domain.Coordinate{Lat: 0, Lon: 0}, domain.Coordinate{Lat: 0, Lon: 180})
	assert.InDelta(t, 20015.1, antipodal, 0.1)
}

func TestHaversineDistanceKm_Known(t *testing.T) {
	// Rome - Milan is roughly 477 km
	d := HaversineDistanceKm(samplePoints[0], samplePoints[1])
	assert.InDelta(t, 477, d, 5)
}

func TestSphericalMean_Identical(t *testing.T) {
	for _, p := range samplePoints[:4] {
		m, err := SphericalMean([]domain.Coordinate{p, p})
		require.NoError(t, err)
		assert.InDelta(t, p.Lat, m.Lat, 1e-9)
		assert.InDelta(t, p.Lon, m.Lon, 1e-9)
	}
}

func TestSphericalMean_Equatorial(t *testing.T) {
	m, err := SphericalMean([]domain.Coordinate{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 90}})
	require.NoError(t, err)
	assert.InDelta(t, 0, m.Lat, 0.01)
	assert.InDelta(t, 45, m.Lon, 0.01)
}

func TestSphericalMean_Centroid(t *testing.T) {
	points := []domain.Coordinate{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 90}, {Lat: 90, Lon: 0}}
	m, err := SphericalMean(points)
	require.NoError(t, err)

	// the three unit axes average to (1,1,1)/3: lat = atan(1/sqrt(2))
	assert.InDelta(t, 35.2644, m.Lat, 1e-3)
	assert.InDelta(t, 45, m.Lon, 1e-9)
}

func TestSphericalMean_AntipodalDegenerates(t *testing.T) {
	// known accuracy boundary: the mean vector vanishes
	m, err := SphericalMean([]domain.Coordinate{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 180}})
	require.NoError(t, err)
	assert.InDelta(t, 0, m.Lat, 1e-9)
	assert.False(t, math.IsNaN(m.Lon))
}

func TestSphericalMean_Empty(t *testing.T) {
	_, err := SphericalMean(nil)
	assert.True(t, stderrors.Is(err, errors.ErrEmptyInput))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(41.39, 2.17))
	assert.False(t, ValidateCoordinates(-91, 0))
	assert.False(t, ValidateCoordinates(0, -180.5))
}
