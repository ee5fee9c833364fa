package utils

import (
	"math"

	"github.com/midpoint-service/internal/domain"
	"github.com/midpoint-service/internal/pkg/errors"
)

const earthRadiusKm = 6371.0

// MaxDistanceKm is the great-circle distance between antipodal points.
const MaxDistanceKm = math.Pi * earthRadiusKm

// HaversineDistanceKm вычисляет расстояние между двумя точками в километрах
func HaversineDistanceKm(a, b domain.Coordinate) float64 {
	lat1Rad := toRadians(a.Lat)
	lat2Rad := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push h a hair past 1 for antipodal points
	h = math.Min(1, math.Max(0, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// SphericalMean averages the points as unit vectors and projects the mean back
// to latitude/longitude. Two points give the geographic midpoint, more give the
// centroid.
//
// The mean vector is not renormalized. The result is accurate for points that
// are reasonably close together; for near-antipodal or globally dispersed
// points it degrades, and for exactly antipodal pairs the mean vector is zero
// and the result is (0, 0).
func SphericalMean(points []domain.Coordinate) (domain.Coordinate, error) {
	if len(points) == 0 {
		return domain.Coordinate{}, errors.ErrEmptyInput
	}

	var x, y, z float64
	for _, p := range points {
		lat := toRadians(p.Lat)
		lon := toRadians(p.Lon)
		x += math.Cos(lat) * math.Cos(lon)
		y += math.Cos(lat) * math.Sin(lon)
		z += math.Sin(lat)
	}

	n := float64(len(points))
	x /= n
	y /= n
	z /= n

	return domain.Coordinate{
		Lat: toDegrees(math.Atan2(z, math.Hypot(x, y))),
		Lon: toDegrees(math.Atan2(y, x)),
	}, nil
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return domain.Coordinate{Lat: lat, Lon: lon}.Valid()
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func toDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
