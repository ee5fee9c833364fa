package domain

// Coordinate is a point on the sphere in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the coordinate lies within [-90, 90] x [-180, 180].
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// PlaceElement is the descriptive record returned by the geocoding service.
// It is passed through untouched.
type PlaceElement map[string]interface{}

// CachedPlace is a forward geocoding result as stored in the cache
type CachedPlace struct {
	Coordinate Coordinate   `json:"coordinate"`
	Element    PlaceElement `json:"element"`
}
