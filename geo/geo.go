// File: /geo/geo.go
package geo

import "math"

const earthRadius = 6371 // km

// Tehran is used whenever the browser did not share a location.
var Tehran = Point{Latitude: 35.6892, Longitude: 51.3890}

type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

func (p Point) Valid() bool {
	return IsValidLatitude(p.Latitude) && IsValidLongitude(p.Longitude)
}

// Distance returns the great-circle distance in km, rounded to one decimal place.
func Distance(a, b Point) float64 {
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Latitude*math.Pi/180)*math.Cos(b.Latitude*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadius*c*10) / 10
}

// OrDefault returns p when it is set and valid, otherwise fallback.
func OrDefault(p *Point, fallback Point) Point {
	if p == nil || !p.Valid() {
		return fallback
	}
	return *p
}

func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}
