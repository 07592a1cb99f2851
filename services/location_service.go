// File: /services/location_service.go
package services

import (
	"errors"
	"math"

	"socialhub-app/geo"
	"socialhub-app/models"
	"socialhub-app/selectors"
	"socialhub-app/store"
)

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidAccuracy    = errors.New("invalid accuracy level")
)

type LocationService struct {
	defaultLocation geo.Point
}

func NewLocationService(defaultLocation geo.Point) *LocationService {
	return &LocationService{defaultLocation: defaultLocation}
}

// UpdateLocation stores the viewer's position in the session, coarsened to
// the requested accuracy level.
func (ls *LocationService) UpdateLocation(s *Session, req models.UpdateLocationRequest) (geo.Point, error) {
	if !geo.IsValidLatitude(req.Latitude) || !geo.IsValidLongitude(req.Longitude) {
		return geo.Point{}, ErrInvalidCoordinates
	}

	lat, lng, err := ls.applyAccuracyLevel(req.Latitude, req.Longitude, req.AccuracyLevel)
	if err != nil {
		return geo.Point{}, err
	}

	p := geo.Point{Latitude: lat, Longitude: lng}
	s.Dispatch(store.SetUserLocation{Location: &p})
	return p, nil
}

func (ls *LocationService) ClearLocation(s *Session) {
	s.Dispatch(store.SetUserLocation{Location: nil})
}

// Origin is the viewer's position, or the configured default city.
func (ls *LocationService) Origin(state store.State) (geo.Point, bool) {
	shared := state.UserLocation != nil && state.UserLocation.Valid()
	return geo.OrDefault(state.UserLocation, ls.defaultLocation), !shared
}

// Nearby lists venues by distance from the viewer. A positive radiusKm drops
// venues farther away.
func (ls *LocationService) Nearby(state store.State, radiusKm float64) models.NearbyResponse {
	origin, isDefault := ls.Origin(state)

	venues := selectors.NearbyHubs(state, origin)
	if radiusKm > 0 {
		kept := make([]models.SocialHubWithDistance, 0, len(venues))
		for _, v := range venues {
			if v.DistanceKm <= radiusKm {
				kept = append(kept, v)
			}
		}
		venues = kept
	}

	return models.NearbyResponse{
		Origin:   models.NearbyOrigin{Latitude: origin.Latitude, Longitude: origin.Longitude, Default: isDefault},
		RadiusKm: radiusKm,
		Count:    len(venues),
		Venues:   venues,
	}
}

// applyAccuracyLevel adjusts coordinates based on privacy level
func (ls *LocationService) applyAccuracyLevel(lat, lng float64, level string) (float64, float64, error) {
	switch level {
	case "", "precise":
		return lat, lng, nil
	case "approximate":
		// ~100m
		return roundToDecimal(lat, 3), roundToDecimal(lng, 3), nil
	case "city":
		// ~10km
		return roundToDecimal(lat, 1), roundToDecimal(lng, 1), nil
	default:
		return 0, 0, ErrInvalidAccuracy
	}
}

// roundToDecimal rounds a float to specified decimal places
func roundToDecimal(val float64, precision int) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}
