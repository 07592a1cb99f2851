// File: /models/location.go
package models

// UpdateLocationRequest is the position the browser shares. AccuracyLevel is
// precise, approximate or city; coarser levels are rounded before storing.
type UpdateLocationRequest struct {
	Latitude      float64 `json:"latitude" binding:"required"`
	Longitude     float64 `json:"longitude" binding:"required"`
	Accuracy      float64 `json:"accuracy"`
	AccuracyLevel string  `json:"accuracy_level"`
}

type NearbyResponse struct {
	Origin   NearbyOrigin            `json:"origin"`
	RadiusKm float64                 `json:"radius_km,omitempty"`
	Count    int                     `json:"count"`
	Venues   []SocialHubWithDistance `json:"venues"`
}

type NearbyOrigin struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Default   bool    `json:"default"`
}
