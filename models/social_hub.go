// File: /models/social_hub.go
package models

import "socialhub-app/geo"

// SocialHub is a bookable venue hosting events.
type SocialHub struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Amenities   StringSlice `json:"amenities"`
	Rating      float64     `json:"rating"`
	Owner       string      `json:"owner"`
	EventCount  int         `json:"event_count"`
	IsFavorite  bool        `json:"is_favorite"`
	ImageURL    string      `json:"image,omitempty"`
}

func (h SocialHub) Location() geo.Point {
	return geo.Point{Latitude: h.Latitude, Longitude: h.Longitude}
}

// SocialHubWithDistance is a venue annotated with its distance from the viewer.
type SocialHubWithDistance struct {
	SocialHub
	DistanceKm float64 `json:"distance_km"`
}
