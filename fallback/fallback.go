// File: /fallback/fallback.go
//
// Package fallback holds the bundled catalog served when the API gateway is
// unreachable.
package fallback

import (
	"embed"
	"encoding/json"
	"fmt"

	"socialhub-app/models"
)

//go:embed data/*.json
var files embed.FS

func load[T any](name string) ([]T, error) {
	data, err := files.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("fallback: %w", err)
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("fallback: failed to decode %s: %w", name, err)
	}
	return out, nil
}

func Events() ([]models.Event, error) {
	return load[models.Event]("events.json")
}

func SocialHubs() ([]models.SocialHub, error) {
	return load[models.SocialHub]("social_hubs.json")
}

func Categories() ([]models.EventCategory, error) {
	return load[models.EventCategory]("categories.json")
}
