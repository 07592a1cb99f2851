// File: /store/state.go
package store

import (
	"socialhub-app/geo"
	"socialhub-app/locale"
	"socialhub-app/models"
)

type Resource string

const (
	ResourceEvents       Resource = "events"
	ResourceSocialHubs   Resource = "social_hubs"
	ResourceCategories   Resource = "categories"
	ResourceReservations Resource = "reservations"
)

// DataSource records where a resource's current contents came from.
type DataSource string

const (
	SourceNone     DataSource = ""
	SourceAPI      DataSource = "api"
	SourceFallback DataSource = "fallback"
)

type ResourceStatus struct {
	Loading bool       `json:"loading"`
	Error   *string    `json:"error"`
	Source  DataSource `json:"source,omitempty"`
}

// State is an immutable snapshot. The reducer never mutates a slice or map it
// received; holders of a snapshot must not mutate it either.
type State struct {
	Events        []models.Event              `json:"events"`
	SocialHubs    []models.SocialHub          `json:"socialHubs"`
	Categories    []models.EventCategory      `json:"categories"`
	Reservations  []models.Reservation        `json:"reservations"`
	Auth          models.AuthState            `json:"auth"`
	Favorites     []string                    `json:"favorites"`
	Cart          []models.CartItem           `json:"cart"`
	Notifications []models.Notification       `json:"notifications"`
	Filters       models.Filters              `json:"filters"`
	Resources     map[Resource]ResourceStatus `json:"resources"`
	Language      string                      `json:"language"`
	UserLocation  *geo.Point                  `json:"userLocation,omitempty"`

	// Version increases on every applied action.
	Version uint64 `json:"version"`
}

func InitialState(language string) State {
	return State{
		Events:        []models.Event{},
		SocialHubs:    []models.SocialHub{},
		Categories:    []models.EventCategory{},
		Reservations:  []models.Reservation{},
		Favorites:     []string{},
		Cart:          []models.CartItem{},
		Notifications: []models.Notification{},
		Filters:       models.Filters{Categories: []string{}, SocialHubs: []string{}},
		Resources: map[Resource]ResourceStatus{
			ResourceEvents:       {},
			ResourceSocialHubs:   {},
			ResourceCategories:   {},
			ResourceReservations: {},
		},
		Language: locale.Normalize(language),
	}
}

func (s State) Status(r Resource) ResourceStatus {
	return s.Resources[r]
}

func (s State) Direction() string {
	return locale.Direction(s.Language)
}

func (s State) IsFavorite(hubID string) bool {
	return contains(s.Favorites, hubID)
}

func (s State) EventByID(id string) (models.Event, bool) {
	for _, e := range s.Events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

func (s State) SocialHubByID(id string) (models.SocialHub, bool) {
	for _, h := range s.SocialHubs {
		if h.ID == id {
			return h, true
		}
	}
	return models.SocialHub{}, false
}

func (s State) ReservationByID(id string) (models.Reservation, bool) {
	for _, r := range s.Reservations {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reservation{}, false
}

func (s State) CartItem(eventID string) (models.CartItem, bool) {
	for _, item := range s.Cart {
		if item.Event != nil && item.Event.ID == eventID {
			return item, true
		}
	}
	return models.CartItem{}, false
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
