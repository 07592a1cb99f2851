// File: /controllers/views.go
package controllers

import (
	"time"

	"socialhub-app/geo"
	"socialhub-app/locale"
	"socialhub-app/models"
	"socialhub-app/selectors"
	"socialhub-app/services"
	"socialhub-app/store"
)

// EventView is an event with its display strings rendered in the session
// language.
type EventView struct {
	models.Event
	FreeCapacity   int    `json:"free_capacity"`
	MinimumReached bool   `json:"minimum_reached"`
	PriceFormatted string `json:"price_formatted"`
	StartFormatted string `json:"start_formatted"`
	StartsIn       string `json:"starts_in"`
	InCart         bool   `json:"in_cart"`
}

func newEventView(e models.Event, state store.State, now time.Time) EventView {
	_, inCart := state.CartItem(e.ID)
	return EventView{
		Event:          e,
		FreeCapacity:   e.FreeCapacity(),
		MinimumReached: e.MeetsMinimum(),
		PriceFormatted: locale.FormatCurrency(e.Price, state.Language),
		StartFormatted: locale.FormatDateTime(e.StartTime, state.Language),
		StartsIn:       locale.FormatCountdown(e.StartTime.Sub(now), state.Language),
		InCart:         inCart,
	}
}

func eventViews(events []models.Event, state store.State, now time.Time) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, newEventView(e, state, now))
	}
	return views
}

type ReservationView struct {
	models.Reservation
	DateFormatted string `json:"date_formatted"`
}

func reservationViews(reservations []models.Reservation, lang string) []ReservationView {
	views := make([]ReservationView, 0, len(reservations))
	for _, r := range reservations {
		views = append(views, ReservationView{
			Reservation:   r,
			DateFormatted: locale.FormatDateTime(r.ReservationDate, lang),
		})
	}
	return views
}

type ResourceCounts struct {
	Events       int `json:"events"`
	SocialHubs   int `json:"social_hubs"`
	Categories   int `json:"categories"`
	Reservations int `json:"reservations"`
}

// StateSummary is the snapshot sent by GET /state and over /ws. Catalog
// contents are summarized as counts; clients fetch them from their own routes.
type StateSummary struct {
	Version             uint64                                  `json:"version"`
	Language            string                                  `json:"language"`
	Direction           string                                  `json:"direction"`
	Auth                models.AuthState                        `json:"auth"`
	Cart                models.CartResponse                     `json:"cart"`
	Favorites           []string                                `json:"favorites"`
	Filters             models.Filters                          `json:"filters"`
	Notifications       []models.NotificationResponse           `json:"notifications"`
	PendingReservations []models.Reservation                    `json:"pending_reservations"`
	Resources           map[store.Resource]store.ResourceStatus `json:"resources"`
	Counts              ResourceCounts                          `json:"counts"`
	UserLocation        *geo.Point                              `json:"user_location,omitempty"`
}

func summarize(state store.State, now time.Time) StateSummary {
	notifications := make([]models.NotificationResponse, 0, len(state.Notifications))
	for _, n := range state.Notifications {
		notifications = append(notifications, n.ToResponse(now))
	}
	pending := selectors.PendingReservations(state)
	if pending == nil {
		pending = []models.Reservation{}
	}

	return StateSummary{
		Version:             state.Version,
		Language:            state.Language,
		Direction:           state.Direction(),
		Auth:                state.Auth,
		Cart:                services.CartSummary(state),
		Favorites:           state.Favorites,
		Filters:             state.Filters,
		Notifications:       notifications,
		PendingReservations: pending,
		Resources:           state.Resources,
		Counts: ResourceCounts{
			Events:       len(state.Events),
			SocialHubs:   len(state.SocialHubs),
			Categories:   len(state.Categories),
			Reservations: len(state.Reservations),
		},
		UserLocation: state.UserLocation,
	}
}
