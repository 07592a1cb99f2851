// File: /selectors/selectors.go
//
// Package selectors derives read-only views from a store snapshot. Every
// function is pure: the same snapshot and clock give the same result.
package selectors

import (
	"sort"
	"time"

	"socialhub-app/geo"
	"socialhub-app/models"
	"socialhub-app/store"
)

const recommendedLimit = 6

// ActiveEvents returns events that are not cancelled and start strictly after now.
func ActiveEvents(s store.State, now time.Time) []models.Event {
	out := make([]models.Event, 0, len(s.Events))
	for _, e := range s.Events {
		if isActive(e, now) {
			out = append(out, e)
		}
	}
	return out
}

// FilteredEvents is ActiveEvents narrowed by the current filters.
func FilteredEvents(s store.State, now time.Time) []models.Event {
	out := make([]models.Event, 0, len(s.Events))
	unfiltered := s.Filters.IsEmpty()
	for _, e := range s.Events {
		if isActive(e, now) && (unfiltered || Matches(e, s.Filters)) {
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether e satisfies every filter that is set.
func Matches(e models.Event, f models.Filters) bool {
	if len(f.Categories) > 0 && !contains(f.Categories, e.Category) {
		return false
	}
	if len(f.SocialHubs) > 0 && !contains(f.SocialHubs, e.SocialHub) {
		return false
	}
	if f.MaxPrice != nil && e.Price > *f.MaxPrice {
		return false
	}
	if f.Date != nil && *f.Date != "" && e.StartTime.Format("2006-01-02") != *f.Date {
		return false
	}
	if f.MinRating != nil && e.Rating < *f.MinRating {
		return false
	}
	if f.MinCapacity != nil && e.FreeCapacity() < *f.MinCapacity {
		return false
	}
	return true
}

// RecommendedEvents ranks upcoming events by rating. Without favorite venues it
// returns the best six; with favorites it returns every event at those venues.
func RecommendedEvents(s store.State, now time.Time) []models.Event {
	var out []models.Event
	for _, e := range s.Events {
		if e.Status != models.EventStatusUpcoming || !e.StartTime.After(now) {
			continue
		}
		if len(s.Favorites) > 0 && !contains(s.Favorites, e.SocialHub) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})

	if len(s.Favorites) == 0 && len(out) > recommendedLimit {
		out = out[:recommendedLimit]
	}
	if out == nil {
		out = []models.Event{}
	}
	return out
}

// UserReservations returns the reservations owned by the logged-in customer,
// including locally created ones that carry no owner yet.
func UserReservations(s store.State) []models.Reservation {
	out := []models.Reservation{}
	if !s.Auth.IsLoggedIn || s.Auth.User == nil {
		return out
	}
	for _, r := range s.Reservations {
		if r.Customer == "" || r.Customer == s.Auth.User.ID {
			out = append(out, r)
		}
	}
	return out
}

// PendingReservations returns every reservation still waiting for confirmation.
func PendingReservations(s store.State) []models.Reservation {
	out := []models.Reservation{}
	for _, r := range s.Reservations {
		if r.Status == models.ReservationStatusPending {
			out = append(out, r)
		}
	}
	return out
}

// CartTotal sums the frozen prices of every cart item.
func CartTotal(s store.State) float64 {
	var total float64
	for _, item := range s.Cart {
		total += item.TotalPrice
	}
	return total
}

func CartCount(s store.State) int {
	return len(s.Cart)
}

func FavoriteHubs(s store.State) []models.SocialHub {
	out := []models.SocialHub{}
	for _, h := range s.SocialHubs {
		if h.IsFavorite {
			out = append(out, h)
		}
	}
	return out
}

// EventsAtHub returns the active events hosted by one venue.
func EventsAtHub(s store.State, hubID string, now time.Time) []models.Event {
	out := []models.Event{}
	for _, e := range s.Events {
		if e.SocialHub == hubID && isActive(e, now) {
			out = append(out, e)
		}
	}
	return out
}

// NearbyHubs annotates every venue with its distance from origin, closest first.
func NearbyHubs(s store.State, origin geo.Point) []models.SocialHubWithDistance {
	out := make([]models.SocialHubWithDistance, 0, len(s.SocialHubs))
	for _, h := range s.SocialHubs {
		out = append(out, models.SocialHubWithDistance{
			SocialHub:  h,
			DistanceKm: geo.Distance(origin, h.Location()),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}

func isActive(e models.Event, now time.Time) bool {
	return e.Status != models.EventStatusCancelled && e.StartTime.After(now)
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
