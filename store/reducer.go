// File: /store/reducer.go
package store

import (
	"strconv"

	"socialhub-app/locale"
	"socialhub-app/models"
)

// Reduce applies a to s and returns the next snapshot. It never mutates s and
// never fails; an unknown action, or one that changes nothing, returns s as is.
func Reduce(s State, a Action) State {
	next, changed := reduce(s, a)
	if !changed {
		return s
	}
	next.Version = s.Version + 1
	return next
}

func reduce(s State, a Action) (State, bool) {
	switch a := a.(type) {
	// Catalog
	case SetEvents:
		s.Events = cloneSlice(a.Events)
		s.Resources = withStatus(s.Resources, ResourceEvents, ResourceStatus{Source: a.Source})
		return s, true

	case SetSocialHubs:
		s.SocialHubs = markFavorites(a.SocialHubs, s.Favorites)
		s.Resources = withStatus(s.Resources, ResourceSocialHubs, ResourceStatus{Source: a.Source})
		return s, true

	case SetCategories:
		s.Categories = cloneSlice(a.Categories)
		s.Resources = withStatus(s.Resources, ResourceCategories, ResourceStatus{Source: a.Source})
		return s, true

	case SetReservations:
		s.Reservations = cloneSlice(a.Reservations)
		s.Resources = withStatus(s.Resources, ResourceReservations, ResourceStatus{Source: SourceAPI})
		return s, true

	case SetLoading:
		status := s.Resources[a.Resource]
		status.Loading = a.Loading
		if a.Loading {
			status.Error = nil
		}
		s.Resources = withStatus(s.Resources, a.Resource, status)
		return s, true

	case SetError:
		status := s.Resources[a.Resource]
		status.Loading = false
		status.Error = a.Err
		s.Resources = withStatus(s.Resources, a.Resource, status)
		return s, true

	// Filters
	case ToggleCategory:
		if a.CategoryID == "" {
			return s, false
		}
		s.Filters.Categories = toggle(s.Filters.Categories, a.CategoryID)
		return s, true

	case ToggleSocialHub:
		if a.SocialHubID == "" {
			return s, false
		}
		s.Filters.SocialHubs = toggle(s.Filters.SocialHubs, a.SocialHubID)
		return s, true

	case SetMaxPrice:
		s.Filters.MaxPrice = a.MaxPrice
		return s, true

	case SetMinRating:
		s.Filters.MinRating = a.MinRating
		return s, true

	case SetDate:
		s.Filters.Date = a.Date
		return s, true

	case SetMinCapacity:
		s.Filters.MinCapacity = a.MinCapacity
		return s, true

	case ClearFilters:
		s.Filters = models.Filters{Categories: []string{}, SocialHubs: []string{}}
		return s, true

	// Session
	case Login:
		customer := a.Customer
		customer.Favorites = cloneSlice(a.Customer.Favorites)
		s.Auth = models.AuthState{User: &customer, IsLoggedIn: true}
		s.Favorites = cloneSlice([]string(customer.Favorites))
		s.SocialHubs = markFavorites(s.SocialHubs, s.Favorites)
		return s, true

	case Logout:
		s.Auth = models.AuthState{}
		s.Favorites = []string{}
		s.Cart = []models.CartItem{}
		s.SocialHubs = markFavorites(s.SocialHubs, s.Favorites)
		return s, true

	case AddFavorite:
		if a.SocialHubID == "" || contains(s.Favorites, a.SocialHubID) {
			return s, false
		}
		favorites := make([]string, 0, len(s.Favorites)+1)
		s.Favorites = append(append(favorites, s.Favorites...), a.SocialHubID)
		s.SocialHubs = markFavorites(s.SocialHubs, s.Favorites)
		return s, true

	case RemoveFavorite:
		if !contains(s.Favorites, a.SocialHubID) {
			return s, false
		}
		s.Favorites = without(s.Favorites, a.SocialHubID)
		s.SocialHubs = markFavorites(s.SocialHubs, s.Favorites)
		return s, true

	case SetFavorites:
		s.Favorites = dedupe(a.SocialHubIDs)
		s.SocialHubs = markFavorites(s.SocialHubs, s.Favorites)
		return s, true

	// Reservations
	case Reserve:
		if a.EventID == "" || a.NumberOfPeople <= 0 {
			return s, false
		}
		r := models.Reservation{
			ID:              strconv.Itoa(len(s.Reservations) + 1),
			Event:           models.BareEventRef(a.EventID),
			NumberOfPeople:  a.NumberOfPeople,
			Status:          models.ReservationStatusPending,
			ReservationDate: a.At,
		}
		if s.Auth.User != nil {
			r.Customer = s.Auth.User.ID
		}
		s.Reservations = appendClone(s.Reservations, r)
		return s, true

	case AddReservation:
		if a.Reservation.ID == "" {
			return s, false
		}
		s.Reservations = upsertReservation(s.Reservations, a.Reservation)
		return s, true

	case UpdateReservationStatus:
		i := reservationIndex(s.Reservations, a.ReservationID)
		if i < 0 || s.Reservations[i].Status == a.Status {
			return s, false
		}
		s.Reservations = cloneSlice(s.Reservations)
		s.Reservations[i].Status = a.Status
		return s, true

	case ExpirePendingReservation:
		i := reservationIndex(s.Reservations, a.ReservationID)
		if i < 0 || s.Reservations[i].Status != models.ReservationStatusPending {
			return s, false
		}
		s.Reservations = cloneSlice(s.Reservations)
		s.Reservations[i].Status = models.ReservationStatusCancelled

		// The cart item that produced the reservation goes back to the cart.
		if j := cartIndexByReservation(s.Cart, a.ReservationID); j >= 0 {
			s.Cart = cloneSlice(s.Cart)
			s.Cart[j].Status = models.CartStatusInProgress
			s.Cart[j].ReservationID = ""
		}
		return s, true

	case CleanupStaleReservations:
		kept := make([]models.Reservation, 0, len(s.Reservations))
		for _, r := range s.Reservations {
			if r.Event.IsBare() {
				if _, ok := s.EventByID(r.Event.ID); !ok {
					continue
				}
			}
			kept = append(kept, r)
		}
		if len(kept) == len(s.Reservations) {
			return s, false
		}
		s.Reservations = kept
		return s, true

	// Cart
	case AddToCart:
		if a.Event.ID == "" || a.NumberOfPeople <= 0 {
			return s, false
		}
		event := a.Event
		item := models.CartItem{
			Event:          &event,
			NumberOfPeople: a.NumberOfPeople,
			TotalPrice:     a.Event.Price * float64(a.NumberOfPeople),
			Status:         models.CartStatusInProgress,
			AddedAt:        a.At,
		}
		j := cartIndex(s.Cart, a.Event.ID)
		switch {
		case j < 0:
			s.Cart = appendClone(s.Cart, item)
		case s.Cart[j].Status == models.CartStatusInProgress:
			s.Cart = cloneSlice(s.Cart)
			s.Cart[j] = item
		default:
			// already checked out
			return s, false
		}
		return s, true

	case RemoveFromCart:
		j := cartIndex(s.Cart, a.EventID)
		if j < 0 {
			return s, false
		}
		cart := make([]models.CartItem, 0, len(s.Cart)-1)
		s.Cart = append(append(cart, s.Cart[:j]...), s.Cart[j+1:]...)
		return s, true

	case UpdateCartItem:
		j := cartIndex(s.Cart, a.EventID)
		if j < 0 {
			return s, false
		}
		s.Cart = cloneSlice(s.Cart)
		if a.Status != "" {
			s.Cart[j].Status = a.Status
		}
		if a.ReservationID != "" {
			s.Cart[j].ReservationID = a.ReservationID
		}
		return s, true

	case ClearCart:
		if len(s.Cart) == 0 {
			return s, false
		}
		s.Cart = []models.CartItem{}
		return s, true

	case RestoreCart:
		s.Cart = cloneSlice(a.Items)
		return s, true

	// UI
	case AddNotification:
		s.Notifications = appendClone(s.Notifications, a.Notification)
		return s, true

	case RemoveNotification:
		kept := make([]models.Notification, 0, len(s.Notifications))
		for _, n := range s.Notifications {
			if n.ID != a.NotificationID {
				kept = append(kept, n)
			}
		}
		if len(kept) == len(s.Notifications) {
			return s, false
		}
		s.Notifications = kept
		return s, true

	case SetLanguage:
		lang := locale.Normalize(a.Language)
		if lang == s.Language {
			return s, false
		}
		s.Language = lang
		return s, true

	case SetUserLocation:
		if a.Location != nil {
			loc := *a.Location
			s.UserLocation = &loc
		} else {
			s.UserLocation = nil
		}
		return s, true
	}

	return s, false
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func appendClone[T any](in []T, v T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return append(out, v)
}

func withStatus(m map[Resource]ResourceStatus, r Resource, status ResourceStatus) map[Resource]ResourceStatus {
	out := make(map[Resource]ResourceStatus, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[r] = status
	return out
}

// toggle returns the symmetric difference of list and {id}.
func toggle(list []string, id string) []string {
	if contains(list, id) {
		return without(list, id)
	}
	return appendClone(list, id)
}

func without(list []string, id string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func dedupe(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != "" && !contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// markFavorites copies hubs with IsFavorite mirrored from favorites.
func markFavorites(hubs []models.SocialHub, favorites []string) []models.SocialHub {
	out := make([]models.SocialHub, len(hubs))
	for i, h := range hubs {
		h.IsFavorite = contains(favorites, h.ID)
		out[i] = h
	}
	return out
}

func reservationIndex(list []models.Reservation, id string) int {
	for i, r := range list {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func upsertReservation(list []models.Reservation, r models.Reservation) []models.Reservation {
	if i := reservationIndex(list, r.ID); i >= 0 {
		out := cloneSlice(list)
		out[i] = r
		return out
	}
	return appendClone(list, r)
}

func cartIndex(cart []models.CartItem, eventID string) int {
	for i, item := range cart {
		if item.Event != nil && item.Event.ID == eventID {
			return i
		}
	}
	return -1
}

func cartIndexByReservation(cart []models.CartItem, reservationID string) int {
	if reservationID == "" {
		return -1
	}
	for i, item := range cart {
		if item.ReservationID == reservationID {
			return i
		}
	}
	return -1
}
