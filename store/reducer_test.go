// File: /store/reducer_test.go
package store

import (
	"reflect"
	"testing"
	"time"

	"socialhub-app/models"
)

type unknownAction struct{}

func (unknownAction) Type() ActionType { return "unknown" }

func seededState() State {
	s := InitialState("fa")
	s.Events = []models.Event{
		{ID: "e1", Title: "Board games", Price: 100, Capacity: 10},
		{ID: "e2", Title: "Book club", Price: 50, Capacity: 8},
	}
	s.SocialHubs = []models.SocialHub{{ID: "v1"}, {ID: "v2"}, {ID: "v3"}}
	return s
}

func TestToggleCategoryAlternates(t *testing.T) {
	s := seededState()
	s = Reduce(s, ToggleCategory{CategoryID: "music"})
	original := append([]string(nil), s.Filters.Categories...)

	for i := 0; i < 5; i++ {
		s = Reduce(s, ToggleCategory{CategoryID: "art"})
		present := contains(s.Filters.Categories, "art")
		if want := i%2 == 0; present != want {
			t.Fatalf("after toggle %d presence = %v, want %v", i+1, present, want)
		}
	}

	s = Reduce(s, ToggleCategory{CategoryID: "art"})
	if !reflect.DeepEqual(s.Filters.Categories, original) {
		t.Errorf("double toggle changed the set: %v, want %v", s.Filters.Categories, original)
	}
}

func TestFavoritesStayConsistent(t *testing.T) {
	s := seededState()
	s = Reduce(s, AddFavorite{SocialHubID: "v2"})
	s = Reduce(s, AddFavorite{SocialHubID: "v1"})
	s = Reduce(s, RemoveFavorite{SocialHubID: "v2"})

	if contains(s.Favorites, "v2") {
		t.Fatalf("favorites still contain v2: %v", s.Favorites)
	}
	for _, h := range s.SocialHubs {
		if h.IsFavorite != contains(s.Favorites, h.ID) {
			t.Errorf("venue %s is_favorite=%v but favorites=%v", h.ID, h.IsFavorite, s.Favorites)
		}
	}

	// venues loaded later pick up the flag too
	s = Reduce(s, SetSocialHubs{SocialHubs: []models.SocialHub{{ID: "v1"}, {ID: "v4"}}, Source: SourceAPI})
	if !s.SocialHubs[0].IsFavorite || s.SocialHubs[1].IsFavorite {
		t.Errorf("set_social_hubs did not mirror favorites: %+v", s.SocialHubs)
	}
}

func TestClearFiltersResetsEverything(t *testing.T) {
	price, rating, date, capacity := 500.0, 4.0, "2024-03-20", 3

	s := seededState()
	s = Reduce(s, ToggleCategory{CategoryID: "c1"})
	s = Reduce(s, ToggleSocialHub{SocialHubID: "v1"})
	s = Reduce(s, SetMaxPrice{MaxPrice: &price})
	s = Reduce(s, SetMinRating{MinRating: &rating})
	s = Reduce(s, SetDate{Date: &date})
	s = Reduce(s, SetMinCapacity{MinCapacity: &capacity})
	s = Reduce(s, ClearFilters{})

	if !s.Filters.IsEmpty() {
		t.Errorf("filters not cleared: %+v", s.Filters)
	}
}

func TestCleanupStaleReservations(t *testing.T) {
	s := seededState()
	gone := models.Event{ID: "e9", Title: "Removed"}
	s.Reservations = []models.Reservation{
		{ID: "r1", Event: models.BareEventRef("e1")},
		{ID: "r2", Event: models.BareEventRef("e9")},
		{ID: "r3", Event: models.EmbeddedEventRef(gone)},
	}

	s = Reduce(s, CleanupStaleReservations{})

	var ids []string
	for _, r := range s.Reservations {
		ids = append(ids, r.ID)
	}
	if !reflect.DeepEqual(ids, []string{"r1", "r3"}) {
		t.Errorf("kept %v, want [r1 r3]", ids)
	}
}

func TestLoginReseedsFavorites(t *testing.T) {
	s := seededState()
	s = Reduce(s, AddFavorite{SocialHubID: "v3"})
	s = Reduce(s, Login{Customer: models.Customer{ID: "c1", Favorites: models.StringSlice{"v1", "v2"}}})

	if !reflect.DeepEqual(s.Favorites, []string{"v1", "v2"}) {
		t.Errorf("favorites = %v, want [v1 v2]", s.Favorites)
	}
	if !s.Auth.IsLoggedIn || s.Auth.User == nil || s.Auth.User.ID != "c1" {
		t.Errorf("auth = %+v", s.Auth)
	}
	if s.SocialHubs[2].IsFavorite {
		t.Error("favorite from the previous session survived login")
	}

	s = Reduce(s, AddToCart{Event: s.Events[0], NumberOfPeople: 1})
	s = Reduce(s, Logout{})
	if len(s.Favorites) != 0 || s.Auth.User != nil || s.Auth.IsLoggedIn || len(s.Cart) != 0 {
		t.Errorf("logout left session data: %+v", s)
	}
}

func TestAddToCartFreezesPrice(t *testing.T) {
	s := seededState()
	s = Reduce(s, AddToCart{Event: s.Events[0], NumberOfPeople: 3, At: time.Now()})

	item, ok := s.CartItem("e1")
	if !ok || item.TotalPrice != 300 {
		t.Fatalf("cart item = %+v, want total 300", item)
	}

	events := append([]models.Event(nil), s.Events...)
	events[0].Price = 999
	s = Reduce(s, SetEvents{Events: events, Source: SourceAPI})

	if item, _ := s.CartItem("e1"); item.TotalPrice != 300 {
		t.Errorf("total price followed the event price: %v", item.TotalPrice)
	}
}

func TestAddToCartReplacesOnlyInProgressItems(t *testing.T) {
	s := seededState()
	s = Reduce(s, AddToCart{Event: s.Events[1], NumberOfPeople: 2})
	s = Reduce(s, AddToCart{Event: s.Events[1], NumberOfPeople: 4})
	if len(s.Cart) != 1 || s.Cart[0].TotalPrice != 200 {
		t.Fatalf("cart = %+v", s.Cart)
	}

	s = Reduce(s, UpdateCartItem{EventID: "e2", Status: models.CartStatusPending, ReservationID: "r1"})
	before := s.Version
	s = Reduce(s, AddToCart{Event: s.Events[1], NumberOfPeople: 1})
	if s.Version != before || s.Cart[0].NumberOfPeople != 4 {
		t.Errorf("checked-out item was replaced: %+v", s.Cart[0])
	}
}

func TestReserveSynthesizesIDs(t *testing.T) {
	now := time.Now()
	s := seededState()
	s = Reduce(s, Reserve{EventID: "e1", NumberOfPeople: 2, At: now})
	s = Reduce(s, Reserve{EventID: "e2", NumberOfPeople: 1, At: now})

	if len(s.Reservations) != 2 || s.Reservations[0].ID != "1" || s.Reservations[1].ID != "2" {
		t.Fatalf("reservations = %+v", s.Reservations)
	}
	if s.Reservations[0].Status != models.ReservationStatusPending || !s.Reservations[0].ReservationDate.Equal(now) {
		t.Errorf("unexpected reservation %+v", s.Reservations[0])
	}
}

func TestExpirePendingReservation(t *testing.T) {
	s := seededState()
	s = Reduce(s, AddReservation{Reservation: models.Reservation{ID: "r1", Event: models.BareEventRef("e1"), Status: models.ReservationStatusPending}})
	s = Reduce(s, AddToCart{Event: s.Events[0], NumberOfPeople: 1})
	s = Reduce(s, UpdateCartItem{EventID: "e1", Status: models.CartStatusPending, ReservationID: "r1"})

	s = Reduce(s, ExpirePendingReservation{ReservationID: "r1"})

	if r, _ := s.ReservationByID("r1"); r.Status != models.ReservationStatusCancelled {
		t.Errorf("status = %s, want cancelled", r.Status)
	}
	if item, _ := s.CartItem("e1"); item.Status != models.CartStatusInProgress || item.ReservationID != "" {
		t.Errorf("cart item not returned to the cart: %+v", item)
	}

	// confirmed reservations never expire
	s = Reduce(s, AddReservation{Reservation: models.Reservation{ID: "r2", Status: models.ReservationStatusConfirmed}})
	before := s.Version
	s = Reduce(s, ExpirePendingReservation{ReservationID: "r2"})
	if s.Version != before {
		t.Error("expiring a confirmed reservation changed state")
	}
}

func TestResourceStatus(t *testing.T) {
	s := seededState()
	s = Reduce(s, SetLoading{Resource: ResourceEvents, Loading: true})
	if !s.Status(ResourceEvents).Loading {
		t.Fatal("events not loading")
	}

	msg := "network down"
	s = Reduce(s, SetError{Resource: ResourceEvents, Err: &msg})
	st := s.Status(ResourceEvents)
	if st.Loading || st.Error == nil || *st.Error != msg {
		t.Fatalf("status = %+v", st)
	}

	s = Reduce(s, SetEvents{Events: nil, Source: SourceFallback})
	st = s.Status(ResourceEvents)
	if st.Error != nil || st.Source != SourceFallback || s.Events == nil {
		t.Errorf("status after fallback = %+v", st)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := seededState()
	s = Reduce(s, AddFavorite{SocialHubID: "v1"})
	s = Reduce(s, AddToCart{Event: s.Events[0], NumberOfPeople: 2})

	before := s
	beforeHubs := append([]models.SocialHub(nil), s.SocialHubs...)
	beforeCart := append([]models.CartItem(nil), s.Cart...)

	_ = Reduce(s, RemoveFavorite{SocialHubID: "v1"})
	_ = Reduce(s, UpdateCartItem{EventID: "e1", Status: models.CartStatusConfirmed})
	_ = Reduce(s, SetLoading{Resource: ResourceEvents, Loading: true})

	if !reflect.DeepEqual(before.SocialHubs, beforeHubs) || !reflect.DeepEqual(before.Cart, beforeCart) {
		t.Error("reducer mutated its input snapshot")
	}
	if before.Status(ResourceEvents).Loading {
		t.Error("reducer mutated the resources map")
	}
}

func TestUnknownActionIsNoop(t *testing.T) {
	s := seededState()
	next := Reduce(s, unknownAction{})
	if next.Version != s.Version || !reflect.DeepEqual(next, s) {
		t.Error("unknown action changed state")
	}
}

func TestSetLanguage(t *testing.T) {
	s := InitialState("en")
	if s.Direction() != "ltr" {
		t.Fatalf("direction = %s", s.Direction())
	}
	s = Reduce(s, SetLanguage{Language: "fa-IR"})
	if s.Language != "fa" || s.Direction() != "rtl" {
		t.Errorf("language = %s, direction = %s", s.Language, s.Direction())
	}
}
