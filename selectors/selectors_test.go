// File: /selectors/selectors_test.go
package selectors

import (
	"testing"
	"time"

	"socialhub-app/geo"
	"socialhub-app/models"
	"socialhub-app/store"
)

var now = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func event(id string, mutate func(*models.Event)) models.Event {
	e := models.Event{
		ID:        id,
		Price:     100,
		Capacity:  10,
		Category:  "c1",
		SocialHub: "v1",
		StartTime: now.Add(24 * time.Hour),
		Status:    models.EventStatusUpcoming,
		Rating:    3,
	}
	if mutate != nil {
		mutate(&e)
	}
	return e
}

func ids(events []models.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestActiveEvents(t *testing.T) {
	s := store.InitialState("fa")
	s.Events = []models.Event{
		event("future", nil),
		event("cancelled", func(e *models.Event) { e.Status = models.EventStatusCancelled }),
		event("past", func(e *models.Event) { e.StartTime = now.Add(-time.Hour) }),
		event("now", func(e *models.Event) { e.StartTime = now }),
		event("ongoing", func(e *models.Event) { e.Status = models.EventStatusOngoing }),
	}

	if got := ids(ActiveEvents(s, now)); !equal(got, []string{"future", "ongoing"}) {
		t.Errorf("ActiveEvents = %v", got)
	}
}

func TestFilteredEvents(t *testing.T) {
	s := store.InitialState("fa")
	s.Events = []models.Event{
		event("cheap", func(e *models.Event) { e.Price = 50 }),
		event("pricey", func(e *models.Event) { e.Price = 500 }),
		event("other-cat", func(e *models.Event) { e.Category = "c2"; e.Price = 50 }),
		event("other-hub", func(e *models.Event) { e.SocialHub = "v2"; e.Price = 50 }),
		event("full", func(e *models.Event) { e.Price = 50; e.TotalReservedPeople = 9 }),
		event("low-rated", func(e *models.Event) { e.Price = 50; e.Rating = 1 }),
		event("next-week", func(e *models.Event) { e.Price = 50; e.StartTime = now.AddDate(0, 0, 7) }),
	}

	maxPrice, minRating, minCapacity := 100.0, 2.5, 2
	date := now.Add(24 * time.Hour).Format("2006-01-02")

	s = store.Reduce(s, store.ToggleCategory{CategoryID: "c1"})
	s = store.Reduce(s, store.ToggleSocialHub{SocialHubID: "v1"})
	s = store.Reduce(s, store.SetMaxPrice{MaxPrice: &maxPrice})
	s = store.Reduce(s, store.SetMinRating{MinRating: &minRating})
	s = store.Reduce(s, store.SetMinCapacity{MinCapacity: &minCapacity})
	s = store.Reduce(s, store.SetDate{Date: &date})

	if got := ids(FilteredEvents(s, now)); !equal(got, []string{"cheap"}) {
		t.Errorf("FilteredEvents = %v", got)
	}

	s = store.Reduce(s, store.ClearFilters{})
	if got := FilteredEvents(s, now); len(got) != len(ActiveEvents(s, now)) {
		t.Errorf("cleared filters still narrow the list: %v", ids(got))
	}
}

func TestRecommendedWithoutFavorites(t *testing.T) {
	s := store.InitialState("fa")
	ratings := []float64{2, 5, 4, 5, 1, 3, 4.5, 2.5}
	for i, r := range ratings {
		r := r
		s.Events = append(s.Events, event(string(rune('a'+i)), func(e *models.Event) { e.Rating = r }))
	}
	s.Events = append(s.Events, event("ongoing", func(e *models.Event) {
		e.Status = models.EventStatusOngoing
		e.Rating = 5
	}))

	got := ids(RecommendedEvents(s, now))
	// ties keep source order: b before d
	if want := []string{"b", "d", "g", "c", "f", "h"}; !equal(got, want) {
		t.Errorf("RecommendedEvents = %v, want %v", got, want)
	}
}

func TestRecommendedWithFavorites(t *testing.T) {
	s := store.InitialState("fa")
	for i := 0; i < 8; i++ {
		i := i
		s.Events = append(s.Events, event(string(rune('a'+i)), func(e *models.Event) {
			e.Rating = float64(i)
			if i == 0 {
				e.SocialHub = "v2"
			}
		}))
	}
	s = store.Reduce(s, store.AddFavorite{SocialHubID: "v1"})

	got := RecommendedEvents(s, now)
	if len(got) != 7 {
		t.Fatalf("expected every event at favorite venues, got %v", ids(got))
	}
	if got[0].ID != "h" || got[6].ID != "b" {
		t.Errorf("not sorted by rating: %v", ids(got))
	}
}

func TestUserReservations(t *testing.T) {
	s := store.InitialState("fa")
	s.Reservations = []models.Reservation{
		{ID: "1", Customer: "c1"},
		{ID: "2", Customer: "c2"},
		{ID: "3"},
	}
	if got := UserReservations(s); len(got) != 0 {
		t.Errorf("logged out user sees %d reservations", len(got))
	}

	s = store.Reduce(s, store.Login{Customer: models.Customer{ID: "c1"}})
	got := UserReservations(s)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("UserReservations = %+v", got)
	}
}

func TestCartTotals(t *testing.T) {
	s := store.InitialState("fa")
	s = store.Reduce(s, store.AddToCart{Event: event("a", nil), NumberOfPeople: 3})
	s = store.Reduce(s, store.AddToCart{Event: event("b", func(e *models.Event) { e.Price = 75 }), NumberOfPeople: 2})

	if CartCount(s) != 2 || CartTotal(s) != 450 {
		t.Errorf("count=%d total=%v", CartCount(s), CartTotal(s))
	}
}

func TestNearbyHubsAndDistanceSort(t *testing.T) {
	s := store.InitialState("fa")
	s.SocialHubs = []models.SocialHub{
		{ID: "isfahan", Latitude: 32.6546, Longitude: 51.6680},
		{ID: "tehran", Latitude: 35.7000, Longitude: 51.4000},
		{ID: "karaj", Latitude: 35.8400, Longitude: 50.9391},
	}

	hubs := NearbyHubs(s, geo.Tehran)
	if hubs[0].ID != "tehran" || hubs[2].ID != "isfahan" {
		t.Errorf("NearbyHubs order = %s, %s, %s", hubs[0].ID, hubs[1].ID, hubs[2].ID)
	}

	events := []models.Event{
		event("far", func(e *models.Event) { e.SocialHub = "isfahan" }),
		event("unknown", func(e *models.Event) { e.SocialHub = "nowhere" }),
		event("near", func(e *models.Event) { e.SocialHub = "tehran" }),
	}
	if got := ids(SortEvents(events, SortByDistance, geo.Tehran, s.SocialHubs)); !equal(got, []string{"near", "far", "unknown"}) {
		t.Errorf("distance sort = %v", got)
	}
}

func TestSortEvents(t *testing.T) {
	events := []models.Event{
		event("a", func(e *models.Event) { e.Price = 300; e.StartTime = now.Add(3 * time.Hour); e.TotalReservedPeople = 1 }),
		event("b", func(e *models.Event) { e.Price = 100; e.StartTime = now.Add(1 * time.Hour); e.TotalReservedPeople = 7 }),
		event("c", func(e *models.Event) { e.Price = 200; e.StartTime = now.Add(2 * time.Hour); e.TotalReservedPeople = 4 }),
	}

	tests := []struct {
		by   SortOption
		want []string
	}{
		{SortByDate, []string{"b", "c", "a"}},
		{SortByPriceAsc, []string{"b", "c", "a"}},
		{SortByPriceDesc, []string{"a", "c", "b"}},
		{SortByPopularity, []string{"b", "c", "a"}},
	}
	for _, tt := range tests {
		if got := ids(SortEvents(events, tt.by, geo.Tehran, nil)); !equal(got, tt.want) {
			t.Errorf("SortEvents(%s) = %v, want %v", tt.by, got, tt.want)
		}
	}

	if events[0].ID != "a" {
		t.Error("SortEvents reordered its input")
	}
	if ParseSortOption("PRICE_DESC") != SortByPriceDesc || ParseSortOption("bogus") != SortByDate {
		t.Error("ParseSortOption mismatch")
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	p := Paginate(items, 2, 2)
	if len(p.Data) != 2 || p.Data[0] != 3 || p.TotalPages != 3 || p.Total != 5 {
		t.Errorf("page 2 = %+v", p)
	}
	if p := Paginate(items, 9, 2); len(p.Data) != 0 {
		t.Errorf("page past the end = %+v", p)
	}
	if p := Paginate(items, 0, 0); p.Page != 1 || p.Limit != 20 || len(p.Data) != 5 {
		t.Errorf("defaults = %+v", p)
	}
}
