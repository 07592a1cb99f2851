// File: /store/store_test.go
package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"socialhub-app/models"
)

type fakeEvicter struct {
	mu      sync.Mutex
	tokens  map[string]string
	evicted int
	err     error
}

func (f *fakeEvicter) EvictTokens() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evicted++
	delete(f.tokens, "access_token")
	delete(f.tokens, "refresh_token")
	return f.err
}

func startStore(t *testing.T, evicter TokenEvicter) *Store {
	t.Helper()
	s := New(seededState(), evicter)
	go s.Run()
	t.Cleanup(s.Stop)
	return s
}

func TestStoreLoginLogoutScenario(t *testing.T) {
	evicter := &fakeEvicter{tokens: map[string]string{"access_token": "a", "refresh_token": "r"}}
	s := startStore(t, evicter)

	st := s.Dispatch(Login{Customer: models.Customer{ID: "c1", Favorites: models.StringSlice{"v1", "v2"}}})
	if len(st.Favorites) != 2 || st.Favorites[0] != "v1" || st.Favorites[1] != "v2" || !st.Auth.IsLoggedIn {
		t.Fatalf("after login: favorites=%v auth=%+v", st.Favorites, st.Auth)
	}

	s.Dispatch(AddToCart{Event: st.Events[0], NumberOfPeople: 2})
	st = s.Dispatch(Logout{})

	if len(st.Favorites) != 0 || st.Auth.User != nil || len(st.Cart) != 0 {
		t.Errorf("after logout: %+v", st)
	}

	evicter.mu.Lock()
	defer evicter.mu.Unlock()
	if evicter.evicted != 1 || len(evicter.tokens) != 0 {
		t.Errorf("tokens not evicted: %v (calls=%d)", evicter.tokens, evicter.evicted)
	}
}

func TestStoreLogoutSurvivesEvictionError(t *testing.T) {
	s := startStore(t, &fakeEvicter{err: errors.New("disk full")})
	s.Dispatch(Login{Customer: models.Customer{ID: "c1"}})

	if st := s.Dispatch(Logout{}); st.Auth.IsLoggedIn {
		t.Error("logout was not applied")
	}
}

func TestSubscribeDeliversInOrder(t *testing.T) {
	s := startStore(t, nil)

	var mu sync.Mutex
	var seen []ActionType
	done := make(chan struct{})
	s.Subscribe(func(c Change) {
		mu.Lock()
		seen = append(seen, c.Action.Type())
		n := len(seen)
		mu.Unlock()
		if n == 3 {
			close(done)
		}
	})

	s.Dispatch(ToggleCategory{CategoryID: "c1"})
	s.Dispatch(SetLanguage{Language: "en"})
	s.Dispatch(ClearFilters{})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for changes")
	}

	mu.Lock()
	defer mu.Unlock()
	want := []ActionType{ActionToggleCategory, ActionSetLanguage, ActionClearFilters}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("seen %v, want %v", seen, want)
		}
	}
}

func TestListenerMayDispatch(t *testing.T) {
	s := startStore(t, nil)

	cleaned := make(chan State, 1)
	s.Subscribe(func(c Change) {
		switch c.Action.(type) {
		case SetEvents:
			s.Dispatch(CleanupStaleReservations{})
		case CleanupStaleReservations:
			cleaned <- c.Next
		}
	})

	s.Dispatch(SetReservations{Reservations: []models.Reservation{
		{ID: "r1", Event: models.BareEventRef("e1")},
		{ID: "r2", Event: models.BareEventRef("gone")},
	}})
	s.Dispatch(SetEvents{Events: []models.Event{{ID: "e1"}}, Source: SourceAPI})

	select {
	case st := <-cleaned:
		if len(st.Reservations) != 1 || st.Reservations[0].ID != "r1" {
			t.Errorf("reservations = %+v", st.Reservations)
		}
	case <-time.After(time.Second):
		t.Fatal("listener dispatch did not complete")
	}
}

func TestUnsubscribe(t *testing.T) {
	s := startStore(t, nil)

	calls := make(chan struct{}, 10)
	unsubscribe := s.Subscribe(func(Change) { calls <- struct{}{} })

	s.Dispatch(ClearFilters{})
	<-calls
	unsubscribe()

	s.Dispatch(ClearFilters{})
	marker := make(chan struct{})
	var once sync.Once
	s.Subscribe(func(Change) { once.Do(func() { close(marker) }) })
	s.Dispatch(ClearFilters{})
	<-marker

	if len(calls) != 0 {
		t.Errorf("unsubscribed listener called %d more times", len(calls))
	}
}

func TestDispatchAfterStop(t *testing.T) {
	s := New(seededState(), nil)
	go s.Run()
	s.Dispatch(ToggleCategory{CategoryID: "c1"})
	s.Stop()

	st := s.Dispatch(ToggleCategory{CategoryID: "c2"})
	if len(st.Filters.Categories) != 1 {
		t.Errorf("dispatch after stop was applied: %v", st.Filters.Categories)
	}
	s.Stop()
}
