// File: /apiclient/client_test.go
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"socialhub-app/models"
)

type staticToken string

func (s staticToken) AccessToken() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/api", srv.Client(), staticToken(token))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestListEventsFollowsPagination(t *testing.T) {
	var srvURL string
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/events/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "":
			next := srvURL + "/api/events/?page=2"
			json.NewEncoder(w).Encode(map[string]interface{}{
				"count": 3, "next": next, "previous": nil,
				"results": []models.Event{{ID: "1"}, {ID: "2"}},
			})
		case "2":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"count": 3, "next": nil, "previous": srvURL + "/api/events/",
				"results": []models.Event{{ID: "3"}},
			})
		}
	}
	srv := httptest.NewServer(http.HandlerFunc(handler))
	defer srv.Close()
	srvURL = srv.URL

	c, _ := NewClient(srv.URL+"/api/", srv.Client(), nil)
	events, err := c.ListEvents(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 || events[2].ID != "3" {
		t.Errorf("events = %+v", events)
	}
}

func TestListAcceptsBareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":"c1","name":"Music"},{"id":"c2","name":"Art"}]`)
	}, "")

	cats, err := c.ListCategories(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 2 || cats[1].Name != "Art" {
		t.Errorf("categories = %+v", cats)
	}
}

func TestBearerToken(t *testing.T) {
	auth := make(chan string, 1)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth <- r.Header.Get("Authorization")
		fmt.Fprint(w, `{"id":"u1","phone_number":"09121234567","favorites":["v1"]}`)
	}, "tok-123")

	me, err := c.Me(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := <-auth; got != "Bearer tok-123" {
		t.Errorf("Authorization = %q", got)
	}
	if me.ID != "u1" || len(me.Favorites) != 1 {
		t.Errorf("customer = %+v", me)
	}
}

func TestErrorsAreClassified(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusUnauthorized)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
		fmt.Fprint(w, `{"detail":"nope"}`)
	}, "expired")

	_, err := c.Me(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("401 error = %v, want ErrUnauthorized", err)
	}

	status.Store(http.StatusNotFound)
	_, err = c.GetEvent(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnauthorized) {
		t.Errorf("404 error = %v", err)
	}

	var apiErr *APIError
	status.Store(http.StatusInternalServerError)
	if _, err := c.ListEvents(context.Background()); !errors.As(err, &apiErr) || apiErr.StatusCode != 500 {
		t.Errorf("500 error = %v", err)
	}
}

func TestReservationFlow(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/reservations/":
			var req models.CreateReservationRequest
			json.NewDecoder(r.Body).Decode(&req)
			fmt.Fprintf(w, `{"id":"r9","event":%q,"number_of_people":%d,"status":"pending","reservation_date":"2024-03-20T10:00:00Z"}`, req.Event, req.NumberOfPeople)
		case r.Method == http.MethodPost && r.URL.Path == "/api/reservations/r9/confirm/":
			fmt.Fprint(w, `{"id":"r9","event":{"id":"e1","title":"Jazz"},"number_of_people":2,"status":"confirmed","reservation_date":"2024-03-20T10:00:00Z"}`)
		default:
			http.NotFound(w, r)
		}
	}, "tok")

	r, err := c.CreateReservation(context.Background(), "e1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if r.ID != "r9" || !r.Event.IsBare() || r.Event.EventID() != "e1" || r.NumberOfPeople != 2 {
		t.Errorf("created = %+v", r)
	}

	r, err = c.ConfirmReservation(context.Background(), "r9")
	if err != nil {
		t.Fatal(err)
	}
	if r.Status != models.ReservationStatusConfirmed || r.Event.IsBare() || r.Event.Event.Title != "Jazz" {
		t.Errorf("confirmed = %+v", r)
	}
}

func TestFavoriteEndpoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/customers/favorites/v1/check/":
			fmt.Fprint(w, `{"is_favorite":true}`)
		case "/api/customers/favorites/count/":
			fmt.Fprint(w, `{"count":4}`)
		case "/api/customers/favorites/v1/":
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}, "tok")

	ctx := context.Background()
	if fav, err := c.CheckFavorite(ctx, "v1"); err != nil || !fav {
		t.Errorf("CheckFavorite = %v, %v", fav, err)
	}
	if n, err := c.CountFavorites(ctx); err != nil || n != 4 {
		t.Errorf("CountFavorites = %d, %v", n, err)
	}
	if err := c.RemoveFavorite(ctx, "v1"); err != nil {
		t.Errorf("RemoveFavorite: %v", err)
	}
}
