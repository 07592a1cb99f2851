// File: /models/models_test.go
package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestEventRefUnmarshal(t *testing.T) {
	var reservations []Reservation
	payload := `[
		{"id": "1", "event": "ev-1", "status": "pending"},
		{"id": "2", "event": 42, "status": "pending"},
		{"id": "3", "event": {"id": "ev-3", "title": "Board games", "price": 120000}, "status": "confirmed"}
	]`
	if err := json.Unmarshal([]byte(payload), &reservations); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reservations[0].Event.IsBare() || reservations[0].Event.EventID() != "ev-1" {
		t.Errorf("string ref decoded as %+v", reservations[0].Event)
	}
	if !reservations[1].Event.IsBare() || reservations[1].Event.EventID() != "42" {
		t.Errorf("numeric ref decoded as %+v", reservations[1].Event)
	}
	embedded := reservations[2].Event
	if embedded.IsBare() || embedded.EventID() != "ev-3" || embedded.Event.Title != "Board games" {
		t.Errorf("object ref decoded as %+v", embedded)
	}
}

func TestEventRefMarshal(t *testing.T) {
	bare, _ := json.Marshal(BareEventRef("ev-9"))
	if string(bare) != `"ev-9"` {
		t.Errorf("bare ref marshalled to %s", bare)
	}

	full, _ := json.Marshal(EmbeddedEventRef(Event{ID: "ev-9", Title: "Quiz night"}))
	var back EventRef
	if err := json.Unmarshal(full, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.IsBare() || back.Event.Title != "Quiz night" {
		t.Errorf("embedded ref lost its event: %s", full)
	}
}

func TestCartItemValidate(t *testing.T) {
	valid := CartItem{Event: &Event{ID: "ev-1"}, NumberOfPeople: 2, TotalPrice: 200, Status: CartStatusInProgress}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}

	broken := []CartItem{
		{NumberOfPeople: 2, Status: CartStatusInProgress},
		{Event: &Event{ID: "ev-1"}, Status: CartStatusInProgress},
		{Event: &Event{ID: "ev-1"}, NumberOfPeople: 1, TotalPrice: -1, Status: CartStatusPending},
		{Event: &Event{ID: "ev-1"}, NumberOfPeople: 1},
	}
	for i, item := range broken {
		if err := item.Validate(); !errors.Is(err, ErrInvalidCartItem) {
			t.Errorf("case %d: expected ErrInvalidCartItem, got %v", i, err)
		}
	}
}

func TestStringSliceMarshalsEmptyArray(t *testing.T) {
	b, _ := json.Marshal(SocialHub{ID: "h1"})
	var raw map[string]json.RawMessage
	_ = json.Unmarshal(b, &raw)
	if string(raw["amenities"]) != "[]" {
		t.Errorf("amenities = %s, want []", raw["amenities"])
	}
}

func TestFiltersIsEmpty(t *testing.T) {
	zero := 0
	date := "2024-03-20"
	tests := []struct {
		name string
		f    Filters
		want bool
	}{
		{"zero value", Filters{}, true},
		{"empty slices", Filters{Categories: []string{}, SocialHubs: []string{}}, true},
		{"category", Filters{Categories: []string{"c1"}}, false},
		{"zero capacity is still set", Filters{MinCapacity: &zero}, false},
		{"date", Filters{Date: &date}, false},
	}
	for _, tt := range tests {
		if got := tt.f.IsEmpty(); got != tt.want {
			t.Errorf("%s: IsEmpty = %v, want %v", tt.name, got, tt.want)
		}
	}
}
