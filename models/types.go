// File: /models/types.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StringSlice always marshals to a JSON array, never null.
type StringSlice []string

func (ss StringSlice) MarshalJSON() ([]byte, error) {
	if ss == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(ss))
}

func (ss *StringSlice) UnmarshalJSON(data []byte) error {
	var slice []string
	if err := json.Unmarshal(data, &slice); err != nil {
		return err
	}
	*ss = StringSlice(slice)
	return nil
}

func (ss StringSlice) Contains(s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// EventRef is a reservation's reference to its event: either a bare id or the
// full event object, depending on how the API serialized it.
type EventRef struct {
	ID    string
	Event *Event
}

func BareEventRef(id string) EventRef {
	return EventRef{ID: id}
}

func EmbeddedEventRef(e Event) EventRef {
	return EventRef{ID: e.ID, Event: &e}
}

// IsBare reports whether only the event id is known.
func (r EventRef) IsBare() bool {
	return r.Event == nil
}

func (r EventRef) EventID() string {
	if r.Event != nil {
		return r.Event.ID
	}
	return r.ID
}

func (r EventRef) MarshalJSON() ([]byte, error) {
	if r.Event != nil {
		return json.Marshal(r.Event)
	}
	return json.Marshal(r.ID)
}

func (r *EventRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*r = EventRef{}
		return nil
	case data[0] == '{':
		var e Event
		if err := json.Unmarshal(data, &e); err != nil {
			return err
		}
		*r = EmbeddedEventRef(e)
		return nil
	case data[0] == '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = BareEventRef(id)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("cannot unmarshal %s into EventRef", data)
		}
		*r = BareEventRef(n.String())
		return nil
	}
}

type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
