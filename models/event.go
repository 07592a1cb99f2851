// File: /models/event.go
package models

import (
	"time"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID                  string      `json:"id"`
	Title               string      `json:"title"`
	Description         string      `json:"description"`
	Price               float64     `json:"price"`
	Capacity            int         `json:"capacity"`
	TotalReservedPeople int         `json:"total_reserved_people"`
	Category            string      `json:"category"`   // EventCategory.ID
	SocialHub           string      `json:"social_hub"` // SocialHub.ID
	StartTime           time.Time   `json:"start_time"`
	EndTime             time.Time   `json:"end_time"`
	Status              EventStatus `json:"status"`
	MinimumSeats        int         `json:"minimum_seats"`
	Rating              float64     `json:"rating"`
	ImageURL            string      `json:"image,omitempty"`
}

// FreeCapacity is the number of seats not yet claimed by reservations.
func (e Event) FreeCapacity() int {
	return e.Capacity - e.TotalReservedPeople
}

// MeetsMinimum reports whether enough people reserved for the event to go ahead.
func (e Event) MeetsMinimum() bool {
	return e.TotalReservedPeople >= e.MinimumSeats
}

type EventCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
