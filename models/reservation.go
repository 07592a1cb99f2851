// File: /models/reservation.go
package models

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID              string            `json:"id"`
	Customer        string            `json:"customer"`
	Event           EventRef          `json:"event"`
	NumberOfPeople  int               `json:"number_of_people"`
	Status          ReservationStatus `json:"status"`
	ReservationDate time.Time         `json:"reservation_date"`
}

type CreateReservationRequest struct {
	Event          string `json:"event"`
	NumberOfPeople int    `json:"number_of_people"`
}
