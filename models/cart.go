// File: /models/cart.go
package models

import (
	"errors"
	"fmt"
	"time"
)

type CartStatus string

const (
	CartStatusInProgress CartStatus = "in_progress"
	CartStatusPending    CartStatus = "pending"
	CartStatusConfirmed  CartStatus = "confirmed"
)

// CartItem is a client-side staging record preceding a confirmed reservation.
// TotalPrice is frozen when the item is added.
type CartItem struct {
	Event          *Event     `json:"event"`
	NumberOfPeople int        `json:"numberOfPeople"`
	TotalPrice     float64    `json:"totalPrice"`
	Status         CartStatus `json:"status"`
	ReservationID  string     `json:"reservationId,omitempty"`
	AddedAt        time.Time  `json:"addedAt"`
}

var ErrInvalidCartItem = errors.New("invalid cart item")

// Validate checks the fields a restored cart entry must carry.
func (c CartItem) Validate() error {
	switch {
	case c.Event == nil || c.Event.ID == "":
		return fmt.Errorf("%w: missing event", ErrInvalidCartItem)
	case c.NumberOfPeople <= 0:
		return fmt.Errorf("%w: missing number of people", ErrInvalidCartItem)
	case c.TotalPrice < 0:
		return fmt.Errorf("%w: negative total price", ErrInvalidCartItem)
	}

	switch c.Status {
	case CartStatusInProgress, CartStatusPending, CartStatusConfirmed:
		return nil
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidCartItem, c.Status)
	}
}

type AddToCartRequest struct {
	EventID        string `json:"event_id" binding:"required"`
	NumberOfPeople int    `json:"number_of_people" binding:"required,min=1"`
}

type CartResponse struct {
	Items      []CartItem `json:"items"`
	Count      int        `json:"count"`
	TotalPrice float64    `json:"total_price"`
	Formatted  string     `json:"total_formatted"`
}
