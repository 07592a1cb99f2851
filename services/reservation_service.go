// File: /services/reservation_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"socialhub-app/apiclient"
	"socialhub-app/models"
	"socialhub-app/store"
	"socialhub-app/utils"
)

var (
	ErrLoginRequired           = errors.New("login required")
	ErrNotInCart               = errors.New("event is not in the cart")
	ErrAlreadyCheckedOut       = errors.New("cart item is already checked out")
	ErrReservationNotFound     = errors.New("reservation not found")
	ErrReservationNotConfirmed = errors.New("reservation is not confirmed")
	ErrInvalidPartySize        = errors.New("number of people must be positive")
)

type ReservationService struct {
	tickets *TicketSigner
	email   *EmailService
}

func NewReservationService(tickets *TicketSigner, email *EmailService) *ReservationService {
	return &ReservationService{tickets: tickets, email: email}
}

// Load replaces the session's reservations with the customer's list.
func (rs *ReservationService) Load(ctx context.Context, s *Session) error {
	s.Dispatch(store.SetLoading{Resource: store.ResourceReservations, Loading: true})

	reservations, err := s.API.ListMyReservations(ctx)
	if err != nil {
		msg := err.Error()
		s.Dispatch(store.SetError{Resource: store.ResourceReservations, Err: &msg})
		return fmt.Errorf("failed to load reservations: %w", err)
	}

	s.Dispatch(store.SetReservations{Reservations: reservations})
	return nil
}

// Checkout turns an in-progress cart item into a pending reservation on the
// server. The cart item stays in the cart, linked to the reservation.
func (rs *ReservationService) Checkout(ctx context.Context, s *Session, eventID string) (models.Reservation, error) {
	state := s.State()
	if !state.Auth.IsLoggedIn {
		return models.Reservation{}, ErrLoginRequired
	}
	item, ok := state.CartItem(eventID)
	if !ok {
		return models.Reservation{}, ErrNotInCart
	}
	if item.Status != models.CartStatusInProgress {
		return models.Reservation{}, ErrAlreadyCheckedOut
	}

	r, err := s.API.CreateReservation(ctx, eventID, item.NumberOfPeople)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("failed to create reservation: %w", err)
	}
	if r.Customer == "" && state.Auth.User != nil {
		r.Customer = state.Auth.User.ID
	}
	if r.ReservationDate.IsZero() {
		r.ReservationDate = time.Now()
	}

	s.Dispatch(store.AddReservation{Reservation: *r})
	s.Dispatch(store.UpdateCartItem{
		EventID:       eventID,
		Status:        models.CartStatusPending,
		ReservationID: r.ID,
	})
	return *r, nil
}

func (rs *ReservationService) Confirm(ctx context.Context, s *Session, id string) (models.Reservation, error) {
	if !s.State().Auth.IsLoggedIn {
		return models.Reservation{}, ErrLoginRequired
	}

	r, err := s.API.ConfirmReservation(ctx, id)
	if err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return models.Reservation{}, ErrReservationNotFound
		}
		return models.Reservation{}, fmt.Errorf("failed to confirm reservation: %w", err)
	}

	state := s.Dispatch(store.AddReservation{Reservation: *r})
	if item, ok := state.CartItem(r.Event.EventID()); ok && item.ReservationID == r.ID {
		s.Dispatch(store.UpdateCartItem{EventID: r.Event.EventID(), Status: models.CartStatusConfirmed})
	}

	if rs.email.Enabled() {
		go rs.mailConfirmation(state, *r)
	}
	return *r, nil
}

func (rs *ReservationService) mailConfirmation(state store.State, r models.Reservation) {
	user := state.Auth.User
	if user == nil || !utils.IsValidEmail(user.Email) {
		return
	}

	event := r.Event.Event
	if event == nil {
		if e, ok := state.EventByID(r.Event.EventID()); ok {
			event = &e
		}
	}

	png, err := rs.tickets.QRCode(r, 256)
	if err != nil {
		log.Printf("reservations: %v", err)
		return
	}
	if err := rs.email.SendReservationConfirmation(user.Email, user.FullName(), r, event, png, state.Language); err != nil {
		log.Printf("reservations: confirmation mail for %s failed: %v", r.ID, err)
	}
}

// Cancel cancels the reservation on the server and drops the cart item that
// produced it.
func (rs *ReservationService) Cancel(ctx context.Context, s *Session, id string) (models.Reservation, error) {
	if !s.State().Auth.IsLoggedIn {
		return models.Reservation{}, ErrLoginRequired
	}

	r, err := s.API.CancelReservation(ctx, id)
	if err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return models.Reservation{}, ErrReservationNotFound
		}
		return models.Reservation{}, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	state := s.Dispatch(store.AddReservation{Reservation: *r})
	if item, ok := state.CartItem(r.Event.EventID()); ok && item.ReservationID == r.ID {
		s.Dispatch(store.RemoveFromCart{EventID: r.Event.EventID()})
	}
	return *r, nil
}

// ReserveLocal records a pending reservation in the session only. It is the
// offline path used while the catalog comes from the bundled dataset.
func (rs *ReservationService) ReserveLocal(s *Session, eventID string, people int) (models.Reservation, error) {
	if people <= 0 {
		return models.Reservation{}, ErrInvalidPartySize
	}
	if _, ok := s.State().EventByID(eventID); !ok {
		return models.Reservation{}, ErrEventNotFound
	}

	before := s.State().Version
	state := s.Dispatch(store.Reserve{EventID: eventID, NumberOfPeople: people, At: time.Now()})
	if state.Version == before || len(state.Reservations) == 0 {
		return models.Reservation{}, ErrSessionClosed
	}
	return state.Reservations[len(state.Reservations)-1], nil
}

// Ticket returns the door QR code of a confirmed reservation.
func (rs *ReservationService) Ticket(s *Session, id string, size int) ([]byte, error) {
	r, ok := s.State().ReservationByID(id)
	if !ok {
		return nil, ErrReservationNotFound
	}
	if r.Status != models.ReservationStatusConfirmed {
		return nil, ErrReservationNotConfirmed
	}
	return rs.tickets.QRCode(r, size)
}

// VerifyTicket checks a scanned QR payload and returns the reservation id it
// was issued for.
func (rs *ReservationService) VerifyTicket(payload string) (string, error) {
	return rs.tickets.Verify(payload)
}
