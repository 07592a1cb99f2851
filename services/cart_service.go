// File: /services/cart_service.go
package services

import (
	"context"
	"errors"
	"time"

	"socialhub-app/locale"
	"socialhub-app/models"
	"socialhub-app/selectors"
	"socialhub-app/store"
)

var (
	ErrEventUnavailable = errors.New("event is not open for reservations")
	ErrNotEnoughSeats   = errors.New("not enough free seats")
)

type CartService struct {
	catalog *CatalogService
}

func NewCartService(catalog *CatalogService) *CartService {
	return &CartService{catalog: catalog}
}

// Add puts an event in the cart, or changes the party size of an item not yet
// checked out. The price is frozen at this moment.
func (cs *CartService) Add(ctx context.Context, s *Session, eventID string, people int) (models.CartItem, error) {
	if people <= 0 {
		return models.CartItem{}, ErrInvalidPartySize
	}

	event, err := cs.catalog.GetEvent(ctx, s, eventID)
	if err != nil {
		return models.CartItem{}, err
	}
	if event.Status == models.EventStatusCancelled || event.Status == models.EventStatusCompleted {
		return models.CartItem{}, ErrEventUnavailable
	}
	if event.Capacity > 0 && people > event.FreeCapacity() {
		return models.CartItem{}, ErrNotEnoughSeats
	}
	if item, ok := s.State().CartItem(eventID); ok && item.Status != models.CartStatusInProgress {
		return models.CartItem{}, ErrAlreadyCheckedOut
	}

	state := s.Dispatch(store.AddToCart{Event: event, NumberOfPeople: people, At: time.Now()})
	item, _ := state.CartItem(eventID)
	return item, nil
}

func (cs *CartService) Remove(s *Session, eventID string) error {
	if _, ok := s.State().CartItem(eventID); !ok {
		return ErrNotInCart
	}
	s.Dispatch(store.RemoveFromCart{EventID: eventID})
	return nil
}

func (cs *CartService) Clear(s *Session) {
	s.Dispatch(store.ClearCart{})
}

func CartSummary(state store.State) models.CartResponse {
	total := selectors.CartTotal(state)
	return models.CartResponse{
		Items:      state.Cart,
		Count:      selectors.CartCount(state),
		TotalPrice: total,
		Formatted:  locale.FormatCurrency(total, state.Language),
	}
}
