// File: /services/effects.go
package services

import (
	"context"
	"log"
	"time"

	"socialhub-app/models"
	"socialhub-app/store"
)

const mirrorTimeout = 10 * time.Second

// Effects reacts to store changes of one session: it persists the cart and
// language, mirrors cart edits to the backend and prunes stale reservations.
type Effects struct {
	session *Session
}

func NewEffects(s *Session) *Effects {
	return &Effects{session: s}
}

func (e *Effects) HandleChange(c store.Change) {
	if !c.Changed() {
		return
	}

	if store.TouchesCart(c.Action) {
		if err := e.session.Storage.SaveCart(c.Next.Cart); err != nil {
			log.Printf("effects: failed to persist cart for session %s: %v", e.session.ID, err)
		}
	}

	switch a := c.Action.(type) {
	case store.SetEvents:
		// The bundled catalog uses its own ids, so only a real catalog can
		// prove a reservation stale.
		if a.Source == store.SourceAPI {
			e.session.Dispatch(store.CleanupStaleReservations{})
		}

	case store.SetLanguage:
		if err := e.session.Storage.SetLanguage(c.Next.Language); err != nil {
			log.Printf("effects: failed to persist language for session %s: %v", e.session.ID, err)
		}

	case store.AddToCart:
		if c.Next.Auth.IsLoggedIn {
			go e.mirror(func(ctx context.Context) error {
				return e.session.API.AddCartItem(ctx, a.Event.ID, a.NumberOfPeople)
			})
		}

	case store.RemoveFromCart:
		if c.Prev.Auth.IsLoggedIn {
			go e.mirror(func(ctx context.Context) error {
				return e.session.API.RemoveCartItem(ctx, a.EventID)
			})
		}
	}
}

// mirror runs a best-effort backend cart call. The local cart is never rolled
// back; the user only sees a warning.
func (e *Effects) mirror(call func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
	defer cancel()

	if err := call(ctx); err != nil {
		log.Printf("effects: cart mirror failed for session %s: %v", e.session.ID, err)
		e.session.Notify(models.NotificationTypeWarning,
			"سبد خرید روی سرور همگام نشد",
			"Your cart could not be synced with the server")
	}
}
