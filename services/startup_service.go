// File: /services/startup_service.go
package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"socialhub-app/repositories"
	"socialhub-app/store"
)

// StartupService reconciles a new session with its persisted mirror and the
// API gateway before the first request is served.
type StartupService struct {
	auth    *AuthService
	catalog *CatalogService
	timeout time.Duration
}

func NewStartupService(auth *AuthService, catalog *CatalogService, timeout time.Duration) *StartupService {
	return &StartupService{auth: auth, catalog: catalog, timeout: timeout}
}

// Run never fails: every problem ends up in the session state or the log.
func (ss *StartupService) Run(ctx context.Context, s *Session) {
	// Startup outlives the request that opened the session.
	ctx = context.WithoutCancel(ctx)
	if ss.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ss.timeout)
		defer cancel()
	}

	if lang := s.Storage.Language(); lang != "" {
		s.Dispatch(store.SetLanguage{Language: lang})
	}

	ss.restoreCart(s)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := ss.auth.RestoreSession(ctx, s); err != nil && !errors.Is(err, ErrNoStoredTokens) {
			log.Printf("startup: session %s logged out: %v", s.ID, err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := ss.catalog.LoadAll(ctx, s); err != nil {
			log.Printf("startup: session %s catalog incomplete: %v", s.ID, err)
		}
	}()
	wg.Wait()

	// Reservations and events load independently; prune once both are in.
	if s.State().Status(store.ResourceEvents).Source == store.SourceAPI {
		s.Dispatch(store.CleanupStaleReservations{})
	}
}

func (ss *StartupService) restoreCart(s *Session) {
	items, err := s.Storage.LoadCart()
	switch {
	case errors.Is(err, repositories.ErrCorruptCart):
		log.Printf("startup: discarded cart for session %s: %v", s.ID, err)
	case err != nil:
		log.Printf("startup: failed to read cart for session %s: %v", s.ID, err)
	case len(items) > 0:
		s.Dispatch(store.RestoreCart{Items: items})
	}
}
