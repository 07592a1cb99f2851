// File: /services/favorite_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"socialhub-app/apiclient"
	"socialhub-app/models"
	"socialhub-app/store"
)

// favoriteKey identifies one venue within one session.
type favoriteKey struct {
	session string
	hub     string
}

type favoriteSlot struct {
	mu  sync.Mutex // guards seq and the optimistic update
	seq uint64

	api sync.Mutex // serializes API calls for the venue
}

// FavoriteService applies favorite toggles optimistically. Only the latest
// toggle issued for a venue talks to the API, so responses can never land
// out of order.
type FavoriteService struct {
	mu    sync.Mutex
	slots map[favoriteKey]*favoriteSlot
}

func NewFavoriteService() *FavoriteService {
	return &FavoriteService{slots: make(map[favoriteKey]*favoriteSlot)}
}

func (fs *FavoriteService) slot(k favoriteKey) *favoriteSlot {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	sl, ok := fs.slots[k]
	if !ok {
		sl = &favoriteSlot{}
		fs.slots[k] = sl
	}
	return sl
}

func (sl *favoriteSlot) current(seq uint64) bool {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.seq == seq
}

// Toggle flips the venue's favorite flag in the session immediately and then
// syncs it. It returns the flag the user now sees. On API failure the flag is
// rolled back and an error banner is raised, unless a newer toggle for the
// venue has been issued meanwhile. Removing a favorite the server no longer
// has counts as success.
func (fs *FavoriteService) Toggle(ctx context.Context, s *Session, hubID string) (bool, error) {
	state := s.State()
	if !state.Auth.IsLoggedIn {
		return false, ErrLoginRequired
	}

	k := favoriteKey{session: s.ID, hub: hubID}
	sl := fs.slot(k)

	sl.mu.Lock()
	sl.seq++
	seq := sl.seq
	want := !s.State().IsFavorite(hubID)
	if want {
		s.Dispatch(store.AddFavorite{SocialHubID: hubID})
	} else {
		s.Dispatch(store.RemoveFavorite{SocialHubID: hubID})
	}
	sl.mu.Unlock()

	sl.api.Lock()
	defer sl.api.Unlock()

	if !sl.current(seq) {
		// A newer toggle owns the venue and will sync it.
		return want, nil
	}

	var err error
	if want {
		err = s.API.AddFavorite(ctx, hubID)
	} else {
		err = s.API.RemoveFavorite(ctx, hubID)
	}
	if !want && errors.Is(err, apiclient.ErrNotFound) {
		// Already absent on the server.
		err = nil
	}
	if err == nil {
		return want, nil
	}

	sl.mu.Lock()
	stale := sl.seq != seq
	if !stale {
		if want {
			s.Dispatch(store.RemoveFavorite{SocialHubID: hubID})
		} else {
			s.Dispatch(store.AddFavorite{SocialHubID: hubID})
		}
	}
	sl.mu.Unlock()

	if stale {
		log.Printf("favorites: superseded toggle %s for session %s failed: %v", hubID, s.ID, err)
		return s.State().IsFavorite(hubID), nil
	}

	log.Printf("favorites: toggle %s for session %s failed: %v", hubID, s.ID, err)
	s.Notify(models.NotificationTypeError,
		"ذخیره علاقه‌مندی ناموفق بود",
		"Could not update your favorites")
	return !want, fmt.Errorf("failed to update favorite: %w", err)
}

// Load replaces the session's favorites with the server's list and returns
// the venues as the server sent them. They may be missing from the session's
// catalog, for example while it is served from the bundled dataset.
func (fs *FavoriteService) Load(ctx context.Context, s *Session) ([]models.SocialHub, error) {
	if !s.State().Auth.IsLoggedIn {
		return nil, ErrLoginRequired
	}
	hubs, err := s.API.ListFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	ids := make([]string, 0, len(hubs))
	for i := range hubs {
		hubs[i].IsFavorite = true
		ids = append(ids, hubs[i].ID)
	}
	s.Dispatch(store.SetFavorites{SocialHubIDs: ids})
	return hubs, nil
}

// Count asks the server; the local list may still hold unsynced toggles.
func (fs *FavoriteService) Count(ctx context.Context, s *Session) (int, error) {
	if !s.State().Auth.IsLoggedIn {
		return 0, ErrLoginRequired
	}
	n, err := s.API.CountFavorites(ctx)
	if err != nil {
		return len(s.State().Favorites), fmt.Errorf("failed to count favorites: %w", err)
	}
	return n, nil
}

func (fs *FavoriteService) Check(ctx context.Context, s *Session, hubID string) (bool, error) {
	if !s.State().Auth.IsLoggedIn {
		return false, ErrLoginRequired
	}
	fav, err := s.API.CheckFavorite(ctx, hubID)
	if err != nil {
		return s.State().IsFavorite(hubID), fmt.Errorf("failed to check favorite: %w", err)
	}
	return fav, nil
}

// Clear removes every favorite, locally only after the server agreed.
func (fs *FavoriteService) Clear(ctx context.Context, s *Session) error {
	if !s.State().Auth.IsLoggedIn {
		return ErrLoginRequired
	}
	if err := s.API.ClearFavorites(ctx); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}
	s.Dispatch(store.SetFavorites{SocialHubIDs: []string{}})
	return nil
}

// Forget drops the per-venue slots of a closed session.
func (fs *FavoriteService) Forget(sessionID string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for k := range fs.slots {
		if k.session == sessionID {
			delete(fs.slots, k)
		}
	}
}
