// File: /services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"socialhub-app/apiclient"
	"socialhub-app/fallback"
	"socialhub-app/models"
	"socialhub-app/store"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrSocialHubNotFound = errors.New("social hub not found")
)

type CatalogService struct {
	fallbackEnabled bool
}

func NewCatalogService(fallbackEnabled bool) *CatalogService {
	return &CatalogService{fallbackEnabled: fallbackEnabled}
}

// loadResource fetches one catalog list into the store. When the API fails
// and the bundled dataset is enabled, the dataset is used and the resource
// reports no error; otherwise the error is recorded on the resource.
func loadResource[T any](
	ctx context.Context,
	cs *CatalogService,
	s *Session,
	res store.Resource,
	fetch func(context.Context) ([]T, error),
	bundled func() ([]T, error),
	set func([]T, store.DataSource) store.Action,
) error {
	s.Dispatch(store.SetLoading{Resource: res, Loading: true})

	items, err := fetch(ctx)
	if err == nil {
		s.Dispatch(set(items, store.SourceAPI))
		return nil
	}
	log.Printf("catalog: failed to load %s for session %s: %v", res, s.ID, err)

	if cs.fallbackEnabled {
		local, ferr := bundled()
		if ferr == nil {
			s.Dispatch(set(local, store.SourceFallback))
			return nil
		}
		log.Printf("catalog: bundled %s unavailable: %v", res, ferr)
	}

	msg := err.Error()
	s.Dispatch(store.SetError{Resource: res, Err: &msg})
	return fmt.Errorf("failed to load %s: %w", res, err)
}

func (cs *CatalogService) LoadEvents(ctx context.Context, s *Session) error {
	return loadResource(ctx, cs, s, store.ResourceEvents, s.API.ListEvents, fallback.Events,
		func(events []models.Event, src store.DataSource) store.Action {
			return store.SetEvents{Events: events, Source: src}
		})
}

func (cs *CatalogService) LoadSocialHubs(ctx context.Context, s *Session) error {
	return loadResource(ctx, cs, s, store.ResourceSocialHubs, s.API.ListSocialHubs, fallback.SocialHubs,
		func(hubs []models.SocialHub, src store.DataSource) store.Action {
			return store.SetSocialHubs{SocialHubs: hubs, Source: src}
		})
}

func (cs *CatalogService) LoadCategories(ctx context.Context, s *Session) error {
	return loadResource(ctx, cs, s, store.ResourceCategories, s.API.ListCategories, fallback.Categories,
		func(categories []models.EventCategory, src store.DataSource) store.Action {
			return store.SetCategories{Categories: categories, Source: src}
		})
}

// LoadAll loads the three catalog lists concurrently. A failure of one list
// never blocks the others; the joined error lists every failure.
func (cs *CatalogService) LoadAll(ctx context.Context, s *Session) error {
	loaders := []func(context.Context, *Session) error{
		cs.LoadEvents,
		cs.LoadSocialHubs,
		cs.LoadCategories,
	}

	errs := make([]error, len(loaders))
	var wg sync.WaitGroup
	for i, load := range loaders {
		wg.Add(1)
		go func(i int, load func(context.Context, *Session) error) {
			defer wg.Done()
			errs[i] = load(ctx, s)
		}(i, load)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// GetEvent returns the event from the session's catalog, asking the API for
// events the catalog does not hold.
func (cs *CatalogService) GetEvent(ctx context.Context, s *Session, id string) (models.Event, error) {
	if e, ok := s.State().EventByID(id); ok {
		return e, nil
	}
	e, err := s.API.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return models.Event{}, ErrEventNotFound
		}
		return models.Event{}, err
	}
	return *e, nil
}

func (cs *CatalogService) GetSocialHub(ctx context.Context, s *Session, id string) (models.SocialHub, error) {
	state := s.State()
	if h, ok := state.SocialHubByID(id); ok {
		return h, nil
	}
	h, err := s.API.GetSocialHub(ctx, id)
	if err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return models.SocialHub{}, ErrSocialHubNotFound
		}
		return models.SocialHub{}, err
	}
	h.IsFavorite = state.IsFavorite(h.ID)
	return *h, nil
}
