// File: /repositories/local_storage.go
package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"socialhub-app/models"
)

// Persisted keys of a browser session.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyCart         = "cart"
	KeyLanguage     = "language"
)

var ErrCorruptCart = errors.New("persisted cart is malformed")

// LocalStorage is one session's view of the persisted client state.
type LocalStorage struct {
	backend   StorageBackend
	sessionID string
}

func NewLocalStorage(backend StorageBackend, sessionID string) *LocalStorage {
	return &LocalStorage{backend: backend, sessionID: sessionID}
}

func (s *LocalStorage) SessionID() string {
	return s.sessionID
}

// Get returns the value for key, or "" with ErrKeyNotFound.
func (s *LocalStorage) Get(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
	defer cancel()
	return s.backend.Get(ctx, s.sessionID, key)
}

func (s *LocalStorage) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
	defer cancel()
	return s.backend.Set(ctx, s.sessionID, key, value)
}

func (s *LocalStorage) Remove(keys ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
	defer cancel()
	return s.backend.Delete(ctx, s.sessionID, keys...)
}

func (s *LocalStorage) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
	defer cancel()
	return s.backend.Clear(ctx, s.sessionID)
}

// Tokens returns both session tokens. ok is false unless both are present.
func (s *LocalStorage) Tokens() (tokens models.Tokens, ok bool) {
	access, err := s.Get(KeyAccessToken)
	if err != nil || access == "" {
		return models.Tokens{}, false
	}
	refresh, err := s.Get(KeyRefreshToken)
	if err != nil || refresh == "" {
		return models.Tokens{}, false
	}
	return models.Tokens{Access: access, Refresh: refresh}, true
}

// AccessToken returns the bearer token for API calls, or "".
func (s *LocalStorage) AccessToken() string {
	access, err := s.Get(KeyAccessToken)
	if err != nil {
		return ""
	}
	return access
}

func (s *LocalStorage) SetTokens(t models.Tokens) error {
	if err := s.Set(KeyAccessToken, t.Access); err != nil {
		return fmt.Errorf("failed to store access token: %w", err)
	}
	if err := s.Set(KeyRefreshToken, t.Refresh); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// EvictTokens removes both session tokens.
func (s *LocalStorage) EvictTokens() error {
	return s.Remove(KeyAccessToken, KeyRefreshToken)
}

// LoadCart restores the persisted cart. A payload that is not valid JSON, or
// that holds any invalid item, is deleted and reported as ErrCorruptCart.
func (s *LocalStorage) LoadCart() ([]models.CartItem, error) {
	raw, err := s.Get(KeyCart)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []models.CartItem{}, nil
		}
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.discardCart()
		return nil, fmt.Errorf("%w: %v", ErrCorruptCart, err)
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			s.discardCart()
			return nil, fmt.Errorf("%w: item %d: %v", ErrCorruptCart, i, err)
		}
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}

func (s *LocalStorage) discardCart() {
	if err := s.Remove(KeyCart); err != nil {
		log.Printf("storage: failed to delete malformed cart for session %s: %v", s.sessionID, err)
	}
}

func (s *LocalStorage) SaveCart(items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	return s.Set(KeyCart, string(data))
}

// Language returns the persisted language preference, or "".
func (s *LocalStorage) Language() string {
	lang, err := s.Get(KeyLanguage)
	if err != nil {
		return ""
	}
	return lang
}

func (s *LocalStorage) SetLanguage(lang string) error {
	return s.Set(KeyLanguage, lang)
}
