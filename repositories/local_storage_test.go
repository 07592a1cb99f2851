// File: /repositories/local_storage_test.go
package repositories

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"socialhub-app/models"
)

func TestTokens(t *testing.T) {
	s := NewLocalStorage(NewMemoryBackend(), "sess-1")

	if _, ok := s.Tokens(); ok {
		t.Fatal("empty storage reported tokens")
	}

	if err := s.Set(KeyAccessToken, "access"); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Tokens(); ok {
		t.Error("a lone access token must not count as a session")
	}

	if err := s.SetTokens(models.Tokens{Access: "a", Refresh: "r"}); err != nil {
		t.Fatal(err)
	}
	if tok, ok := s.Tokens(); !ok || tok.Access != "a" || tok.Refresh != "r" {
		t.Errorf("Tokens = %+v, %v", tok, ok)
	}

	if err := s.EvictTokens(); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{KeyAccessToken, KeyRefreshToken} {
		if _, err := s.Get(key); !errors.Is(err, ErrKeyNotFound) {
			t.Errorf("%s still present after eviction", key)
		}
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	backend := NewMemoryBackend()
	a := NewLocalStorage(backend, "a")
	b := NewLocalStorage(backend, "b")

	a.SetLanguage("en")
	if b.Language() != "" {
		t.Error("language leaked across sessions")
	}

	a.Clear()
	if a.Language() != "" {
		t.Error("Clear kept the language")
	}
}

func TestCartRoundTrip(t *testing.T) {
	s := NewLocalStorage(NewMemoryBackend(), "sess")
	items := []models.CartItem{{
		Event:          &models.Event{ID: "e1", Price: 100},
		NumberOfPeople: 2,
		TotalPrice:     200,
		Status:         models.CartStatusInProgress,
		AddedAt:        time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC),
	}}

	if err := s.SaveCart(items); err != nil {
		t.Fatal(err)
	}
	got, err := s.LoadCart()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Event.ID != "e1" || got[0].TotalPrice != 200 {
		t.Errorf("LoadCart = %+v", got)
	}
}

func TestLoadCartDiscardsMalformedPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "{oops"},
		{"missing price fields", `[{"event":{"id":"e1"},"numberOfPeople":2,"totalPrice":200,"status":"in_progress"},{"event":{"id":"e2"},"status":"in_progress"}]`},
		{"missing event", `[{"numberOfPeople":1,"totalPrice":10,"status":"pending"}]`},
		{"unknown status", `[{"event":{"id":"e1"},"numberOfPeople":1,"totalPrice":10,"status":"paid"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewLocalStorage(NewMemoryBackend(), "sess")
			s.Set(KeyCart, tt.payload)

			items, err := s.LoadCart()
			if !errors.Is(err, ErrCorruptCart) {
				t.Fatalf("err = %v, want ErrCorruptCart", err)
			}
			if items != nil {
				t.Errorf("partially salvaged %d items", len(items))
			}
			if _, err := s.Get(KeyCart); !errors.Is(err, ErrKeyNotFound) {
				t.Error("malformed cart key was not deleted")
			}
		})
	}
}

func TestLoadCartWithoutKey(t *testing.T) {
	s := NewLocalStorage(NewMemoryBackend(), "sess")
	items, err := s.LoadCart()
	if err != nil || items == nil || len(items) != 0 {
		t.Errorf("LoadCart = %v, %v", items, err)
	}
}

// Runs against a real server when REDIS_ADDR is set.
func TestRedisBackend(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	backend := NewRedisBackend(NewRedisClient(addr, os.Getenv("REDIS_PASSWORD"), 0), time.Minute)
	ctx := context.Background()
	if err := backend.Ping(ctx); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}

	s := NewLocalStorage(backend, "test-"+time.Now().Format("150405.000000"))
	defer s.Clear()

	if err := s.SetTokens(models.Tokens{Access: "a", Refresh: "r"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Tokens(); !ok {
		t.Fatal("tokens not stored")
	}
	if err := s.EvictTokens(); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Tokens(); ok {
		t.Error("tokens survived eviction")
	}
}
