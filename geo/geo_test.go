// File: /geo/geo_test.go
package geo

import "testing"

func TestDistance(t *testing.T) {
	isfahan := Point{Latitude: 32.6546, Longitude: 51.6680}

	got := Distance(Tehran, isfahan)
	if got < 330 || got > 345 {
		t.Fatalf("Tehran to Isfahan = %.1f km, want roughly 337 km", got)
	}

	if d := Distance(Tehran, Tehran); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestOrDefault(t *testing.T) {
	if got := OrDefault(nil, Tehran); got != Tehran {
		t.Fatalf("nil point should fall back, got %+v", got)
	}

	bad := &Point{Latitude: 120, Longitude: 10}
	if got := OrDefault(bad, Tehran); got != Tehran {
		t.Fatalf("invalid point should fall back, got %+v", got)
	}

	ok := &Point{Latitude: 29.59, Longitude: 52.58}
	if got := OrDefault(ok, Tehran); got != *ok {
		t.Fatalf("valid point should be kept, got %+v", got)
	}
}
