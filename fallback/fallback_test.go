// File: /fallback/fallback_test.go
package fallback

import "testing"

func TestDatasetIsConsistent(t *testing.T) {
	events, err := Events()
	if err != nil {
		t.Fatal(err)
	}
	hubs, err := SocialHubs()
	if err != nil {
		t.Fatal(err)
	}
	categories, err := Categories()
	if err != nil {
		t.Fatal(err)
	}

	if len(events) == 0 || len(hubs) == 0 || len(categories) == 0 {
		t.Fatalf("empty dataset: %d events, %d hubs, %d categories", len(events), len(hubs), len(categories))
	}

	hubIDs := make(map[string]bool)
	for _, h := range hubs {
		hubIDs[h.ID] = true
	}
	catIDs := make(map[string]bool)
	for _, c := range categories {
		catIDs[c.ID] = true
	}

	for _, e := range events {
		if !hubIDs[e.SocialHub] {
			t.Errorf("event %s references unknown venue %s", e.ID, e.SocialHub)
		}
		if !catIDs[e.Category] {
			t.Errorf("event %s references unknown category %s", e.ID, e.Category)
		}
		if e.StartTime.IsZero() || !e.EndTime.After(e.StartTime) {
			t.Errorf("event %s has a bad schedule", e.ID)
		}
		if e.FreeCapacity() < 0 {
			t.Errorf("event %s is overbooked", e.ID)
		}
	}
}
