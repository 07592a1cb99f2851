// File: /selectors/sort.go
package selectors

import (
	"sort"
	"strings"

	"socialhub-app/geo"
	"socialhub-app/models"
)

type SortOption string

const (
	SortByDate       SortOption = "date"
	SortByPriceAsc   SortOption = "price_asc"
	SortByPriceDesc  SortOption = "price_desc"
	SortByRating     SortOption = "rating"
	SortByPopularity SortOption = "popularity"
	SortByDistance   SortOption = "distance"
)

// ParseSortOption maps a query value to a SortOption, defaulting to date.
func ParseSortOption(v string) SortOption {
	switch opt := SortOption(strings.ToLower(strings.TrimSpace(v))); opt {
	case SortByPriceAsc, SortByPriceDesc, SortByRating, SortByPopularity, SortByDistance:
		return opt
	default:
		return SortByDate
	}
}

// SortEvents returns a sorted copy of events. Distance sorting uses the venue
// coordinates in hubs; events at unknown venues go last.
func SortEvents(events []models.Event, by SortOption, origin geo.Point, hubs []models.SocialHub) []models.Event {
	out := make([]models.Event, len(events))
	copy(out, events)

	var less func(a, b models.Event) bool
	switch by {
	case SortByPriceAsc:
		less = func(a, b models.Event) bool { return a.Price < b.Price }
	case SortByPriceDesc:
		less = func(a, b models.Event) bool { return a.Price > b.Price }
	case SortByRating:
		less = func(a, b models.Event) bool { return a.Rating > b.Rating }
	case SortByPopularity:
		less = func(a, b models.Event) bool { return a.TotalReservedPeople > b.TotalReservedPeople }
	case SortByDistance:
		distances := make(map[string]float64, len(hubs))
		for _, h := range hubs {
			distances[h.ID] = geo.Distance(origin, h.Location())
		}
		less = func(a, b models.Event) bool {
			da, okA := distances[a.SocialHub]
			db, okB := distances[b.SocialHub]
			if okA != okB {
				return okA
			}
			return da < db
		}
	default:
		less = func(a, b models.Event) bool { return a.StartTime.Before(b.StartTime) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Paginate returns the 1-based page of items together with the page envelope.
func Paginate[T any](items []T, page, limit int) models.PaginatedResponse[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	total := len(items)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return models.PaginatedResponse[T]{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}
