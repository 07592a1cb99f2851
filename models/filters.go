// File: /models/filters.go
package models

// Filters are the transient listing criteria. Nil pointers mean "not set".
type Filters struct {
	Categories  []string `json:"categories"`
	SocialHubs  []string `json:"socialHubs"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
	MinRating   *float64 `json:"minRating,omitempty"`
	Date        *string  `json:"date,omitempty"` // YYYY-MM-DD, Gregorian
	MinCapacity *int     `json:"minCapacity,omitempty"`
}

func (f Filters) IsEmpty() bool {
	return len(f.Categories) == 0 && len(f.SocialHubs) == 0 &&
		f.MaxPrice == nil && f.MinRating == nil && f.Date == nil && f.MinCapacity == nil
}

type UpdateFiltersRequest struct {
	MaxPrice    *float64 `json:"max_price"`
	MinRating   *float64 `json:"min_rating"`
	Date        *string  `json:"date"`
	MinCapacity *int     `json:"min_capacity"`
}
