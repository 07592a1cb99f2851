// File: /controllers/event_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"socialhub-app/geo"
	"socialhub-app/middleware"
	"socialhub-app/models"
	"socialhub-app/selectors"
	"socialhub-app/services"
	"socialhub-app/store"
	"socialhub-app/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type EventController struct {
	catalog  *services.CatalogService
	location *services.LocationService
}

func NewEventController(catalog *services.CatalogService, location *services.LocationService) *EventController {
	return &EventController{catalog: catalog, location: location}
}

// GetEvents lists active events matching the session filters.
// Query: search, sort, lat, lng, page, limit.
func (ec *EventController) GetEvents(c *gin.Context) {
	s := middleware.GetSession(c)
	state := s.State()
	now := time.Now()

	events := selectors.FilteredEvents(state, now)

	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		matched := make([]models.Event, 0, len(events))
		for _, e := range events {
			if strings.Contains(strings.ToLower(e.Title), search) ||
				strings.Contains(strings.ToLower(e.Description), search) {
				matched = append(matched, e)
			}
		}
		events = matched
	}

	sortBy := selectors.ParseSortOption(c.Query("sort"))
	events = selectors.SortEvents(events, sortBy, ec.origin(c, state), state.SocialHubs)

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", defaultPageSize)
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}

	utils.SendPaginated(c, selectors.Paginate(eventViews(events, state, now), page, limit))
}

func (ec *EventController) GetActiveEvents(c *gin.Context) {
	s := middleware.GetSession(c)
	state := s.State()
	now := time.Now()

	c.JSON(http.StatusOK, gin.H{
		"events": eventViews(selectors.ActiveEvents(state, now), state, now),
	})
}

func (ec *EventController) GetRecommendedEvents(c *gin.Context) {
	s := middleware.GetSession(c)
	state := s.State()
	now := time.Now()

	c.JSON(http.StatusOK, gin.H{
		"events": eventViews(selectors.RecommendedEvents(state, now), state, now),
	})
}

func (ec *EventController) GetEvent(c *gin.Context) {
	s := middleware.GetSession(c)

	event, err := ec.catalog.GetEvent(c.Request.Context(), s, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newEventView(event, s.State(), time.Now()))
}

// origin prefers explicit lat/lng query parameters over the session position.
func (ec *EventController) origin(c *gin.Context, state store.State) geo.Point {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat == nil && errLng == nil {
		if p := (geo.Point{Latitude: lat, Longitude: lng}); p.Valid() {
			return p
		}
	}
	origin, _ := ec.location.Origin(state)
	return origin
}
