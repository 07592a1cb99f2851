// File: /controllers/social_hub_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"socialhub-app/middleware"
	"socialhub-app/models"
	"socialhub-app/selectors"
	"socialhub-app/services"
	"socialhub-app/store"
	"socialhub-app/utils"
)

type SocialHubController struct {
	catalog   *services.CatalogService
	favorites *services.FavoriteService
	location  *services.LocationService
}

func NewSocialHubController(catalog *services.CatalogService, favorites *services.FavoriteService, location *services.LocationService) *SocialHubController {
	return &SocialHubController{catalog: catalog, favorites: favorites, location: location}
}

// GetSocialHubs lists venues. With near=true they are sorted by distance from
// the session position and an optional radius (km) drops far ones.
func (hc *SocialHubController) GetSocialHubs(c *gin.Context) {
	s := middleware.GetSession(c)
	state := s.State()

	if c.Query("near") == "true" {
		radius, _ := strconv.ParseFloat(c.Query("radius"), 64)
		c.JSON(http.StatusOK, hc.location.Nearby(state, radius))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"social_hubs": state.SocialHubs,
		"count":       len(state.SocialHubs),
		"status":      state.Status(store.ResourceSocialHubs),
	})
}

func (hc *SocialHubController) GetSocialHub(c *gin.Context) {
	s := middleware.GetSession(c)

	hub, err := hc.catalog.GetSocialHub(c.Request.Context(), s, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hub)
}

func (hc *SocialHubController) GetSocialHubEvents(c *gin.Context) {
	s := middleware.GetSession(c)

	hub, err := hc.catalog.GetSocialHub(c.Request.Context(), s, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	state := s.State()
	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"social_hub": hub,
		"events":     eventViews(selectors.EventsAtHub(state, hub.ID, now), state, now),
	})
}

// ToggleFavorite flips the favorite flag and answers with the flag the user
// now sees, which is the old one again when the sync failed.
func (hc *SocialHubController) ToggleFavorite(c *gin.Context) {
	s := middleware.GetSession(c)

	hub, err := hc.catalog.GetSocialHub(c.Request.Context(), s, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	isFavorite, err := hc.favorites.Toggle(c.Request.Context(), s, hub.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"social_hub_id": hub.ID,
		"is_favorite":   isFavorite,
	})
}

// GetFavorites lists the favorite venues. With refresh=true the list is
// reloaded from the API and returned as the API sent it.
func (hc *SocialHubController) GetFavorites(c *gin.Context) {
	s := middleware.GetSession(c)

	var hubs []models.SocialHub
	if c.Query("refresh") == "true" {
		loaded, err := hc.favorites.Load(c.Request.Context(), s)
		if err != nil {
			respondError(c, err)
			return
		}
		hubs = loaded
	} else {
		hubs = selectors.FavoriteHubs(s.State())
	}
	if hubs == nil {
		hubs = []models.SocialHub{}
	}

	c.JSON(http.StatusOK, gin.H{
		"social_hubs": hubs,
		"count":       len(hubs),
	})
}

// CheckFavorite asks the API whether the venue is a favorite, answering from
// the session when the API cannot be reached.
func (hc *SocialHubController) CheckFavorite(c *gin.Context) {
	s := middleware.GetSession(c)
	id := c.Param("id")

	isFavorite, err := hc.favorites.Check(c.Request.Context(), s, id)
	if errors.Is(err, services.ErrLoginRequired) {
		respondError(c, err)
		return
	}
	if err != nil {
		log.Printf("favorites: check for session %s served locally: %v", s.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"social_hub_id": id,
		"is_favorite":   isFavorite,
		"synced":        err == nil,
	})
}

// CountFavorites asks the API and falls back to the session's own list.
func (hc *SocialHubController) CountFavorites(c *gin.Context) {
	s := middleware.GetSession(c)

	count, err := hc.favorites.Count(c.Request.Context(), s)
	if errors.Is(err, services.ErrLoginRequired) {
		respondError(c, err)
		return
	}
	if err != nil {
		log.Printf("favorites: count for session %s served locally: %v", s.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  count,
		"synced": err == nil,
	})
}

func (hc *SocialHubController) ClearFavorites(c *gin.Context) {
	s := middleware.GetSession(c)

	if err := hc.favorites.Clear(c.Request.Context(), s); err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, "Favorites cleared", nil)
}

func (hc *SocialHubController) GetCategories(c *gin.Context) {
	s := middleware.GetSession(c)
	state := s.State()

	c.JSON(http.StatusOK, gin.H{
		"categories": state.Categories,
		"status":     state.Status(store.ResourceCategories),
	})
}
