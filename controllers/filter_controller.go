// File: /controllers/filter_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialhub-app/middleware"
	"socialhub-app/models"
	"socialhub-app/store"
	"socialhub-app/utils"
)

type FilterController struct{}

func NewFilterController() *FilterController {
	return &FilterController{}
}

func (fc *FilterController) GetFilters(c *gin.Context) {
	s := middleware.GetSession(c)
	c.JSON(http.StatusOK, s.State().Filters)
}

func (fc *FilterController) ToggleCategory(c *gin.Context) {
	s := middleware.GetSession(c)
	state := s.Dispatch(store.ToggleCategory{CategoryID: c.Param("id")})
	c.JSON(http.StatusOK, state.Filters)
}

func (fc *FilterController) ToggleSocialHub(c *gin.Context) {
	s := middleware.GetSession(c)
	state := s.Dispatch(store.ToggleSocialHub{SocialHubID: c.Param("id")})
	c.JSON(http.StatusOK, state.Filters)
}

// UpdateFilters sets the scalar criteria present in the body. The date may be
// Gregorian or Solar Hijri, in Latin or Persian digits; it is stored Gregorian.
func (fc *FilterController) UpdateFilters(c *gin.Context) {
	s := middleware.GetSession(c)

	var req models.UpdateFiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if req.MaxPrice != nil && *req.MaxPrice < 0 {
		utils.SendValidationError(c, "max_price must not be negative")
		return
	}
	if req.MinRating != nil && (*req.MinRating < 0 || *req.MinRating > 5) {
		utils.SendValidationError(c, "min_rating must be between 0 and 5")
		return
	}
	if req.MinCapacity != nil && *req.MinCapacity < 0 {
		utils.SendValidationError(c, "min_capacity must not be negative")
		return
	}
	var date *string
	if req.Date != nil {
		day, err := parseDay(*req.Date)
		if err != nil {
			utils.SendValidationError(c, err.Error())
			return
		}
		gregorian := day.Gregorian.Format(dayLayout)
		date = &gregorian
	}

	if req.MaxPrice != nil {
		s.Dispatch(store.SetMaxPrice{MaxPrice: req.MaxPrice})
	}
	if req.MinRating != nil {
		s.Dispatch(store.SetMinRating{MinRating: req.MinRating})
	}
	if date != nil {
		s.Dispatch(store.SetDate{Date: date})
	}
	if req.MinCapacity != nil {
		s.Dispatch(store.SetMinCapacity{MinCapacity: req.MinCapacity})
	}

	c.JSON(http.StatusOK, s.State().Filters)
}

func (fc *FilterController) ClearFilters(c *gin.Context) {
	s := middleware.GetSession(c)
	state := s.Dispatch(store.ClearFilters{})
	c.JSON(http.StatusOK, state.Filters)
}
