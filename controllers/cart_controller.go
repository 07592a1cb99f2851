// File: /controllers/cart_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialhub-app/middleware"
	"socialhub-app/models"
	"socialhub-app/services"
	"socialhub-app/utils"
)

type CartController struct {
	cart         *services.CartService
	reservations *services.ReservationService
}

func NewCartController(cart *services.CartService, reservations *services.ReservationService) *CartController {
	return &CartController{cart: cart, reservations: reservations}
}

func (cc *CartController) GetCart(c *gin.Context) {
	s := middleware.GetSession(c)
	c.JSON(http.StatusOK, services.CartSummary(s.State()))
}

// AddToCart adds an event or changes the party size of an item that was not
// checked out yet.
func (cc *CartController) AddToCart(c *gin.Context) {
	s := middleware.GetSession(c)

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	item, err := cc.cart.Add(c.Request.Context(), s, req.EventID, req.NumberOfPeople)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item": item,
		"cart": services.CartSummary(s.State()),
	})
}

func (cc *CartController) RemoveFromCart(c *gin.Context) {
	s := middleware.GetSession(c)

	if err := cc.cart.Remove(s, c.Param("eventId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.CartSummary(s.State()))
}

func (cc *CartController) ClearCart(c *gin.Context) {
	s := middleware.GetSession(c)
	cc.cart.Clear(s)
	c.JSON(http.StatusOK, services.CartSummary(s.State()))
}

// Checkout creates a pending reservation for the cart item. The hold expires
// unless the reservation is confirmed in time.
func (cc *CartController) Checkout(c *gin.Context) {
	s := middleware.GetSession(c)

	r, err := cc.reservations.Checkout(c.Request.Context(), s, c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reservation": r,
		"cart":        services.CartSummary(s.State()),
	})
}
