// File: /controllers/reservation_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialhub-app/middleware"
	"socialhub-app/selectors"
	"socialhub-app/services"
	"socialhub-app/utils"
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

type ReservationController struct {
	reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{reservations: reservations}
}

type ReserveRequest struct {
	EventID        string `json:"event_id" binding:"required"`
	NumberOfPeople int    `json:"number_of_people" binding:"required,min=1"`
}

type VerifyTicketRequest struct {
	Payload string `json:"payload" binding:"required"`
}

// GetReservations lists the customer's reservations, newest first. With
// refresh=true the list is reloaded from the API before answering.
func (rc *ReservationController) GetReservations(c *gin.Context) {
	s := middleware.GetSession(c)

	if c.Query("refresh") == "true" {
		if err := rc.reservations.Load(c.Request.Context(), s); err != nil {
			respondError(c, err)
			return
		}
	}

	state := s.State()
	c.JSON(http.StatusOK, gin.H{
		"reservations": reservationViews(selectors.UserReservations(state), state.Language),
		"pending":      len(selectors.PendingReservations(state)),
	})
}

// Reserve holds seats in the session only, for use while the gateway is down.
func (rc *ReservationController) Reserve(c *gin.Context) {
	s := middleware.GetSession(c)

	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	r, err := rc.reservations.ReserveLocal(s, req.EventID, req.NumberOfPeople)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendCreated(c, "Seats held", r)
}

func (rc *ReservationController) ConfirmReservation(c *gin.Context) {
	s := middleware.GetSession(c)

	r, err := rc.reservations.Confirm(c.Request.Context(), s, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": r})
}

func (rc *ReservationController) CancelReservation(c *gin.Context) {
	s := middleware.GetSession(c)

	r, err := rc.reservations.Cancel(c.Request.Context(), s, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": r})
}

// GetTicketQR serves the door QR code of a confirmed reservation as PNG.
func (rc *ReservationController) GetTicketQR(c *gin.Context) {
	s := middleware.GetSession(c)

	size := queryInt(c, "size", defaultQRSize)
	if size < 64 || size > maxQRSize {
		size = defaultQRSize
	}

	png, err := rc.reservations.Ticket(s, c.Param("id"), size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Cache-Control", "private, max-age=300")
	c.Data(http.StatusOK, "image/png", png)
}

// VerifyTicket checks a scanned ticket payload at the door.
func (rc *ReservationController) VerifyTicket(c *gin.Context) {
	var req VerifyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	id, err := rc.reservations.VerifyTicket(req.Payload)
	if errors.Is(err, services.ErrBadTicket) {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "reservation_id": id})
}
