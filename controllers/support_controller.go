// File: /controllers/support_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialhub-app/middleware"
	"socialhub-app/models"
	"socialhub-app/services"
	"socialhub-app/utils"
)

type SupportController struct {
	support *services.SupportService
}

func NewSupportController(support *services.SupportService) *SupportController {
	return &SupportController{support: support}
}

func (sc *SupportController) GetTickets(c *gin.Context) {
	s := middleware.GetSession(c)

	tickets, err := sc.support.List(c.Request.Context(), s)
	if err != nil {
		respondError(c, err)
		return
	}
	if tickets == nil {
		tickets = []models.SupportTicket{}
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

func (sc *SupportController) GetTicket(c *gin.Context) {
	s := middleware.GetSession(c)

	ticket, err := sc.support.Get(c.Request.Context(), s, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// CreateTicket files a ticket. A ticket that could only be mailed to support
// comes back with status queued and 202.
func (sc *SupportController) CreateTicket(c *gin.Context) {
	s := middleware.GetSession(c)

	var req models.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	switch req.Priority {
	case "", models.TicketPriorityLow, models.TicketPriorityMedium, models.TicketPriorityHigh:
	default:
		utils.SendValidationError(c, "priority must be low, medium or high")
		return
	}

	ticket, err := sc.support.Create(c.Request.Context(), s, req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if ticket.Status == models.TicketStatusQueued {
		status = http.StatusAccepted
	}
	c.JSON(status, ticket)
}

func (sc *SupportController) AddComment(c *gin.Context) {
	s := middleware.GetSession(c)

	var req models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	comment, err := sc.support.AddComment(c.Request.Context(), s, c.Param("id"), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
