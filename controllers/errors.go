// File: /controllers/errors.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"socialhub-app/apiclient"
	"socialhub-app/services"
	"socialhub-app/utils"
)

// respondError maps a service error to its HTTP status. Anything unknown is
// reported as an upstream failure and attached to the context for logging.
func respondError(c *gin.Context, err error) {
	var resend *services.ResendError
	if errors.As(err, &resend) {
		utils.SendRetryLater(c, resend.RetryAfter, "Verification code requested too often", err.Error())
		return
	}

	switch {
	case errors.Is(err, services.ErrLoginRequired),
		errors.Is(err, apiclient.ErrUnauthorized):
		utils.SendError(c, http.StatusUnauthorized, "Login required")

	case errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrSocialHubNotFound),
		errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, services.ErrTicketNotFound),
		errors.Is(err, services.ErrNotInCart):
		utils.SendError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrInvalidPhone),
		errors.Is(err, services.ErrInvalidCode),
		errors.Is(err, services.ErrInvalidPartySize),
		errors.Is(err, services.ErrInvalidTicket),
		errors.Is(err, services.ErrInvalidCoordinates),
		errors.Is(err, services.ErrInvalidAccuracy):
		utils.SendValidationError(c, err.Error())

	case errors.Is(err, services.ErrAlreadyCheckedOut),
		errors.Is(err, services.ErrEventUnavailable),
		errors.Is(err, services.ErrNotEnoughSeats),
		errors.Is(err, services.ErrReservationNotConfirmed):
		utils.SendError(c, http.StatusConflict, err.Error())

	case errors.Is(err, apiclient.ErrNotFound):
		utils.SendError(c, http.StatusNotFound, "Not found")

	case errors.Is(err, services.ErrSessionClosed):
		utils.SendError(c, http.StatusServiceUnavailable, "Session expired, please retry")

	default:
		_ = c.Error(err)
		utils.SendErrorMessage(c, http.StatusBadGateway, "Upstream request failed", "The service is temporarily unavailable")
	}
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
