// File: /utils/response.go
package utils

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"socialhub-app/models"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

// SendErrorMessage is SendError with a human-readable detail line.
func SendErrorMessage(c *gin.Context, status int, err, message string) {
	c.JSON(status, ErrorResponse{
		Error:   err,
		Message: message,
		Code:    status,
	})
}

// SendRetryLater answers 429 with Retry-After rounded up to whole seconds.
func SendRetryLater(c *gin.Context, retryAfter time.Duration, err, message string) {
	c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
	SendErrorMessage(c, http.StatusTooManyRequests, err, message)
}

func SendValidationError(c *gin.Context, err string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "Validation failed",
		Message: err,
		Code:    http.StatusBadRequest,
	})
}

func SendSuccess(c *gin.Context, message string, data interface{}) {
	response := SuccessResponse{
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(http.StatusOK, response)
}

func SendCreated(c *gin.Context, message string, data interface{}) {
	response := SuccessResponse{
		Message: message,
		Data:    data,
	}
	c.JSON(http.StatusCreated, response)
}

func SendPaginated[T any](c *gin.Context, page models.PaginatedResponse[T]) {
	if page.Data == nil {
		page.Data = []T{}
	}
	c.JSON(http.StatusOK, page)
}
