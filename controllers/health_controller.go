// File: /controllers/health_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCounter is satisfied by *services.SessionManager.
type SessionCounter interface {
	Count() int
}

type HealthController struct {
	sessions SessionCounter
	storage  string
	started  time.Time
}

func NewHealthController(sessions SessionCounter, storageDriver string) *HealthController {
	return &HealthController{sessions: sessions, storage: storageDriver, started: time.Now()}
}

func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"sessions": hc.sessions.Count(),
		"storage":  hc.storage,
		"uptime":   time.Since(hc.started).Round(time.Second).String(),
	})
}
