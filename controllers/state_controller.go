// File: /controllers/state_controller.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"socialhub-app/middleware"
	"socialhub-app/store"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
)

type StateController struct {
	upgrader websocket.Upgrader
}

// NewStateController accepts WebSocket upgrades from the listed origins. A
// "*" entry allows any origin.
func NewStateController(allowedOrigins []string) *StateController {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &StateController{upgrader: websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || allowed["*"] || allowed[origin]
		},
	}}
}

func (sc *StateController) GetState(c *gin.Context) {
	s := middleware.GetSession(c)
	c.JSON(http.StatusOK, summarize(s.State(), time.Now()))
}

// Stream pushes a fresh summary every time the session's state changes. Bursts
// of changes are coalesced into one message carrying the latest snapshot.
func (sc *StateController) Stream(c *gin.Context) {
	s := middleware.GetSession(c)

	conn, err := sc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: upgrade failed for session %s: %v", s.ID, err)
		return
	}
	defer conn.Close()

	changed := make(chan struct{}, 1)
	unsubscribe := s.Store.Subscribe(func(ch store.Change) {
		if !ch.Changed() {
			return
		}
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	// Read pump: keeps pong deadlines and notices the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var sent uint64
	push := func() error {
		state := s.State()
		if sent != 0 && state.Version == sent {
			return nil
		}
		sent = state.Version
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		return conn.WriteJSON(summarize(state, time.Now()))
	}

	if err := push(); err != nil {
		return
	}

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-changed:
			if err := push(); err != nil {
				return
			}
		case <-ticker.C:
			// An open stream counts as activity.
			s.Touch()
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
