// File: /jobs/session_cleanup_job.go
package jobs

import (
	"log"
	"time"
)

// IdleSessionEvicter drops sessions that saw no request for longer than maxIdle.
type IdleSessionEvicter interface {
	EvictIdle(maxIdle time.Duration) int
}

// SessionCleanupJob handles periodic eviction of idle browser sessions
type SessionCleanupJob struct {
	sessions IdleSessionEvicter
	maxIdle  time.Duration
	ticker   *time.Ticker
	done     chan bool
}

// NewSessionCleanupJob creates a new session cleanup job
func NewSessionCleanupJob(sessions IdleSessionEvicter, interval, maxIdle time.Duration) *SessionCleanupJob {
	return &SessionCleanupJob{
		sessions: sessions,
		maxIdle:  maxIdle,
		ticker:   time.NewTicker(interval),
		done:     make(chan bool),
	}
}

// Start begins the cleanup job
func (j *SessionCleanupJob) Start() {
	log.Println("Session cleanup job started")

	go func() {
		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				log.Println("Session cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *SessionCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *SessionCleanupJob) cleanup() {
	if n := j.sessions.EvictIdle(j.maxIdle); n > 0 {
		log.Printf("Session cleanup evicted %d idle sessions", n)
	}
}
