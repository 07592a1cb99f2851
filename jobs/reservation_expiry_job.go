// File: /jobs/reservation_expiry_job.go
package jobs

import (
	"log"
	"strings"
	"time"

	"socialhub-app/models"
	"socialhub-app/store"
)

const reservationKeyPrefix = "reservation:"

// Dispatcher is the part of the store the jobs write to.
type Dispatcher interface {
	Dispatch(store.Action) store.State
}

// ReservationExpiryJob cancels pending reservations that were not confirmed
// within the hold window.
type ReservationExpiryJob struct {
	queue *DelayQueue
	store Dispatcher
	hold  time.Duration
	now   func() time.Time
}

func NewReservationExpiryJob(queue *DelayQueue, d Dispatcher, hold time.Duration) *ReservationExpiryJob {
	return &ReservationExpiryJob{
		queue: queue,
		store: d,
		hold:  hold,
		now:   time.Now,
	}
}

// HandleChange re-evaluates timers whenever the reservation list may have changed.
func (j *ReservationExpiryJob) HandleChange(c store.Change) {
	if !c.Changed() || !store.TouchesReservations(c.Action) {
		return
	}
	j.Sync(c.Next)
}

// Sync expires overdue pending reservations, arms a timer for the others and
// cancels timers of reservations that are no longer pending.
func (j *ReservationExpiryJob) Sync(s store.State) {
	now := j.now()
	pending := make(map[string]bool)

	var overdue []string
	for _, r := range s.Reservations {
		if r.Status != models.ReservationStatusPending {
			continue
		}
		key := reservationKeyPrefix + r.ID
		pending[key] = true

		remaining := j.hold - now.Sub(r.ReservationDate)
		if remaining <= 0 {
			j.queue.Cancel(key)
			overdue = append(overdue, r.ID)
			continue
		}
		if deadline, ok := j.queue.Deadline(key); ok && deadline.Sub(now.Add(remaining)).Abs() < time.Second {
			continue
		}

		id := r.ID
		j.queue.Schedule(key, remaining, func() {
			j.expire(id)
		})
	}

	for _, key := range j.queue.Pending() {
		if strings.HasPrefix(key, reservationKeyPrefix) && !pending[key] {
			j.queue.Cancel(key)
		}
	}

	for _, id := range overdue {
		j.expire(id)
	}
}

func (j *ReservationExpiryJob) expire(id string) {
	log.Printf("jobs: pending reservation %s expired", id)
	j.store.Dispatch(store.ExpirePendingReservation{ReservationID: id})
}
