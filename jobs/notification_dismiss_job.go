// File: /jobs/notification_dismiss_job.go
package jobs

import (
	"time"

	"socialhub-app/store"
)

const notificationKeyPrefix = "notification:"

// NotificationDismissJob removes notifications once they have been shown for ttl.
type NotificationDismissJob struct {
	queue *DelayQueue
	store Dispatcher
	ttl   time.Duration
}

func NewNotificationDismissJob(queue *DelayQueue, d Dispatcher, ttl time.Duration) *NotificationDismissJob {
	return &NotificationDismissJob{queue: queue, store: d, ttl: ttl}
}

func (j *NotificationDismissJob) HandleChange(c store.Change) {
	if !c.Changed() {
		return
	}

	switch a := c.Action.(type) {
	case store.AddNotification:
		id := a.Notification.ID
		j.queue.Schedule(notificationKeyPrefix+id, j.ttl, func() {
			j.store.Dispatch(store.RemoveNotification{NotificationID: id})
		})
	case store.RemoveNotification:
		j.queue.Cancel(notificationKeyPrefix + a.NotificationID)
	}
}
