// File: /models/notification.go
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeError   NotificationType = "error"
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
)

// Notification is a transient UI banner; it is never persisted.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewNotification(t NotificationType, message string) Notification {
	return Notification{
		ID:        uuid.New().String(),
		Type:      t,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

type NotificationResponse struct {
	Notification
	TimeAgo string `json:"time_ago"`
}

// GetTimeAgo returns a human-readable time difference
func (n Notification) GetTimeAgo(now time.Time) string {
	diff := now.Sub(n.CreatedAt)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		minutes := int(diff.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	default:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}
}

func (n Notification) ToResponse(now time.Time) NotificationResponse {
	return NotificationResponse{Notification: n, TimeAgo: n.GetTimeAgo(now)}
}
