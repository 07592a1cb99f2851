// File: /models/support_ticket.go
package models

import "time"

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
	// TicketStatusQueued marks a ticket that was mailed to support because the API was unreachable.
	TicketStatusQueued TicketStatus = "queued"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

type SupportTicket struct {
	ID          string          `json:"id"`
	Subject     string          `json:"subject"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Priority    TicketPriority  `json:"priority"`
	Status      TicketStatus    `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Comments    []TicketComment `json:"comments"`
}

type TicketComment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTicketRequest struct {
	Subject     string         `json:"subject" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Category    string         `json:"category"`
	Priority    TicketPriority `json:"priority"`
}

type AddCommentRequest struct {
	Message string `json:"message" binding:"required"`
}
