// File: /services/support_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"socialhub-app/apiclient"
	"socialhub-app/models"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrInvalidTicket  = errors.New("ticket needs a subject and a description")
)

type SupportService struct {
	email *EmailService
}

func NewSupportService(email *EmailService) *SupportService {
	return &SupportService{email: email}
}

func (ss *SupportService) List(ctx context.Context, s *Session) ([]models.SupportTicket, error) {
	if !s.State().Auth.IsLoggedIn {
		return nil, ErrLoginRequired
	}
	tickets, err := s.API.ListTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

func (ss *SupportService) Get(ctx context.Context, s *Session, id string) (*models.SupportTicket, error) {
	if !s.State().Auth.IsLoggedIn {
		return nil, ErrLoginRequired
	}
	t, err := s.API.GetTicket(ctx, id)
	if err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return t, nil
}

// Create files a ticket with the API. When the API is unreachable and mail is
// configured, the ticket is mailed to the support inbox instead and returned
// with status queued and a locally generated id.
func (ss *SupportService) Create(ctx context.Context, s *Session, req models.CreateTicketRequest) (*models.SupportTicket, error) {
	req.Subject = strings.TrimSpace(req.Subject)
	req.Description = strings.TrimSpace(req.Description)
	if req.Subject == "" || req.Description == "" {
		return nil, ErrInvalidTicket
	}
	if req.Priority == "" {
		req.Priority = models.TicketPriorityMedium
	}

	state := s.State()
	if !state.Auth.IsLoggedIn {
		return nil, ErrLoginRequired
	}

	t, err := s.API.CreateTicket(ctx, req)
	if err == nil {
		return t, nil
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
		// The gateway answered and rejected the ticket; mailing it would not help.
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	if !ss.email.Enabled() {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	now := time.Now()
	queued := models.SupportTicket{
		ID:          uuid.New().String(),
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      models.TicketStatusQueued,
		CreatedAt:   now,
		UpdatedAt:   now,
		Comments:    []models.TicketComment{},
	}
	if mailErr := ss.email.SendSupportTicket(queued, state.Auth.User, s.ID); mailErr != nil {
		log.Printf("support: API and mail both failed for session %s: %v; %v", s.ID, err, mailErr)
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	log.Printf("support: ticket %s mailed to support while the API is down: %v", queued.ID, err)
	s.Notify(models.NotificationTypeInfo,
		"درخواست شما از طریق ایمیل برای پشتیبانی ارسال شد",
		"Your request was sent to support by email")
	return &queued, nil
}

func (ss *SupportService) AddComment(ctx context.Context, s *Session, id, message string) (*models.TicketComment, error) {
	if !s.State().Auth.IsLoggedIn {
		return nil, ErrLoginRequired
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrInvalidTicket
	}
	c, err := s.API.AddTicketComment(ctx, id, message)
	if err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return c, nil
}
