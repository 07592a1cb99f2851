// File: /services/email_service.go
package services

import (
	"errors"
	"fmt"
	"html"
	"io"

	"gopkg.in/gomail.v2"

	"socialhub-app/config"
	"socialhub-app/locale"
	"socialhub-app/models"
)

var ErrEmailDisabled = errors.New("email delivery is not configured")

// Mailer is the part of gomail.Dialer the service uses.
type Mailer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailService struct {
	config *config.Config
	dialer Mailer
}

// NewEmailService returns a service that refuses to send when SMTP
// credentials are missing.
func NewEmailService(cfg *config.Config) *EmailService {
	service := &EmailService{config: cfg}
	if cfg.SMTPConfigured() {
		service.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return service
}

func NewEmailServiceWithMailer(cfg *config.Config, mailer Mailer) *EmailService {
	return &EmailService{config: cfg, dialer: mailer}
}

func (es *EmailService) Enabled() bool {
	return es != nil && es.dialer != nil
}

func (es *EmailService) newMessage(to, subject string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	return m
}

// SendSupportTicket forwards a ticket the API could not accept to the support
// mailbox. The customer, when known, becomes the Reply-To address.
func (es *EmailService) SendSupportTicket(ticket models.SupportTicket, customer *models.Customer, sessionID string) error {
	if !es.Enabled() {
		return ErrEmailDisabled
	}

	m := es.newMessage(es.config.SupportEmail, fmt.Sprintf("[Support #%s] %s", ticket.ID, ticket.Subject))

	from := "anonymous visitor"
	if customer != nil {
		from = fmt.Sprintf("%s (%s)", customer.FullName(), customer.PhoneNumber)
		if customer.Email != "" {
			m.SetHeader("Reply-To", customer.Email)
		}
	}

	textBody := fmt.Sprintf(`
Support ticket %s (queued while the API was unreachable)

From: %s
Session: %s
Category: %s
Priority: %s
Created: %s

%s
`, ticket.ID, from, sessionID, ticket.Category, ticket.Priority,
		ticket.CreatedAt.Format("2006-01-02 15:04 MST"), ticket.Description)

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Tahoma, Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .meta { background: #f8f9fa; padding: 15px; border-radius: 8px; }
        .description { white-space: pre-wrap; margin-top: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <h2>%s</h2>
        <div class="meta">
            <p><strong>Ticket:</strong> %s</p>
            <p><strong>From:</strong> %s</p>
            <p><strong>Session:</strong> %s</p>
            <p><strong>Category:</strong> %s / <strong>Priority:</strong> %s</p>
        </div>
        <div class="description">%s</div>
    </div>
</body>
</html>`, html.EscapeString(ticket.Subject), ticket.ID, html.EscapeString(from), sessionID,
		html.EscapeString(ticket.Category), ticket.Priority, html.EscapeString(ticket.Description))

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send support email: %w", err)
	}
	return nil
}

// SendReservationConfirmation mails the customer their confirmed reservation
// with the door QR code embedded.
func (es *EmailService) SendReservationConfirmation(to, name string, r models.Reservation, event *models.Event, qrPNG []byte, lang string) error {
	if !es.Enabled() {
		return ErrEmailDisabled
	}

	title := r.Event.EventID()
	when := ""
	if event != nil {
		title = event.Title
		when = locale.FormatDateTime(event.StartTime, lang)
	}
	people := locale.FormatNumber(float64(r.NumberOfPeople), 0, lang)

	subject := "Your reservation is confirmed"
	greeting := "Hello %s, your reservation for %s is confirmed."
	details := "Date: %s, people: %s. Show this code at the door."
	dir := "ltr"
	if lang == locale.Persian {
		subject = "رزرو شما تأیید شد"
		greeting = "%s عزیز، رزرو شما برای %s تأیید شد."
		details = "تاریخ: %s، تعداد نفرات: %s. این کد را هنگام ورود نشان دهید."
		dir = "rtl"
	}

	m := es.newMessage(to, subject)
	m.Embed("ticket.png", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(qrPNG)
		return err
	}))

	line1 := fmt.Sprintf(greeting, name, title)
	line2 := fmt.Sprintf(details, when, people)

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html dir="%s">
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Tahoma, Arial, sans-serif; line-height: 1.8; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; text-align: center; }
    </style>
</head>
<body>
    <div class="container">
        <p>%s</p>
        <p>%s</p>
        <img src="cid:ticket.png" alt="QR" width="256" height="256">
    </div>
</body>
</html>`, dir, html.EscapeString(line1), html.EscapeString(line2))

	m.SetBody("text/plain", line1+"\n"+line2+"\n")
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}
