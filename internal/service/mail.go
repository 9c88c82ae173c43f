package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

var (
	ErrMissingRecipient = errors.New("at least one recipient is required")
	ErrMissingSubject   = errors.New("subject is required")
	ErrMissingContent   = errors.New("either html or text content must be provided")
	ErrNoEmailID        = errors.New("no email ID returned from Resend")
)

// Recipient is a single email recipient. Name is optional; when set the
// recipient is rendered as "Name <email>".
type Recipient struct {
	Email string
	Name  string
}

func (r Recipient) Format() string {
	if r.Name != "" {
		return fmt.Sprintf("%s <%s>", r.Name, r.Email)
	}
	return r.Email
}

// Message describes a single outbound email. At least one of HTML or Text is
// required. From defaults to the configured sender address.
type Message struct {
	To      []Recipient
	Subject string
	HTML    string
	Text    string
	From    string
	ReplyTo string
	Cc      []Recipient
	Bcc     []Recipient
}

type SendResult struct {
	ID string
}

// Mailer dispatches a single transactional email. Tests inject a fake that
// records the message without hitting the network.
type Mailer interface {
	Send(ctx context.Context, msg *Message) (*SendResult, error)
}

type MailService struct {
	client    *resend.Client
	fromEmail string
	fromName  string
	isDev     bool
}

func NewMailService(apiKey, fromEmail, fromName string, isDev bool) *MailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &MailService{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
		isDev:     isDev,
	}
}

// Send validates the message and dispatches it via Resend. Exactly one network
// call per invocation; no batching, no retry.
func (s *MailService) Send(ctx context.Context, msg *Message) (*SendResult, error) {
	if len(msg.To) == 0 {
		return nil, ErrMissingRecipient
	}
	if msg.Subject == "" {
		return nil, ErrMissingSubject
	}
	if msg.HTML == "" && msg.Text == "" {
		return nil, ErrMissingContent
	}

	from := msg.From
	if from == "" {
		from = Recipient{Email: s.fromEmail, Name: s.fromName}.Format()
	}

	if s.isDev {
		slog.Info("email sent (dev mode)", "to", formatRecipients(msg.To), "subject", msg.Subject)
		return &SendResult{ID: "dev-mode"}, nil
	}

	if s.client == nil {
		return nil, fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      formatRecipients(msg.To),
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
		Cc:      formatRecipients(msg.Cc),
		Bcc:     formatRecipients(msg.Bcc),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to send email: %w", err)
	}

	if sent == nil || sent.Id == "" {
		return nil, ErrNoEmailID
	}

	slog.Info("email sent", "to", params.To, "subject", msg.Subject, "email_id", sent.Id)
	return &SendResult{ID: sent.Id}, nil
}

// formatRecipients renders recipients element-wise, preserving order. A nil or
// empty slice yields nil so optional cc/bcc fields stay absent from the
// provider payload.
func formatRecipients(recipients []Recipient) []string {
	if len(recipients) == 0 {
		return nil
	}
	formatted := make([]string, len(recipients))
	for i, r := range recipients {
		formatted[i] = r.Format()
	}
	return formatted
}
