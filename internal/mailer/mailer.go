package mailer

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// Sender is the transactional email collaborator. Services depend on this
// interface so tests can swap in a failing or recording implementation.
type Sender interface {
	SendConfirmation(ctx context.Context, to, fullName, jobTitle string) error
	SendStatusUpdate(ctx context.Context, to, fullName, jobTitle, status string) error
}

// Recipient is one entry of a bulk confirmation send.
type Recipient struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	JobTitle string `json:"job_title"`
}

// SendResult is the per-recipient outcome of a bulk send.
type SendResult struct {
	Email   string `json:"email"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SendBulkConfirmations delivers one confirmation per recipient, sequentially.
// A failure is recorded and the batch continues; nothing is rolled back.
func SendBulkConfirmations(ctx context.Context, s Sender, recipients []Recipient) []SendResult {
	results := make([]SendResult, 0, len(recipients))
	for _, r := range recipients {
		res := SendResult{Email: r.Email, Success: true}
		if err := s.SendConfirmation(ctx, r.Email, r.FullName, r.JobTitle); err != nil {
			res.Success = false
			res.Error = err.Error()
		}
		results = append(results, res)
	}
	return results
}

// ResendMailer sends through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) SendConfirmation(ctx context.Context, to, fullName, jobTitle string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: "We received your application",
		Html:    confirmationBody(fullName, jobTitle),
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend: confirmation to %s: %w", to, err)
	}
	log.Printf("📧 Confirmation email sent to %s (id=%s)", to, sent.Id)
	return nil
}

func (m *ResendMailer) SendStatusUpdate(ctx context.Context, to, fullName, jobTitle, status string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: fmt.Sprintf("Update on your application for %s", jobTitle),
		Html:    statusBody(fullName, jobTitle, status),
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend: status update to %s: %w", to, err)
	}
	log.Printf("📧 Status email (%s) sent to %s (id=%s)", status, to, sent.Id)
	return nil
}
