package contracts

import (
	"context"
	"sensus-service/internal/app/models"
)

// MailerService enqueues outgoing mail; delivery happens in the mail worker.
type MailerService interface {
	SendEmail(ctx context.Context, message *models.MailMessage) error
}

type MailSender interface {
	Send(to, subject, body string) error
}
