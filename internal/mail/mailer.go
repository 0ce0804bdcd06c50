// Package mail delivers account email. No SMTP integration is wired in this
// deployment; LogMailer stands in for it and records the message instead.
package mail

import (
	"context"
	"log"
)

type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

type LogMailer struct{}

var _ Mailer = LogMailer{}

func (LogMailer) SendPasswordReset(_ context.Context, email, token string) error {
	log.Printf("📧 Password reset for %s: token %s", email, token)
	return nil
}
