// Package mailer delivers password-reset codes over SMTP.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/platform/config"
)

// SMTPMailer sends reset codes through a configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a mailer from the SMTP configuration.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:   cfg.From,
	}
}

// SendForgotPasswordCode emails the pending reset code to the user.
func (m *SMTPMailer) SendForgotPasswordCode(_ context.Context, user *entity.User) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", "Your password reset code")
	msg.SetBody("text/html", resetCodeBody(user))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send reset code to %s: %w", user.Email, err)
	}
	return nil
}

// resetCodeBody renders the HTML body for the reset-code mail.
func resetCodeBody(user *entity.User) string {
	return fmt.Sprintf(`<h1>Password reset</h1>
<p>Hi %s,</p>
<p>Your password reset code is:</p>
<p><strong>%s</strong></p>
<p>The code is valid for one hour. If you did not request a reset, you can ignore this email.</p>`,
		user.Name, user.ForgotCode)
}

// LogMailer is the development fallback used when no SMTP host is
// configured. It logs the code instead of sending it.
type LogMailer struct{}

// SendForgotPasswordCode logs the reset code.
func (LogMailer) SendForgotPasswordCode(_ context.Context, user *entity.User) error {
	slog.Info("DEVELOPER MODE: password reset code",
		"email", user.Email, "code", user.ForgotCode)
	return nil
}
