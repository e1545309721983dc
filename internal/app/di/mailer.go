package di

import (
	"log/slog"

	"shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/platform/config"
	"shop_backend/internal/platform/mailer"
)

// NewMailer creates a ResetCodeMailer implementation.
// Without an SMTP host the codes are only logged, which keeps local
// development working without a relay.
func NewMailer(cfg config.SMTPConfig) usecase.ResetCodeMailer {
	if cfg.Host == "" {
		slog.Warn("SMTP_HOST is not set. Password reset codes will be logged, not sent.")
		return mailer.LogMailer{}
	}
	return mailer.NewSMTPMailer(cfg)
}
