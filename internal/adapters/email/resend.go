package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

type resendMailer struct {
	client *resend.Client
	from   string
	logger *slog.Logger
}

func newResendMailer(config MailerConfig, logger *slog.Logger) *resendMailer {
	return &resendMailer{
		client: resend.NewClient(config.ResendAPIKey),
		from:   sender(config.FromName, config.FromAddress),
		logger: logger,
	}
}

// Send delivers through the Resend API. Rate limit errors are reported, never retried.
func (m *resendMailer) Send(ctx context.Context, to, subject, html, text string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		var rateLimitErr *resend.RateLimitError
		if errors.As(err, &rateLimitErr) {
			m.logger.WarnContext(ctx, "resend rate limit exceeded",
				"limit", rateLimitErr.Limit,
				"remaining", rateLimitErr.Remaining,
				"reset", rateLimitErr.Reset)
			return fmt.Errorf("email rate limit exceeded (limit: %s, resets in: %s seconds): %w",
				rateLimitErr.Limit, rateLimitErr.Reset, err)
		}
		return fmt.Errorf("resend API error: %w", err)
	}

	m.logger.InfoContext(ctx, "email sent via Resend", "email_id", sent.Id, "to", to)
	return nil
}
