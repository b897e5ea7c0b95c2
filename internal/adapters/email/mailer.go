package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"eventregistration/internal/domain"
)

// Providers accepted by NewMailer.
const (
	ProviderSMTP   = "smtp"
	ProviderSES    = "ses"
	ProviderResend = "resend"
	ProviderNoop   = "noop"
)

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// SMTPConfig holds configuration for a plain SMTP relay.
// Authentication is only attempted when Password is set.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider     string
	FromAddress  string
	FromName     string
	SES          SESConfig
	SMTP         SMTPConfig
	ResendAPIKey string
}

// NewMailer creates a mailer from config. Unknown providers fall back to a no-op mailer.
func NewMailer(config MailerConfig, logger *slog.Logger) (domain.Mailer, error) {
	switch config.Provider {
	case ProviderSMTP:
		if config.SMTP.Host == "" {
			return nil, fmt.Errorf("smtp mailer: host is required")
		}
		return newSMTPMailer(config, logger), nil
	case ProviderSES:
		return newSESMailer(config, logger), nil
	case ProviderResend:
		if config.ResendAPIKey == "" {
			return nil, fmt.Errorf("resend mailer: api key is required")
		}
		return newResendMailer(config, logger), nil
	case ProviderNoop:
		return &noopMailer{logger: logger}, nil
	default:
		logger.Warn("unknown email provider, using noop", "provider", config.Provider)
		return &noopMailer{logger: logger}, nil
	}
}

// sender renders the From header value. Names outside printable ASCII are RFC 2047 encoded.
func sender(fromName, fromAddress string) string {
	if fromName != "" {
		return (&mail.Address{Name: fromName, Address: fromAddress}).String()
	}
	return fromAddress
}

type sesMailer struct {
	client      *ses.Client
	fromAddress string
	fromName    string
	logger      *slog.Logger
}

func newSESMailer(config MailerConfig, logger *slog.Logger) *sesMailer {
	sesConfig := config.SES
	if sesConfig.InsecureSkipVerify {
		logger.Warn("TLS certificate verification is disabled for SES, use only in development")
	}
	httpClient := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: sesConfig.InsecureSkipVerify,
				MinVersion:         tls.VersionTLS12,
			},
		},
	}
	awsCfg := aws.Config{
		Region: sesConfig.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				sesConfig.AccessKeyID,
				sesConfig.SecretAccessKey,
				"",
			),
		),
		HTTPClient: httpClient,
	}
	return &sesMailer{
		client:      ses.NewFromConfig(awsCfg),
		fromAddress: config.FromAddress,
		fromName:    config.FromName,
		logger:      logger,
	}
}

func (s *sesMailer) Send(ctx context.Context, to, subject, html, text string) error {
	result, err := s.client.SendEmail(ctx, s.input(to, subject, html, text))
	if err != nil {
		return fmt.Errorf("send email via SES: %w", err)
	}
	s.logger.InfoContext(ctx, "email sent via SES", "message_id", aws.ToString(result.MessageId), "to", to)
	return nil
}

func (s *sesMailer) input(to, subject, html, text string) *ses.SendEmailInput {
	input := &ses.SendEmailInput{
		Source: aws.String(sender(s.fromName, s.fromAddress)),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{},
		},
	}
	if html != "" {
		input.Message.Body.Html = &types.Content{
			Data:    aws.String(html),
			Charset: aws.String("UTF-8"),
		}
	}
	if text != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(text),
			Charset: aws.String("UTF-8"),
		}
	}
	return input
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(ctx context.Context, to, subject, html, text string) error {
	n.logger.InfoContext(ctx, "email would be sent (noop)", "to", to, "subject", subject)
	return nil
}
