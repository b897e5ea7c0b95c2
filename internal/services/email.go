package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventregistration/internal/domain"
	"eventregistration/internal/metrics"
)

const (
	templateRegistrationNotice   = "registration_notice"
	templateUnregistrationNotice = "unregistration_notice"
	templateCalendarInvite       = "calendar_invite"
)

type emailService struct {
	mailer          domain.Mailer
	renderer        domain.EmailTemplateRenderer
	operatorAddress string
	logger          *slog.Logger
}

// NewEmailService returns an EmailService that renders templates with renderer and
// delivers them through mailer. Operator notices go to operatorAddress.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, operatorAddress string, logger *slog.Logger) domain.EmailService {
	return &emailService{
		mailer:          mailer,
		renderer:        renderer,
		operatorAddress: operatorAddress,
		logger:          logger,
	}
}

// NotifyRegistration tells the operator that data.Email registered for data.EventID.
func (s *emailService) NotifyRegistration(ctx context.Context, data *domain.OperatorNoticeEmailData) error {
	if data == nil {
		return errors.New("registration notice data is nil")
	}
	return s.sendOperatorNotice(ctx, templateRegistrationNotice, data)
}

// NotifyUnregistration tells the operator that data.Email unregistered from data.EventID.
func (s *emailService) NotifyUnregistration(ctx context.Context, data *domain.OperatorNoticeEmailData) error {
	if data == nil {
		return errors.New("unregistration notice data is nil")
	}
	return s.sendOperatorNotice(ctx, templateUnregistrationNotice, data)
}

func (s *emailService) sendOperatorNotice(ctx context.Context, template string, data *domain.OperatorNoticeEmailData) error {
	return s.send(ctx, template, s.operatorAddress, data)
}

// SendCalendarInvite sends the invite for data.Event to the registrant.
func (s *emailService) SendCalendarInvite(ctx context.Context, data *domain.CalendarInviteEmailData) error {
	if data == nil || data.Event == nil {
		return errors.New("calendar invite data is nil")
	}
	return s.send(ctx, templateCalendarInvite, data.Email, data)
}

func (s *emailService) send(ctx context.Context, template, to string, data any) error {
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(template, "failed").Inc()
		return fmt.Errorf("%w: render %s template: %w", domain.ErrNotification, template, err)
	}
	if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
		metrics.NotificationsTotal.WithLabelValues(template, "failed").Inc()
		return fmt.Errorf("%w: send %s email: %w", domain.ErrNotification, template, err)
	}
	metrics.NotificationsTotal.WithLabelValues(template, "sent").Inc()
	s.logger.DebugContext(ctx, "email sent", "template", template, "to", to)
	return nil
}
