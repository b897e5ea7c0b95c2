package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// OperatorNoticeEmailData holds data for the notices sent to the operator's own address.
type OperatorNoticeEmailData struct {
	Email   string
	EventID string
}

// CalendarInviteEmailData holds data for the invite sent to a registrant.
type CalendarInviteEmailData struct {
	Email string
	Event *Event
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	NotifyRegistration(ctx context.Context, data *OperatorNoticeEmailData) error
	NotifyUnregistration(ctx context.Context, data *OperatorNoticeEmailData) error
	SendCalendarInvite(ctx context.Context, data *CalendarInviteEmailData) error
}
