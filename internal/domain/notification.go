package domain

import "context"

// Action identifies which lifecycle transition triggered a notification.
type Action string

const (
	ActionCreated Action = "CREATED"
	ActionUpdated Action = "UPDATED"
	ActionDeleted Action = "DELETED"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// CalendarSync pushes event lifecycle changes to an external calendar
// (infrastructure port).
type CalendarSync interface {
	Sync(ctx context.Context, event *Event, action Action) error
}

// NotificationDispatcher fans an event lifecycle change out to the external
// capabilities. Implementations swallow capability failures; a Notify call
// never reports an error to the caller.
type NotificationDispatcher interface {
	Notify(ctx context.Context, event *Event, action Action)
}

// EventEmailData holds data for the event lifecycle notification emails.
type EventEmailData struct {
	ID               int64
	Title            string
	Date             string
	LocationName     string
	StaffMemberCount int
}
