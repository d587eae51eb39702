package services

import (
	"context"
	"log/slog"
	"time"

	"eventdesk/internal/domain"
)

// actionTemplates maps a lifecycle action to the email template set used for
// it. Actions without an entry are silently ignored so new lifecycle
// transitions can be introduced without breaking older dispatchers.
var actionTemplates = map[domain.Action]string{
	domain.ActionCreated: "event_created",
	domain.ActionUpdated: "event_updated",
	domain.ActionDeleted: "event_deleted",
}

type notificationDispatcher struct {
	logger     *slog.Logger
	mailer     domain.Mailer
	renderer   domain.EmailTemplateRenderer
	calendar   domain.CalendarSync
	adminEmail string
}

// NewNotificationDispatcher returns a dispatcher that emails the admin
// distribution address and syncs the external calendar on every lifecycle
// change. Capability failures are logged and swallowed.
func NewNotificationDispatcher(logger *slog.Logger, mailer domain.Mailer, renderer domain.EmailTemplateRenderer, calendar domain.CalendarSync, adminEmail string) domain.NotificationDispatcher {
	return &notificationDispatcher{
		logger:     logger,
		mailer:     mailer,
		renderer:   renderer,
		calendar:   calendar,
		adminEmail: adminEmail,
	}
}

// Notify renders the per-action subject and body, sends the email, and syncs
// the calendar. A failure in one capability does not stop the other, and no
// failure is ever returned to the caller.
func (d *notificationDispatcher) Notify(ctx context.Context, event *domain.Event, action domain.Action) {
	tmpl, ok := actionTemplates[action]
	if !ok {
		return
	}

	data := &domain.EventEmailData{
		ID:               event.ID,
		Title:            event.Title,
		Date:             event.EventDate.Format(time.RFC1123),
		LocationName:     event.LocationName,
		StaffMemberCount: event.StaffMemberCount,
	}
	subject, htmlBody, textBody, err := d.renderer.Render(tmpl, data)
	if err != nil {
		d.logger.Error("render notification email", "action", action, "event_id", event.ID, "err", err)
	} else if err := d.mailer.Send(d.adminEmail, subject, htmlBody, textBody); err != nil {
		d.logger.Error("notification capability failed", "capability", "email", "action", action, "event_id", event.ID, "err", err)
	}

	if err := d.calendar.Sync(ctx, event, action); err != nil {
		d.logger.Error("notification capability failed", "capability", "calendar", "action", action, "event_id", event.ID, "err", err)
	}
}
