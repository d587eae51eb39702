package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"eventdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger so tests don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// recordingMailer captures Send calls.
type recordingMailer struct {
	mu    sync.Mutex
	sends []sentMail
	err   error
}

type sentMail struct {
	to      string
	subject string
	html    string
	text    string
}

func (m *recordingMailer) Send(to, subject, html, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, sentMail{to, subject, html, text})
	return m.err
}

// failingMailer always fails.
type failingMailer struct{}

func (failingMailer) Send(to, subject, html, text string) error {
	return errors.New("smtp unreachable")
}

// recordingCalendar captures Sync calls.
type recordingCalendar struct {
	mu      sync.Mutex
	actions []domain.Action
	err     error
}

func (c *recordingCalendar) Sync(ctx context.Context, event *domain.Event, action domain.Action) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.actions = append(c.actions, action)
	return c.err
}

// failingCalendar always fails.
type failingCalendar struct{}

func (failingCalendar) Sync(ctx context.Context, event *domain.Event, action domain.Action) error {
	return errors.New("calendar api returned status: 503")
}

// stubRenderer returns predictable content keyed by template name.
type stubRenderer struct {
	err error
}

func (r *stubRenderer) Render(templateName string, data any) (string, string, string, error) {
	if r.err != nil {
		return "", "", "", r.err
	}
	return "subject:" + templateName, "<p>" + templateName + "</p>", "body:" + templateName, nil
}

func notifyEvent() *domain.Event {
	return &domain.Event{
		ID:           7,
		Title:        "Launch",
		EventDate:    time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		LocationName: "HQ",
	}
}

func TestNotificationDispatcher_Notify(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		action      domain.Action
		wantSubject string
	}{
		{"created", domain.ActionCreated, "subject:event_created"},
		{"updated", domain.ActionUpdated, "subject:event_updated"},
		{"deleted", domain.ActionDeleted, "subject:event_deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &recordingMailer{}
			cal := &recordingCalendar{}
			d := NewNotificationDispatcher(testLogger, mailer, &stubRenderer{}, cal, "admin@example.com")

			d.Notify(ctx, notifyEvent(), tt.action)

			require.Len(t, mailer.sends, 1)
			assert.Equal(t, "admin@example.com", mailer.sends[0].to)
			assert.Equal(t, tt.wantSubject, mailer.sends[0].subject)
			require.Len(t, cal.actions, 1)
			assert.Equal(t, tt.action, cal.actions[0])
		})
	}
}

func TestNotificationDispatcher_UnknownActionIsNoOp(t *testing.T) {
	mailer := &recordingMailer{}
	cal := &recordingCalendar{}
	d := NewNotificationDispatcher(testLogger, mailer, &stubRenderer{}, cal, "admin@example.com")

	d.Notify(context.Background(), notifyEvent(), domain.Action("ARCHIVED"))

	assert.Empty(t, mailer.sends)
	assert.Empty(t, cal.actions)
}

func TestNotificationDispatcher_SwallowsCapabilityFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("mail failure still syncs calendar", func(t *testing.T) {
		cal := &recordingCalendar{}
		d := NewNotificationDispatcher(testLogger, &failingMailer{}, &stubRenderer{}, cal, "admin@example.com")

		d.Notify(ctx, notifyEvent(), domain.ActionCreated)

		assert.Len(t, cal.actions, 1)
	})

	t.Run("calendar failure after successful mail", func(t *testing.T) {
		mailer := &recordingMailer{}
		d := NewNotificationDispatcher(testLogger, mailer, &stubRenderer{}, &failingCalendar{}, "admin@example.com")

		d.Notify(ctx, notifyEvent(), domain.ActionUpdated)

		assert.Len(t, mailer.sends, 1)
	})

	t.Run("render failure skips mail but still syncs calendar", func(t *testing.T) {
		mailer := &recordingMailer{}
		cal := &recordingCalendar{}
		d := NewNotificationDispatcher(testLogger, mailer, &stubRenderer{err: fmt.Errorf("template missing")}, cal, "admin@example.com")

		d.Notify(ctx, notifyEvent(), domain.ActionDeleted)

		assert.Empty(t, mailer.sends)
		assert.Len(t, cal.actions, 1)
	})
}
