package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"eventdesk/internal/domain"
)

// SyncConfig holds configuration for the calendar capability.
type SyncConfig struct {
	Provider     string
	ClientID     string
	ClientSecret string
	TokenFile    string
	CalendarID   string
}

// NewCalendarSync creates a CalendarSync from config. Provider "google" pushes
// lifecycle changes to the Google Calendar API; "noop" or unknown only logs.
func NewCalendarSync(ctx context.Context, logger *slog.Logger, cfg SyncConfig) (domain.CalendarSync, error) {
	switch cfg.Provider {
	case "google":
		token, err := tokenFromFile(cfg.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("could not load calendar token: %w. Run the oauth flow first", err)
		}
		oauthCfg := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       []string{calendar.CalendarEventsScope},
			Endpoint:     google.Endpoint,
		}
		service, err := calendar.NewService(ctx, option.WithHTTPClient(oauthCfg.Client(ctx, token)))
		if err != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", err)
		}
		calendarID := cfg.CalendarID
		if calendarID == "" {
			calendarID = "primary"
		}
		return &googleCalendarSync{
			service:    service,
			logger:     logger,
			calendarID: calendarID,
			googleIDs:  make(map[int64]string),
		}, nil
	case "noop":
		return &noopCalendarSync{logger: logger}, nil
	default:
		logger.Warn("unknown calendar provider, using noop", "provider", cfg.Provider)
		return &noopCalendarSync{logger: logger}, nil
	}
}

type googleCalendarSync struct {
	service    *calendar.Service
	logger     *slog.Logger
	calendarID string

	// googleIDs maps event ids to the Google Calendar event ids returned on
	// insert, so updates and deletes can address the right remote entry. The
	// map lives only in process memory, matching the store it mirrors.
	mu        sync.Mutex
	googleIDs map[int64]string
}

// Sync inserts, updates, or removes the remote calendar entry for the event.
func (g *googleCalendarSync) Sync(ctx context.Context, event *domain.Event, action domain.Action) error {
	switch action {
	case domain.ActionCreated:
		return g.insert(ctx, event)
	case domain.ActionUpdated:
		g.mu.Lock()
		googleID, ok := g.googleIDs[event.ID]
		g.mu.Unlock()
		if !ok {
			// No remote entry yet (e.g. process restarted); create one.
			return g.insert(ctx, event)
		}
		if _, err := g.service.Events.Update(g.calendarID, googleID, toGoogleEvent(event)).Context(ctx).Do(); err != nil {
			return fmt.Errorf("update calendar event: %w", err)
		}
		g.logger.Info("calendar event updated", "event_id", event.ID, "google_id", googleID)
		return nil
	case domain.ActionDeleted:
		g.mu.Lock()
		googleID, ok := g.googleIDs[event.ID]
		delete(g.googleIDs, event.ID)
		g.mu.Unlock()
		if !ok {
			return nil
		}
		if err := g.service.Events.Delete(g.calendarID, googleID).Context(ctx).Do(); err != nil {
			return fmt.Errorf("delete calendar event: %w", err)
		}
		g.logger.Info("calendar event deleted", "event_id", event.ID, "google_id", googleID)
		return nil
	default:
		return nil
	}
}

func (g *googleCalendarSync) insert(ctx context.Context, event *domain.Event) error {
	created, err := g.service.Events.Insert(g.calendarID, toGoogleEvent(event)).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("insert calendar event: %w", err)
	}
	g.mu.Lock()
	g.googleIDs[event.ID] = created.Id
	g.mu.Unlock()
	g.logger.Info("calendar event created", "event_id", event.ID, "google_id", created.Id)
	return nil
}

// toGoogleEvent converts an event to the Google Calendar representation. The
// dashboard renders one-hour slots, so the remote entry does too.
func toGoogleEvent(e *domain.Event) *calendar.Event {
	start := e.EventDate
	end := start.Add(time.Hour)
	return &calendar.Event{
		Summary:     e.Title,
		Description: e.Description,
		Location:    e.LocationName,
		Start:       &calendar.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)},
	}
}

// tokenFromFile retrieves an OAuth token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

type noopCalendarSync struct {
	logger *slog.Logger
}

func (n *noopCalendarSync) Sync(ctx context.Context, event *domain.Event, action domain.Action) error {
	n.logger.Info("calendar sync skipped (noop)", "event_id", event.ID, "action", action)
	return nil
}
