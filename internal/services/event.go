package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventdesk/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	notifier       domain.NotificationDispatcher
	contextTimeout time.Duration
}

// NewEventService returns an EventService backed by the given repository.
// Every successful mutation triggers the notifier on its own goroutine;
// notifier failures never surface to callers.
func NewEventService(eventRepo domain.EventRepository, notifier domain.NotificationDispatcher, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		notifier:       notifier,
		contextTimeout: timeout,
	}
}

// CreateEvent validates required fields, applies defaults, stamps both
// timestamps, and persists the event. The repository assigns the ID.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if event.EventDate.IsZero() {
		return fmt.Errorf("%w: eventDate is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(event.LocationName) == "" {
		return fmt.Errorf("%w: locationName is required", domain.ErrInvalidInput)
	}
	if event.StaffMemberCount < 0 {
		return fmt.Errorf("%w: staffMemberCount must be non-negative", domain.ErrInvalidInput)
	}

	if event.CoInfluencer == "" {
		event.CoInfluencer = "None"
	}
	event.EventDate = event.EventDate.UTC()

	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	s.notifyAsync(event, domain.ActionCreated)
	return nil
}

func (s *eventService) GetEventByID(ctx context.Context, id int64) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// UpdateEvent merges the provided fields over the existing record. Unset
// fields keep their prior value; UpdatedAt is refreshed by the repository.
func (s *eventService) UpdateEvent(ctx context.Context, id int64, upd domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
	}
	if upd.LocationName != nil && strings.TrimSpace(*upd.LocationName) == "" {
		return nil, fmt.Errorf("%w: locationName cannot be empty", domain.ErrInvalidInput)
	}
	if upd.StaffMemberCount != nil && *upd.StaffMemberCount < 0 {
		return nil, fmt.Errorf("%w: staffMemberCount must be non-negative", domain.ErrInvalidInput)
	}

	updated, err := s.eventRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.notifyAsync(updated, domain.ActionUpdated)
	return updated, nil
}

// DeleteEvent removes the event and returns the removed record so callers
// can report what was deleted.
func (s *eventService) DeleteEvent(ctx context.Context, id int64) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	deleted, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete event: %w", err)
	}

	s.notifyAsync(deleted, domain.ActionDeleted)
	return deleted, nil
}

// notifyAsync hands a copy of the event to the dispatcher on a fresh
// goroutine with a fresh context, so slow or failing integrations cannot
// block the request path or be cancelled by it.
func (s *eventService) notifyAsync(event *domain.Event, action domain.Action) {
	e := *event
	go s.notifier.Notify(context.Background(), &e, action)
}
