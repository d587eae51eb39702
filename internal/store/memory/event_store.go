package memory

import (
	"context"
	"sync"
	"time"

	"eventdesk/internal/domain"
)

// EventStore is an in-memory domain.EventRepository. A single mutex serializes
// all operations so no caller ever observes a partially applied mutation. IDs
// are assigned from a monotonic counter and never reused, even after a delete.
// State lives only in process memory and is lost on restart.
type EventStore struct {
	mu     sync.Mutex
	events map[int64]domain.Event
	order  []int64
	nextID int64
}

// NewEventStore returns an empty event store.
func NewEventStore() *EventStore {
	return &EventStore{
		events: make(map[int64]domain.Event),
		nextID: 1,
	}
}

// Create assigns the next unused ID and appends the event to the collection.
// The store keeps its own copy, so later mutation of the argument does not
// leak into the store.
func (s *EventStore) Create(ctx context.Context, event *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.nextID
	s.nextID++
	s.events[event.ID] = *event
	s.order = append(s.order, event.ID)
	return nil
}

// GetByID returns a copy of the stored event.
func (s *EventStore) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

// List returns copies of all stored events in insertion order.
func (s *EventStore) List(ctx context.Context) ([]*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Event, 0, len(s.order))
	for _, id := range s.order {
		e := s.events[id]
		out = append(out, &e)
	}
	return out, nil
}

// Update merges the provided fields over the existing record and refreshes
// UpdatedAt. ID and CreatedAt are untouched.
func (s *EventStore) Update(ctx context.Context, id int64, upd domain.EventUpdate) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.EventDate != nil {
		e.EventDate = upd.EventDate.UTC()
	}
	if upd.StaffMemberCount != nil {
		e.StaffMemberCount = *upd.StaffMemberCount
	}
	if upd.CoInfluencer != nil {
		e.CoInfluencer = *upd.CoInfluencer
	}
	if upd.LocationName != nil {
		e.LocationName = *upd.LocationName
	}
	if upd.LocationCoordinates != nil {
		e.LocationCoordinates = *upd.LocationCoordinates
	}
	e.UpdatedAt = time.Now().UTC()
	s.events[id] = e
	return &e, nil
}

// Delete removes the event and returns the removed record. The freed ID is
// never handed out again.
func (s *EventStore) Delete(ctx context.Context, id int64) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(s.events, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return &e, nil
}
