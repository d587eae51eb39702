package domain

import (
	"context"
	"time"
)

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Event represents a scheduled admin event.
type Event struct {
	ID                  int64       `json:"id"`
	Title               string      `json:"title"`
	Description         string      `json:"description"`
	EventDate           time.Time   `json:"eventDate"`
	StaffMemberCount    int         `json:"staffMemberCount"`
	CoInfluencer        string      `json:"coInfluencer"`
	LocationName        string      `json:"locationName"`
	LocationCoordinates Coordinates `json:"locationCoordinates"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`
}

// EventUpdate carries the fields of a partial update. Nil fields are left
// untouched. ID and CreatedAt are server-owned and deliberately absent, so
// attempts to change them cannot be expressed.
type EventUpdate struct {
	Title               *string
	Description         *string
	EventDate           *time.Time
	StaffMemberCount    *int
	CoInfluencer        *string
	LocationName        *string
	LocationCoordinates *Coordinates
}

// EventRepository defines the interface for event storage. Implementations
// assign the ID on Create, refresh UpdatedAt on Update, and never reuse an
// ID, even after a delete.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, id int64, upd EventUpdate) (*Event, error)
	// Delete removes the event and returns the removed record.
	Delete(ctx context.Context, id int64) (*Event, error)
}

// EventService defines the application-level event operations.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventByID(ctx context.Context, id int64) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	UpdateEvent(ctx context.Context, id int64, upd EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id int64) (*Event, error)
}
