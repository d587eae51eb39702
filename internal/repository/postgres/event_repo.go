package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventdesk/internal/domain"
)

const eventColumns = "id, title, description, event_date, staff_member_count, co_influencer, location_name, location_lat, location_lng, created_at, updated_at"

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns an EventRepository backed by PostgreSQL. The
// events table uses a BIGSERIAL id, so ids are monotonic and never reused.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, event_date, staff_member_count, co_influencer, location_name, location_lat, location_lng, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.EventDate, e.StaffMemberCount, e.CoInfluencer,
		e.LocationName, e.LocationCoordinates.Lat, e.LocationCoordinates.Lng,
		e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.EventDate, &e.StaffMemberCount,
		&e.CoInfluencer, &e.LocationName, &e.LocationCoordinates.Lat, &e.LocationCoordinates.Lng,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY created_at DESC`, eventColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.EventDate, &e.StaffMemberCount,
			&e.CoInfluencer, &e.LocationName, &e.LocationCoordinates.Lat, &e.LocationCoordinates.Lng,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, id int64, upd domain.EventUpdate) (*domain.Event, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if upd.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", n))
		args = append(args, *upd.Title)
		n++
	}
	if upd.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, *upd.Description)
		n++
	}
	if upd.EventDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("event_date = $%d", n))
		args = append(args, upd.EventDate.UTC())
		n++
	}
	if upd.StaffMemberCount != nil {
		setClauses = append(setClauses, fmt.Sprintf("staff_member_count = $%d", n))
		args = append(args, *upd.StaffMemberCount)
		n++
	}
	if upd.CoInfluencer != nil {
		setClauses = append(setClauses, fmt.Sprintf("co_influencer = $%d", n))
		args = append(args, *upd.CoInfluencer)
		n++
	}
	if upd.LocationName != nil {
		setClauses = append(setClauses, fmt.Sprintf("location_name = $%d", n))
		args = append(args, *upd.LocationName)
		n++
	}
	if upd.LocationCoordinates != nil {
		setClauses = append(setClauses, fmt.Sprintf("location_lat = $%d, location_lng = $%d", n, n+1))
		args = append(args, upd.LocationCoordinates.Lat, upd.LocationCoordinates.Lng)
		n += 2
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, eventColumns)
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&e.ID, &e.Title, &e.Description, &e.EventDate, &e.StaffMemberCount,
		&e.CoInfluencer, &e.LocationName, &e.LocationCoordinates.Lat, &e.LocationCoordinates.Lng,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) (*domain.Event, error) {
	query := fmt.Sprintf(`DELETE FROM events WHERE id = $1 RETURNING %s`, eventColumns)
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.EventDate, &e.StaffMemberCount,
		&e.CoInfluencer, &e.LocationName, &e.LocationCoordinates.Lat, &e.LocationCoordinates.Lng,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}
