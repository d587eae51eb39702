package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent(title string) *domain.Event {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Event{
		Title:        title,
		Description:  "",
		EventDate:    now,
		CoInfluencer: "None",
		LocationName: "HQ",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestEventStore_Create_AssignsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	store := NewEventStore()

	seen := make(map[int64]struct{})
	for i := 0; i < 10; i++ {
		e := newTestEvent("Launch")
		require.NoError(t, store.Create(ctx, e))
		_, dup := seen[e.ID]
		require.False(t, dup, "id %d assigned twice", e.ID)
		seen[e.ID] = struct{}{}
	}

	events, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 10)
}

func TestEventStore_IDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	store := NewEventStore()

	first := newTestEvent("First")
	require.NoError(t, store.Create(ctx, first))

	_, err := store.Delete(ctx, first.ID)
	require.NoError(t, err)

	second := newTestEvent("Second")
	require.NoError(t, store.Create(ctx, second))
	assert.Greater(t, second.ID, first.ID, "freed id must not be reassigned")
}

func TestEventStore_GetByID(t *testing.T) {
	ctx := context.Background()
	store := NewEventStore()

	e := newTestEvent("Launch")
	require.NoError(t, store.Create(ctx, e))

	got, err := store.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.Title, got.Title)

	_, err = store.GetByID(ctx, 999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewEventStore()

	e := newTestEvent("Launch")
	require.NoError(t, store.Create(ctx, e))

	got, err := store.GetByID(ctx, e.ID)
	require.NoError(t, err)
	got.Title = "Tampered"

	again, err := store.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch", again.Title, "mutating a returned event must not change the store")

	// Mutating the argument after Create must not leak into the store either.
	e.Title = "Tampered too"
	again, err = store.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch", again.Title)
}

func TestEventStore_Update(t *testing.T) {
	ctx := context.Background()
	store := NewEventStore()

	e := newTestEvent("Launch")
	require.NoError(t, store.Create(ctx, e))
	createdAt := e.CreatedAt

	staff := 5
	updated, err := store.Update(ctx, e.ID, domain.EventUpdate{StaffMemberCount: &staff})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.StaffMemberCount)
	assert.Equal(t, "Launch", updated.Title, "unset fields stay untouched")
	assert.Equal(t, e.ID, updated.ID)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(e.UpdatedAt), "updatedAt must be refreshed")
}

func TestEventStore_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewEventStore()

	e := newTestEvent("Launch")
	require.NoError(t, store.Create(ctx, e))

	title := "New"
	_, err := store.Update(ctx, 42, domain.EventUpdate{Title: &title})
	require.ErrorIs(t, err, domain.ErrNotFound)

	events, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Launch", events[0].Title, "store must be unchanged after a failed update")
}

func TestEventStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewEventStore()

	e := newTestEvent("Launch")
	require.NoError(t, store.Create(ctx, e))

	deleted, err := store.Delete(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, deleted.ID)
	assert.Equal(t, "Launch", deleted.Title)

	events, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	_, err = store.GetByID(ctx, e.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventStore_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewEventStore()

	e := newTestEvent("Launch")
	require.NoError(t, store.Create(ctx, e))

	_, err := store.Delete(ctx, 42)
	require.True(t, errors.Is(err, domain.ErrNotFound))

	events, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1, "a failed delete must leave the store size unchanged")
}
