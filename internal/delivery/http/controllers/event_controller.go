package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

// eventDateLayouts are the accepted eventDate input formats, most specific
// first. The dashboard's datetime-local inputs omit seconds and zone.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseEventDate parses an ISO-8601-flavoured timestamp and normalizes it to UTC.
func parseEventDate(raw string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("eventDate %q is not an ISO-8601 timestamp", raw)
}

// parseID parses the {id} path value as a positive integer.
func parseID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("id %q must be a positive integer", raw)
	}
	return id, nil
}

func validateCoordinates(c *domain.Coordinates) []string {
	var errs []string
	if c == nil {
		return nil
	}
	if c.Lat < -90 || c.Lat > 90 {
		errs = append(errs, "locationCoordinates.lat must be between -90 and 90")
	}
	if c.Lng < -180 || c.Lng > 180 {
		errs = append(errs, "locationCoordinates.lng must be between -180 and 180")
	}
	return errs
}

// CreateEventRequest is the request body for POST /events. id and timestamps
// are server-generated and not accepted here.
type CreateEventRequest struct {
	Title               string              `json:"title"`
	Description         string              `json:"description"`
	EventDate           string              `json:"eventDate"`
	StaffMemberCount    int                 `json:"staffMemberCount"`
	CoInfluencer        string              `json:"coInfluencer"`
	LocationName        string              `json:"locationName"`
	LocationCoordinates *domain.Coordinates `json:"locationCoordinates"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(c.EventDate) == "" {
		errs = append(errs, "eventDate is required")
	}
	if strings.TrimSpace(c.LocationName) == "" {
		errs = append(errs, "locationName is required")
	}
	if c.StaffMemberCount < 0 {
		errs = append(errs, "staffMemberCount must be non-negative")
	}
	errs = append(errs, validateCoordinates(c.LocationCoordinates)...)
	return errs
}

// UpdateEventRequest is the request body for PUT /events/{id}. All fields are
// optional; omitted fields are unchanged. ID, CreatedAt, and UpdatedAt are
// accepted so round-tripped records decode cleanly, but they are server-owned
// and never applied.
type UpdateEventRequest struct {
	ID                  *int64              `json:"id"`
	Title               *string             `json:"title"`
	Description         *string             `json:"description"`
	EventDate           *string             `json:"eventDate"`
	StaffMemberCount    *int                `json:"staffMemberCount"`
	CoInfluencer        *string             `json:"coInfluencer"`
	LocationName        *string             `json:"locationName"`
	LocationCoordinates *domain.Coordinates `json:"locationCoordinates"`
	CreatedAt           *time.Time          `json:"createdAt"`
	UpdatedAt           *time.Time          `json:"updatedAt"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errs = append(errs, "title cannot be empty")
	}
	if u.LocationName != nil && strings.TrimSpace(*u.LocationName) == "" {
		errs = append(errs, "locationName cannot be empty")
	}
	if u.StaffMemberCount != nil && *u.StaffMemberCount < 0 {
		errs = append(errs, "staffMemberCount must be non-negative")
	}
	errs = append(errs, validateCoordinates(u.LocationCoordinates)...)
	return errs
}

// EventResponse is the success payload carrying a single event.
type EventResponse struct {
	Message string        `json:"message"`
	Event   *domain.Event `json:"event"`
}

// ListEventsResponse is the success payload for GET /events.
type ListEventsResponse struct {
	Message string          `json:"message"`
	Events  []*domain.Event `json:"events"`
}

// DeleteEventResponse is the success payload for DELETE /events/{id}. The
// removed record is returned under a distinct field name.
type DeleteEventResponse struct {
	Message      string        `json:"message"`
	DeletedEvent *domain.Event `json:"deletedEvent"`
}

// EventController handles the event CRUD endpoints.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create a scheduled event. id, createdAt and updatedAt are server-generated. Email and calendar integrations are triggered best-effort after the write.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventResponse "event contains the created record"
// @Failure 400 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	event := &domain.Event{
		Title:            req.Title,
		Description:      req.Description,
		EventDate:        eventDate,
		StaffMemberCount: req.StaffMemberCount,
		CoInfluencer:     req.CoInfluencer,
		LocationName:     req.LocationName,
	}
	if req.LocationCoordinates != nil {
		event.LocationCoordinates = *req.LocationCoordinates
	}
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Internal server error during event creation.")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, EventResponse{
		Message: "Event created successfully and integrations triggered.",
		Event:   event,
	})
}

// ListEvents godoc
// @Summary List all events
// @Description Returns every event in the store. Display ordering is a client concern.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListEventsResponse "events is an array of records"
// @Failure 500 {object} helpers.MessageResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Internal server error while listing events.")
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, ListEventsResponse{
		Message: "Events retrieved successfully.",
		Events:  events,
	})
}

// GetEvent godoc
// @Summary Get an event by id
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Event not found.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Internal server error while fetching the event.")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{
		Message: "Event retrieved successfully.",
		Event:   event,
	})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Merges the provided fields over the existing record. Omitted fields are unchanged; id and createdAt are immutable. Integrations are triggered best-effort after the write.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event id"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.EventResponse "event contains the updated record"
// @Failure 400 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := domain.EventUpdate{
		Title:               req.Title,
		Description:         req.Description,
		StaffMemberCount:    req.StaffMemberCount,
		CoInfluencer:        req.CoInfluencer,
		LocationName:        req.LocationName,
		LocationCoordinates: req.LocationCoordinates,
	}
	if req.EventDate != nil {
		eventDate, err := parseEventDate(*req.EventDate)
		if err != nil {
			helpers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		upd.EventDate = &eventDate
	}
	event, err := c.Service.UpdateEvent(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Event not found.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Internal server error during event update.")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{
		Message: "Event updated successfully and notification triggered.",
		Event:   event,
	})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes the event and returns the removed record. Integrations are triggered best-effort after the write.
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} controllers.DeleteEventResponse "deletedEvent contains the removed record"
// @Failure 400 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	deleted, err := c.Service.DeleteEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Event not found.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Internal server error during event deletion.")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, DeleteEventResponse{
		Message:      "Event deleted successfully and notification triggered.",
		DeletedEvent: deleted,
	})
}
