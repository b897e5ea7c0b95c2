package controllers

import (
	"log/slog"
	"net/http"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/domain"
)

// CreateEventRequest is the request body for POST /events. All fields are required.
type CreateEventRequest struct {
	Name           string `json:"name" validate:"required"`
	Location       string `json:"location" validate:"required"`
	StartTimestamp string `json:"start_timestamp" validate:"required"`
	EndTimestamp   string `json:"end_timestamp" validate:"required"`
}

// CreateEventResponse is the data of a successful POST /events.
type CreateEventResponse struct {
	EventID string `json:"event_id"`
}

// CreateEventSuccessResponse is the success response envelope for POST /events (201).
type CreateEventSuccessResponse struct {
	Data  CreateEventResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// EventSuccessResponse is the success response envelope for GET /event/{eventID} (200).
type EventSuccessResponse struct {
	Data  EventResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success response envelope for event lists (200).
type EventListSuccessResponse struct {
	Data  []EventResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

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

// ListEvents godoc
// @Summary List events
// @Description Returns every event ordered by id.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toEventResponses(events))
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event. The id is server-generated; timestamps are stored as given.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the new event id"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := domain.NewEvent(req.Name, req.Location, req.StartTimestamp, req.EndTimestamp)
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateEventResponse{EventID: event.ID})
}

// GetEvent godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /event/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toEventResponse(event))
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event. Attendances that reference it are kept.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /event/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteEvent(r.Context(), r.PathValue("eventID")); err != nil {
		writeServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, struct{}{})
}
