package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/domain"
)

// EventResponse is the wire representation of an event.
type EventResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	StartTimestamp string `json:"start_timestamp"`
	EndTimestamp   string `json:"end_timestamp"`
}

// UserResponse is the wire representation of a user.
type UserResponse struct {
	Email string `json:"email"`
}

func toEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Name:           e.Name,
		Location:       e.Location,
		StartTimestamp: e.StartTimestamp,
		EndTimestamp:   e.EndTimestamp,
	}
}

func toEventResponses(events []*domain.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}

func toUserResponses(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{Email: u.Email})
	}
	return out
}

// writeServiceError maps a domain error to a status code and error envelope.
// notFoundMsg is used for ErrNotFound. 5xx causes are logged.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrDanglingReference):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotification):
		logger.ErrorContext(r.Context(), "notification failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeNotificationFailed, "state was saved but the notification email could not be sent")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}
