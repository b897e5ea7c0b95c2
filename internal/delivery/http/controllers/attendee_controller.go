package controllers

import (
	"log/slog"
	"net/http"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/domain"
)

// RegistrationResponse is the data of a successful registration.
type RegistrationResponse struct {
	Email   string `json:"email"`
	EventID string `json:"event_id"`
	Created bool   `json:"created"`
}

// RegisterSuccessResponse is the success response envelope for POST /register/{email}/{eventID} (200 or 201).
type RegisterSuccessResponse struct {
	Data  RegistrationResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// AttendanceCountResponse is the data of GET /users/{email}/count.
type AttendanceCountResponse struct {
	Email string `json:"email"`
	Count int    `json:"count"`
}

// AttendanceCountSuccessResponse is the success response envelope for GET /users/{email}/count (200).
type AttendanceCountSuccessResponse struct {
	Data  AttendanceCountResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a user for an event
// @Description Creates the user if needed and registers them. Idempotent: returns 201 when a new registration is created, 200 when already registered. The operator notice and the calendar invite are sent on every call.
// @Tags registrations
// @Produce json
// @Param email path string true "User email"
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.RegisterSuccessResponse "Already registered"
// @Success 201 {object} controllers.RegisterSuccessResponse "New registration created"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Failure 502 {object} helpers.APIResponse "error.code: notification_failed"
// @Router /register/{email}/{eventID} [post]
func (c *AttendeeController) Register(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	eventID := r.PathValue("eventID")

	// A notification failure after a saved registration is reported as 502.
	res, err := c.Service.Register(r.Context(), email, eventID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, RegistrationResponse{
		Email:   res.Attendance.Email,
		EventID: res.Attendance.EventID,
		Created: res.Created,
	})
}

// Unregister godoc
// @Summary Unregister a user from an event
// @Tags registrations
// @Produce json
// @Param email path string true "User email"
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Failure 502 {object} helpers.APIResponse "error.code: notification_failed"
// @Router /register/{email}/{eventID} [delete]
func (c *AttendeeController) Unregister(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Unregister(r.Context(), r.PathValue("email"), r.PathValue("eventID")); err != nil {
		writeServiceError(w, r, c.Logger, err, "registration not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, struct{}{})
}

// ListUserEvents godoc
// @Summary List the events a user is registered for
// @Description Unknown users get an empty list.
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{email} [get]
func (c *AttendeeController) ListUserEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListUserEvents(r.Context(), r.PathValue("email"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toEventResponses(events))
}

// CountAttendances godoc
// @Summary Count a user's registrations
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} controllers.AttendanceCountSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{email}/count [get]
func (c *AttendeeController) CountAttendances(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	n, err := c.Service.CountAttendances(r.Context(), email)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AttendanceCountResponse{Email: email, Count: n})
}
