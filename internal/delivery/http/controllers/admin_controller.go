package controllers

import (
	"log/slog"
	"net/http"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/domain"
)

// AttendeeListSuccessResponse is the success response envelope for GET /admin/{token}/{eventID} (200).
type AttendeeListSuccessResponse struct {
	Data  []UserResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AdminController serves the token-protected admin routes. The token itself is checked
// by middleware.RequireAdminToken before any handler runs.
type AdminController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAdminController(logger *slog.Logger, svc domain.AttendeeService) *AdminController {
	return &AdminController{
		Logger:  logger,
		Service: svc,
	}
}

// ListAttendees godoc
// @Summary List the attendees of an event
// @Description Requires the admin token as the first path segment after /admin.
// @Tags admin
// @Produce json
// @Param token path string true "Admin token"
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.AttendeeListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/{token}/{eventID} [get]
func (c *AdminController) ListAttendees(w http.ResponseWriter, r *http.Request) {
	users, err := c.Service.ListAttendees(r.Context(), r.PathValue("eventID"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toUserResponses(users))
}
