package domain

import "context"

// Attendance records that a user is registered for an event. (Email, EventID) is unique.
type Attendance struct {
	Email   string
	EventID string
}

// NewAttendance returns a new Attendance for the given pair.
func NewAttendance(email, eventID string) *Attendance {
	return &Attendance{Email: email, EventID: eventID}
}

// AttendanceRepository defines storage operations for attendances.
type AttendanceRepository interface {
	// Create returns ErrDanglingReference when the user or the event does not exist
	// and ErrDuplicate when the pair is already registered.
	Create(ctx context.Context, a *Attendance) error
	// Delete returns ErrNotFound when the pair is not registered.
	Delete(ctx context.Context, email, eventID string) error
	// ListAttendees returns ErrNotFound when the event does not exist.
	ListAttendees(ctx context.Context, eventID string) ([]*User, error)
	CountByEmail(ctx context.Context, email string) (int, error)
	ListEventsByEmail(ctx context.Context, email string) ([]*Event, error)
}

// RegistrationResult describes the outcome of a successful Register call.
type RegistrationResult struct {
	Attendance *Attendance
	// Created is false when the pair was already registered.
	Created bool
}

// AttendeeService orchestrates registration and unregistration of users to events.
type AttendeeService interface {
	// Register creates the user if needed, records the attendance and sends the operator
	// notice and the calendar invite. A repeated registration re-sends both messages.
	// When a message cannot be delivered the registration is kept and the returned error
	// wraps ErrNotification alongside a non-nil result.
	Register(ctx context.Context, email, eventID string) (*RegistrationResult, error)
	// Unregister removes the attendance and sends an operator notice.
	Unregister(ctx context.Context, email, eventID string) error
	ListUserEvents(ctx context.Context, email string) ([]*Event, error)
	CountAttendances(ctx context.Context, email string) (int, error)
	ListAttendees(ctx context.Context, eventID string) ([]*User, error)
}
