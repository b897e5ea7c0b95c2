package domain

import "context"

// Event is a scheduled gathering users can register for.
// Timestamps are opaque strings; no ordering between start and end is enforced.
type Event struct {
	ID             string
	Name           string
	Location       string
	StartTimestamp string
	EndTimestamp   string
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(name, location, startTimestamp, endTimestamp string) *Event {
	return &Event{
		Name:           name,
		Location:       location,
		StartTimestamp: startTimestamp,
		EndTimestamp:   endTimestamp,
	}
}

// Validate reports ErrValidation when any required field is empty.
func (e *Event) Validate() error {
	switch {
	case e.Name == "":
		return &FieldError{Field: "name"}
	case e.Location == "":
		return &FieldError{Field: "location"}
	case e.StartTimestamp == "":
		return &FieldError{Field: "start_timestamp"}
	case e.EndTimestamp == "":
		return &FieldError{Field: "end_timestamp"}
	}
	return nil
}

// FieldError names the missing field of a rejected write. It matches ErrValidation.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string { return e.Field + " is required" }

func (e *FieldError) Is(target error) bool { return target == ErrValidation }

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines event CRUD operations exposed to the HTTP layer.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
