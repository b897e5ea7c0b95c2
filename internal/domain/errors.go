package domain

import "errors"

// Sentinel errors shared by the storage layer, the registration workflow and the HTTP layer.
// Callers match them with errors.Is; lower layers wrap them with fmt.Errorf("...: %w", err).
var (
	// ErrValidation is returned when a required field is missing or empty.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert violates a uniqueness constraint.
	ErrDuplicate = errors.New("already exists")
	// ErrDanglingReference is returned when a write references a user or event that does not exist.
	ErrDanglingReference = errors.New("dangling reference")
	// ErrNotification is returned when an email could not be handed to the transport.
	ErrNotification = errors.New("notification failed")
	// ErrStorageUnavailable is returned when the database cannot be reached or initialised.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrUnauthorized is returned when the admin token does not match.
	ErrUnauthorized = errors.New("unauthorized")
)
