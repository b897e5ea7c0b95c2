package domain

import "context"

// User is identified by its email address alone. Users are created implicitly on first registration.
type User struct {
	Email string
}

// NewUser returns a new User for the given email.
func NewUser(email string) *User {
	return &User{Email: email}
}

// UserRepository defines the interface for user storage.
// Create returns ErrDuplicate when the email is already known.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
}
