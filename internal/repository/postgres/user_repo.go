package postgres

import (
	"context"
	"database/sql"

	"eventregistration/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

// Create inserts the user. An already known email yields domain.ErrDuplicate;
// callers that only need the user to exist treat that as success.
func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.Email == "" {
		return &domain.FieldError{Field: "email"}
	}
	query := `INSERT INTO users (email) VALUES ($1)`
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, query, u.Email)
		return translateError(err)
	})
}
