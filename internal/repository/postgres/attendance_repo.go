package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventregistration/internal/domain"
)

type attendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{
		DB: db,
	}
}

// Create inserts the attendance only when the event exists; the users foreign key covers the email.
func (r *attendanceRepository) Create(ctx context.Context, a *domain.Attendance) error {
	eventID, ok := parseEventID(a.EventID)
	if !ok {
		return fmt.Errorf("%w: event %q does not exist", domain.ErrDanglingReference, a.EventID)
	}
	query := `
		INSERT INTO attendings (email, event_id)
		SELECT $1, id FROM events WHERE id = $2
	`
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, a.Email, eventID)
		if err != nil {
			return translateError(err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return fmt.Errorf("%w: event %q does not exist", domain.ErrDanglingReference, a.EventID)
		}
		return nil
	})
}

func (r *attendanceRepository) Delete(ctx context.Context, email, eventID string) error {
	id, ok := parseEventID(eventID)
	if !ok {
		return domain.ErrNotFound
	}
	query := `DELETE FROM attendings WHERE email = $1 AND event_id = $2`
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, email, id)
		if err != nil {
			return translateError(err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// ListAttendees checks the event first so that an event without attendees yields an empty slice.
func (r *attendanceRepository) ListAttendees(ctx context.Context, eventID string) ([]*domain.User, error) {
	id, ok := parseEventID(eventID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	var users []*domain.User
	err := withConn(ctx, r.DB, func(conn *sql.Conn) error {
		var exists int
		err := conn.QueryRowContext(ctx, `SELECT 1 FROM events WHERE id = $1`, id).Scan(&exists)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return translateError(err)
		}

		rows, err := conn.QueryContext(ctx, `
			SELECT email
			FROM attendings
			WHERE event_id = $1
			ORDER BY email
		`, id)
		if err != nil {
			return translateError(err)
		}
		defer rows.Close()
		users = make([]*domain.User, 0)
		for rows.Next() {
			u := &domain.User{}
			if err := rows.Scan(&u.Email); err != nil {
				return err
			}
			users = append(users, u)
		}
		return translateError(rows.Err())
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *attendanceRepository) CountByEmail(ctx context.Context, email string) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM attendings WHERE email = $1`, email).Scan(&n)
	if err != nil {
		return 0, translateError(err)
	}
	return n, nil
}

func (r *attendanceRepository) ListEventsByEmail(ctx context.Context, email string) ([]*domain.Event, error) {
	query := `
		SELECT e.id, e.name, e.location, e.start_timestamp, e.end_timestamp
		FROM events e
		JOIN attendings a ON a.event_id = e.id
		WHERE a.email = $1
		ORDER BY e.id
	`
	rows, err := r.DB.QueryContext(ctx, query, email)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()
	return scanEvents(rows)
}
