package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventregistration/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	query := `
		INSERT INTO events (name, location, start_timestamp, end_timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		return translateError(tx.QueryRowContext(ctx, query, e.Name, e.Location, e.StartTimestamp, e.EndTimestamp).Scan(&id))
	})
	if err != nil {
		return err
	}
	e.ID = formatEventID(id)
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	eventID, ok := parseEventID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	query := `
		SELECT id, name, location, start_timestamp, end_timestamp
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, translateError(err)
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, name, location, start_timestamp, end_timestamp
		FROM events
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	eventID, ok := parseEventID(id)
	if !ok {
		return domain.ErrNotFound
	}
	query := `DELETE FROM events WHERE id = $1`
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, eventID)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var id int64
	if err := row.Scan(&id, &e.Name, &e.Location, &e.StartTimestamp, &e.EndTimestamp); err != nil {
		return nil, err
	}
	e.ID = formatEventID(id)
	return e, nil
}

func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return events, nil
}
