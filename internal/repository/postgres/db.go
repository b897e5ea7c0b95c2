// Package postgres implements the domain repositories on PostgreSQL through database/sql and lib/pq.
// Every write runs in its own transaction; reads use a pooled connection that is returned
// to the pool when the call ends.
package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/lib/pq"

	"eventregistration/internal/domain"
)

// PostgreSQL SQLSTATE codes translated into domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
)

// PoolConfig holds connection pool limits.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open opens a connection pool to databaseURL and verifies it with a ping.
// Failures are reported as domain.ErrStorageUnavailable.
func Open(ctx context.Context, databaseURL string, cfg PoolConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: open: %w", domain.ErrStorageUnavailable, err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping: %w", domain.ErrStorageUnavailable, err)
	}
	return db, nil
}

// withTx runs fn inside a transaction scoped to a single operation.
// The transaction is rolled back on every path that does not reach Commit.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return translateError(err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return translateError(err)
	}
	return nil
}

// withConn acquires one connection from the pool for the duration of fn.
func withConn(ctx context.Context, db *sql.DB, fn func(conn *sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return translateError(err)
	}
	defer conn.Close()
	return fn(conn)
}

// translateError maps driver errors onto domain errors. Unknown errors are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, pqErr.Message)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrDanglingReference, pqErr.Message)
		case codeCheckViolation, codeNotNullViolation:
			return fmt.Errorf("%w: %s", domain.ErrValidation, pqErr.Message)
		}
		return err
	}
	var netErr *net.OpError
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	return err
}

// parseEventID converts the public event identifier into the BIGSERIAL key.
// Identifiers that are not integers cannot name any stored event.
func parseEventID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func formatEventID(id int64) string {
	return strconv.FormatInt(id, 10)
}
