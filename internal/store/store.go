package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

var (
	// ErrNotFound signals that the row addressed by a write no longer exists.
	ErrNotFound = errors.New("row not found")
	// ErrDuplicateKey indicates a primary key or unique column collision.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrMissingReference indicates a foreign key pointing at a row that does not exist.
	ErrMissingReference = errors.New("referenced row does not exist")
	// ErrReferenced indicates a delete blocked by rows that still reference the target.
	ErrReferenced = errors.New("row is still referenced")
)

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"

	// DefaultLimit is the page size used when the caller does not provide one.
	DefaultLimit = 100
)

// Store provides persistence for the music catalogue backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Page selects a slice of a table in primary key order.
type Page struct {
	Skip  int
	Limit int
}

// Found is a row that was read back from the store. Update and delete
// operations only accept a Found value, so a row must be looked up before it
// can be changed. The row may still disappear between the lookup and the write.
type Found[T any] struct {
	row T
}

// Row returns the row as it was when it was looked up.
func (f Found[T]) Row() T {
	return f.row
}

type rowScanner interface {
	Scan(dest ...any) error
}

func list[T any](ctx context.Context, db *sql.DB, query string, page Page, scan func(rowScanner) (T, error)) ([]T, error) {
	limit := page.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := db.QueryContext(ctx, query, limit, page.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func lookup[T any](ctx context.Context, db *sql.DB, query string, scan func(rowScanner) (T, error), args ...any) (Found[T], bool, error) {
	row, err := scan(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Found[T]{}, false, nil
		}
		return Found[T]{}, false, err
	}
	return Found[T]{row: row}, true, nil
}

// exec runs a single statement in its own transaction and reports the number
// of affected rows.
func (s *Store) exec(ctx context.Context, query string, args ...any) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return affected, nil
}

// insert runs an INSERT and classifies constraint violations.
func (s *Store) insert(ctx context.Context, op, query string, args ...any) error {
	if _, err := s.exec(ctx, query, args...); err != nil {
		return classify(op, err, ErrMissingReference)
	}
	return nil
}

// update runs an UPDATE that must touch exactly the looked-up row.
func (s *Store) update(ctx context.Context, op, query string, args ...any) error {
	affected, err := s.exec(ctx, query, args...)
	if err != nil {
		return classify(op, err, ErrMissingReference)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// remove runs a DELETE that must touch exactly the looked-up row.
func (s *Store) remove(ctx context.Context, op, query string, args ...any) error {
	affected, err := s.exec(ctx, query, args...)
	if err != nil {
		return classify(op, err, ErrReferenced)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// classify wraps err with the sentinel matching its SQLSTATE. Foreign key
// violations map to fkErr since their meaning depends on the statement.
func classify(op string, err error, fkErr error) error {
	switch sqlState(err) {
	case sqlStateUniqueViolation:
		return fmt.Errorf("%s: %w: %w", op, ErrDuplicateKey, err)
	case sqlStateForeignKeyViolation:
		return fmt.Errorf("%s: %w: %w", op, fkErr, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
