// Package records implements the lookup-then-write workflow shared by every
// catalogue entity keyed by a single integer id.
package records

import (
	"context"

	"musicdb/internal/store"
)

// Table binds the store operations of one entity.
type Table[T, P any] struct {
	List   func(ctx context.Context, page store.Page) ([]T, error)
	Lookup func(ctx context.Context, id int64) (store.Found[T], bool, error)
	Create func(ctx context.Context, row T) (T, error)
	Update func(ctx context.Context, existing store.Found[T], patch P) (T, error)
	Delete func(ctx context.Context, existing store.Found[T]) (T, error)
}

// Service exposes id-addressed CRUD over a Table. Absent rows are reported
// as store.ErrNotFound.
type Service[T, P any] struct {
	table Table[T, P]
}

// New constructs a Service over table.
func New[T, P any](table Table[T, P]) *Service[T, P] {
	return &Service[T, P]{table: table}
}

// List returns one page of rows in id order.
func (s *Service[T, P]) List(ctx context.Context, page store.Page) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.table.List(ctx, page)
}

// Get returns the row with the given id.
func (s *Service[T, P]) Get(ctx context.Context, id int64) (T, error) {
	found, err := s.find(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}
	return found.Row(), nil
}

// Create inserts row and echoes it back.
func (s *Service[T, P]) Create(ctx context.Context, row T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return s.table.Create(ctx, row)
}

// Update merges patch into the row with the given id.
func (s *Service[T, P]) Update(ctx context.Context, id int64, patch P) (T, error) {
	found, err := s.find(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.table.Update(ctx, found, patch)
}

// Delete removes the row with the given id and returns it.
func (s *Service[T, P]) Delete(ctx context.Context, id int64) (T, error) {
	found, err := s.find(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.table.Delete(ctx, found)
}

func (s *Service[T, P]) find(ctx context.Context, id int64) (store.Found[T], error) {
	if err := ctx.Err(); err != nil {
		return store.Found[T]{}, err
	}

	found, ok, err := s.table.Lookup(ctx, id)
	if err != nil {
		return store.Found[T]{}, err
	}
	if !ok {
		return store.Found[T]{}, store.ErrNotFound
	}
	return found, nil
}
