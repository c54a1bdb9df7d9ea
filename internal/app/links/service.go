// Package links exposes the association tables, whose rows are addressed by
// the pair of ids they connect.
package links

import (
	"context"

	"musicdb/internal/store"
)

// Table binds the store operations of one association.
type Table[T any] struct {
	List   func(ctx context.Context, page store.Page) ([]T, error)
	Lookup func(ctx context.Context, left, right int64) (store.Found[T], bool, error)
	Create func(ctx context.Context, link T) (T, error)
	Delete func(ctx context.Context, existing store.Found[T]) (T, error)
}

// Service lists, creates, reads and removes the rows of one association.
type Service[T any] struct {
	table Table[T]
}

// New constructs a Service over table.
func New[T any](table Table[T]) *Service[T] {
	return &Service[T]{table: table}
}

func (s *Service[T]) List(ctx context.Context, page store.Page) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.table.List(ctx, page)
}

// Get returns the link between left and right, or store.ErrNotFound.
func (s *Service[T]) Get(ctx context.Context, left, right int64) (T, error) {
	found, err := s.find(ctx, left, right)
	if err != nil {
		var zero T
		return zero, err
	}
	return found.Row(), nil
}

func (s *Service[T]) Create(ctx context.Context, link T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return s.table.Create(ctx, link)
}

// Delete removes the link between left and right and returns it.
func (s *Service[T]) Delete(ctx context.Context, left, right int64) (T, error) {
	found, err := s.find(ctx, left, right)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.table.Delete(ctx, found)
}

func (s *Service[T]) find(ctx context.Context, left, right int64) (store.Found[T], error) {
	if err := ctx.Err(); err != nil {
		return store.Found[T]{}, err
	}

	found, ok, err := s.table.Lookup(ctx, left, right)
	if err != nil {
		return store.Found[T]{}, err
	}
	if !ok {
		return store.Found[T]{}, store.ErrNotFound
	}
	return found, nil
}

// Store is the subset of the catalogue store holding the associations.
type Store interface {
	ListCollaborations(ctx context.Context, page store.Page) ([]store.Collaboration, error)
	Collaboration(ctx context.Context, artistID, songID int64) (store.Found[store.Collaboration], bool, error)
	CreateCollaboration(ctx context.Context, c store.Collaboration) (store.Collaboration, error)
	DeleteCollaboration(ctx context.Context, existing store.Found[store.Collaboration]) (store.Collaboration, error)

	ListFollows(ctx context.Context, page store.Page) ([]store.Follow, error)
	Follow(ctx context.Context, artistID, userID int64) (store.Found[store.Follow], bool, error)
	CreateFollow(ctx context.Context, f store.Follow) (store.Follow, error)
	DeleteFollow(ctx context.Context, existing store.Found[store.Follow]) (store.Follow, error)

	ListAffiliations(ctx context.Context, page store.Page) ([]store.Affiliation, error)
	Affiliation(ctx context.Context, artistID, labelID int64) (store.Found[store.Affiliation], bool, error)
	CreateAffiliation(ctx context.Context, a store.Affiliation) (store.Affiliation, error)
	DeleteAffiliation(ctx context.Context, existing store.Found[store.Affiliation]) (store.Affiliation, error)

	ListShares(ctx context.Context, page store.Page) ([]store.Share, error)
	Share(ctx context.Context, userID, playlistID int64) (store.Found[store.Share], bool, error)
	CreateShare(ctx context.Context, sh store.Share) (store.Share, error)
	DeleteShare(ctx context.Context, existing store.Found[store.Share]) (store.Share, error)

	ListHoldings(ctx context.Context, page store.Page) ([]store.Holds, error)
	Holds(ctx context.Context, songID, playlistID int64) (store.Found[store.Holds], bool, error)
	CreateHolds(ctx context.Context, h store.Holds) (store.Holds, error)
	DeleteHolds(ctx context.Context, existing store.Found[store.Holds]) (store.Holds, error)
}

// Collaborations links artists to the songs they play on.
func Collaborations(st Store) *Service[store.Collaboration] {
	return New(Table[store.Collaboration]{
		List:   st.ListCollaborations,
		Lookup: st.Collaboration,
		Create: st.CreateCollaboration,
		Delete: st.DeleteCollaboration,
	})
}

// Follows links users to the artists they follow.
func Follows(st Store) *Service[store.Follow] {
	return New(Table[store.Follow]{
		List:   st.ListFollows,
		Lookup: st.Follow,
		Create: st.CreateFollow,
		Delete: st.DeleteFollow,
	})
}

// Affiliations links artists to labels.
func Affiliations(st Store) *Service[store.Affiliation] {
	return New(Table[store.Affiliation]{
		List:   st.ListAffiliations,
		Lookup: st.Affiliation,
		Create: st.CreateAffiliation,
		Delete: st.DeleteAffiliation,
	})
}

// Shares links users to the playlists shared with them.
func Shares(st Store) *Service[store.Share] {
	return New(Table[store.Share]{
		List:   st.ListShares,
		Lookup: st.Share,
		Create: st.CreateShare,
		Delete: st.DeleteShare,
	})
}

// Holdings links playlists to the songs they contain.
func Holdings(st Store) *Service[store.Holds] {
	return New(Table[store.Holds]{
		List:   st.ListHoldings,
		Lookup: st.Holds,
		Create: st.CreateHolds,
		Delete: st.DeleteHolds,
	})
}
