package artists

import (
	"context"

	"musicdb/internal/app/records"
	"musicdb/internal/store"
)

// Store is the subset of the catalogue store used for artists.
type Store interface {
	ListArtists(ctx context.Context, page store.Page) ([]store.Artist, error)
	Artist(ctx context.Context, id int64) (store.Found[store.Artist], bool, error)
	ArtistByName(ctx context.Context, name string) (store.Found[store.Artist], bool, error)
	CreateArtist(ctx context.Context, a store.Artist) (store.Artist, error)
	UpdateArtist(ctx context.Context, existing store.Found[store.Artist], patch store.ArtistPatch) (store.Artist, error)
	DeleteArtist(ctx context.Context, existing store.Found[store.Artist]) (store.Artist, error)
}

// Service provides artist-centric operations.
type Service interface {
	List(ctx context.Context, page store.Page) ([]store.Artist, error)
	Get(ctx context.Context, id int64) (store.Artist, error)
	FindByName(ctx context.Context, name string) (store.Artist, error)
	Create(ctx context.Context, a store.Artist) (store.Artist, error)
	Update(ctx context.Context, id int64, patch store.ArtistPatch) (store.Artist, error)
	Delete(ctx context.Context, id int64) (store.Artist, error)
}

type service struct {
	*records.Service[store.Artist, store.ArtistPatch]
	store Store
}

// New constructs an artist Service backed by st.
func New(st Store) Service {
	return &service{
		Service: records.New(records.Table[store.Artist, store.ArtistPatch]{
			List:   st.ListArtists,
			Lookup: st.Artist,
			Create: st.CreateArtist,
			Update: st.UpdateArtist,
			Delete: st.DeleteArtist,
		}),
		store: st,
	}
}

// FindByName returns the first artist, by id, whose name is exactly name.
func (s *service) FindByName(ctx context.Context, name string) (store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return store.Artist{}, err
	}

	found, ok, err := s.store.ArtistByName(ctx, name)
	if err != nil {
		return store.Artist{}, err
	}
	if !ok {
		return store.Artist{}, store.ErrNotFound
	}
	return found.Row(), nil
}
