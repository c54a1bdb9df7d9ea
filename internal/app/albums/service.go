package albums

import (
	"context"

	"musicdb/internal/app/records"
	"musicdb/internal/store"
)

// Store is the subset of the catalogue store used for albums.
type Store interface {
	ListAlbums(ctx context.Context, page store.Page) ([]store.Album, error)
	Album(ctx context.Context, id int64) (store.Found[store.Album], bool, error)
	CreateAlbum(ctx context.Context, row store.Album) (store.Album, error)
	UpdateAlbum(ctx context.Context, existing store.Found[store.Album], patch store.AlbumPatch) (store.Album, error)
	DeleteAlbum(ctx context.Context, existing store.Found[store.Album]) (store.Album, error)
}

// Service exposes albums by id.
type Service interface {
	List(ctx context.Context, page store.Page) ([]store.Album, error)
	Get(ctx context.Context, id int64) (store.Album, error)
	Create(ctx context.Context, row store.Album) (store.Album, error)
	Update(ctx context.Context, id int64, patch store.AlbumPatch) (store.Album, error)
	Delete(ctx context.Context, id int64) (store.Album, error)
}

// New constructs a Service backed by st.
func New(st Store) Service {
	return records.New(records.Table[store.Album, store.AlbumPatch]{
		List:   st.ListAlbums,
		Lookup: st.Album,
		Create: st.CreateAlbum,
		Update: st.UpdateAlbum,
		Delete: st.DeleteAlbum,
	})
}
