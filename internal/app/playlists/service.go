package playlists

import (
	"context"

	"musicdb/internal/app/records"
	"musicdb/internal/store"
)

// Store is the subset of the catalogue store used for playlists.
type Store interface {
	ListPlaylists(ctx context.Context, page store.Page) ([]store.Playlist, error)
	Playlist(ctx context.Context, id int64) (store.Found[store.Playlist], bool, error)
	CreatePlaylist(ctx context.Context, row store.Playlist) (store.Playlist, error)
	UpdatePlaylist(ctx context.Context, existing store.Found[store.Playlist], patch store.PlaylistPatch) (store.Playlist, error)
	DeletePlaylist(ctx context.Context, existing store.Found[store.Playlist]) (store.Playlist, error)
}

// Service exposes playlists by id.
type Service interface {
	List(ctx context.Context, page store.Page) ([]store.Playlist, error)
	Get(ctx context.Context, id int64) (store.Playlist, error)
	Create(ctx context.Context, row store.Playlist) (store.Playlist, error)
	Update(ctx context.Context, id int64, patch store.PlaylistPatch) (store.Playlist, error)
	Delete(ctx context.Context, id int64) (store.Playlist, error)
}

// New constructs a Service backed by st.
func New(st Store) Service {
	return records.New(records.Table[store.Playlist, store.PlaylistPatch]{
		List:   st.ListPlaylists,
		Lookup: st.Playlist,
		Create: st.CreatePlaylist,
		Update: st.UpdatePlaylist,
		Delete: st.DeletePlaylist,
	})
}
