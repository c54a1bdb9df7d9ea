package songs

import (
	"context"

	"musicdb/internal/app/records"
	"musicdb/internal/store"
)

// Store is the subset of the catalogue store used for songs.
type Store interface {
	ListSongs(ctx context.Context, page store.Page) ([]store.Song, error)
	Song(ctx context.Context, id int64) (store.Found[store.Song], bool, error)
	CreateSong(ctx context.Context, row store.Song) (store.Song, error)
	UpdateSong(ctx context.Context, existing store.Found[store.Song], patch store.SongPatch) (store.Song, error)
	DeleteSong(ctx context.Context, existing store.Found[store.Song]) (store.Song, error)
}

// Service exposes songs by id.
type Service interface {
	List(ctx context.Context, page store.Page) ([]store.Song, error)
	Get(ctx context.Context, id int64) (store.Song, error)
	Create(ctx context.Context, row store.Song) (store.Song, error)
	Update(ctx context.Context, id int64, patch store.SongPatch) (store.Song, error)
	Delete(ctx context.Context, id int64) (store.Song, error)
}

// New constructs a Service backed by st.
func New(st Store) Service {
	return records.New(records.Table[store.Song, store.SongPatch]{
		List:   st.ListSongs,
		Lookup: st.Song,
		Create: st.CreateSong,
		Update: st.UpdateSong,
		Delete: st.DeleteSong,
	})
}
