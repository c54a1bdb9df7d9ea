package httpapi

import (
	"github.com/jackc/pgx/v5/pgtype"

	"musicdb/internal/store"
)

// Request bodies. Ids are caller-assigned, so they are pointers: zero is a
// valid id and only a missing one is rejected.

type artistCreate struct {
	ID          *int64  `json:"id" validate:"required"`
	Name        string  `json:"nom" validate:"required"`
	FirstName   *string `json:"prenom"`
	Nationality *string `json:"nationalite"`
	Genre       string  `json:"genre" validate:"required"`
	Biography   *string `json:"biographie"`
}

func (b artistCreate) row() store.Artist {
	return store.Artist{
		ID:          *b.ID,
		Name:        b.Name,
		FirstName:   b.FirstName,
		Nationality: b.Nationality,
		Genre:       b.Genre,
		Biography:   b.Biography,
	}
}

type artistUpdate struct {
	Name        *string `json:"nom"`
	FirstName   *string `json:"prenom"`
	Nationality *string `json:"nationalite"`
	Genre       *string `json:"genre"`
	Biography   *string `json:"biographie"`
}

func (b artistUpdate) patch() store.ArtistPatch {
	return store.ArtistPatch(b)
}

type userCreate struct {
	ID        *int64      `json:"id" validate:"required"`
	Name      string      `json:"nom" validate:"required"`
	FirstName *string     `json:"prenom"`
	Birthday  pgtype.Date `json:"birthday"`
	Email     string      `json:"email" validate:"required,email"`
	Address   *string     `json:"address"`
}

func (b userCreate) row() store.User {
	return store.User{
		ID:        *b.ID,
		Name:      b.Name,
		FirstName: b.FirstName,
		Birthday:  b.Birthday,
		Email:     b.Email,
		Address:   b.Address,
	}
}

type userUpdate struct {
	Name      *string      `json:"nom"`
	FirstName *string      `json:"prenom"`
	Birthday  *pgtype.Date `json:"birthday"`
	Email     *string      `json:"email" validate:"omitempty,email"`
	Address   *string      `json:"address"`
}

func (b userUpdate) patch() store.UserPatch {
	return store.UserPatch(b)
}

type labelCreate struct {
	ID        *int64      `json:"id" validate:"required"`
	Name      string      `json:"nom" validate:"required"`
	Country   *string     `json:"pays"`
	FoundedOn pgtype.Date `json:"date_de_creation"`
}

func (b labelCreate) row() store.Label {
	return store.Label{ID: *b.ID, Name: b.Name, Country: b.Country, FoundedOn: b.FoundedOn}
}

type labelUpdate struct {
	Name      *string      `json:"nom"`
	Country   *string      `json:"pays"`
	FoundedOn *pgtype.Date `json:"date_de_creation"`
}

func (b labelUpdate) patch() store.LabelPatch {
	return store.LabelPatch(b)
}

type albumCreate struct {
	ID       *int64 `json:"id" validate:"required"`
	ArtistID *int64 `json:"id_artiste"`
	Title    string `json:"titre" validate:"required"`
	Year     *int   `json:"annee" validate:"required"`
}

func (b albumCreate) row() store.Album {
	return store.Album{ID: *b.ID, ArtistID: b.ArtistID, Title: b.Title, Year: *b.Year}
}

type albumUpdate struct {
	ArtistID *int64  `json:"id_artiste"`
	Title    *string `json:"titre"`
	Year     *int    `json:"annee"`
}

func (b albumUpdate) patch() store.AlbumPatch {
	return store.AlbumPatch(b)
}

type songCreate struct {
	ID          *int64      `json:"id" validate:"required"`
	AlbumID     *int64      `json:"id_album"`
	Title       string      `json:"titre" validate:"required"`
	ReleaseDate pgtype.Date `json:"date_de_sortie" validate:"required"`
}

func (b songCreate) row() store.Song {
	return store.Song{ID: *b.ID, AlbumID: b.AlbumID, Title: b.Title, ReleaseDate: b.ReleaseDate}
}

type songUpdate struct {
	AlbumID     *int64       `json:"id_album"`
	Title       *string      `json:"titre"`
	ReleaseDate *pgtype.Date `json:"date_de_sortie"`
}

func (b songUpdate) patch() store.SongPatch {
	return store.SongPatch(b)
}

type playlistCreate struct {
	ID          *int64  `json:"id" validate:"required"`
	UserID      *int64  `json:"id_user"`
	Title       string  `json:"titre" validate:"required"`
	Description *string `json:"description"`
}

func (b playlistCreate) row() store.Playlist {
	return store.Playlist{ID: *b.ID, UserID: b.UserID, Title: b.Title, Description: b.Description}
}

type playlistUpdate struct {
	UserID      *int64  `json:"id_user"`
	Title       *string `json:"titre"`
	Description *string `json:"description"`
}

func (b playlistUpdate) patch() store.PlaylistPatch {
	return store.PlaylistPatch(b)
}
