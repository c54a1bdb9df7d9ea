package store

import (
	"context"
	"fmt"
)

// Album is a row of tb_album.
type Album struct {
	ID       int64  `json:"id"`
	ArtistID *int64 `json:"id_artiste"`
	Title    string `json:"titre"`
	Year     int    `json:"annee"`
}

// AlbumPatch carries the fields of a partial album update.
type AlbumPatch struct {
	ArtistID *int64
	Title    *string
	Year     *int
}

// Apply returns a copy of a with every non-nil patch field written over it.
func (p AlbumPatch) Apply(a Album) Album {
	if p.ArtistID != nil {
		a.ArtistID = p.ArtistID
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Year != nil {
		a.Year = *p.Year
	}
	return a
}

// ListAlbums returns one page of albums ordered by id.
func (s *Store) ListAlbums(ctx context.Context, page Page) ([]Album, error) {
	albums, err := list(ctx, s.db, `
		SELECT ab_id, ab_id_artiste, ab_titre, ab_annee
		FROM tb_album
		ORDER BY ab_id
		LIMIT $1 OFFSET $2
	`, page, scanAlbum)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	return albums, nil
}

// Album looks an album up by id.
func (s *Store) Album(ctx context.Context, id int64) (Found[Album], bool, error) {
	found, ok, err := lookup(ctx, s.db, `
		SELECT ab_id, ab_id_artiste, ab_titre, ab_annee
		FROM tb_album
		WHERE ab_id = $1
	`, scanAlbum, id)
	if err != nil {
		return Found[Album]{}, false, fmt.Errorf("get album: %w", err)
	}
	return found, ok, nil
}

// CreateAlbum inserts a. An unknown artist fails with ErrMissingReference.
func (s *Store) CreateAlbum(ctx context.Context, a Album) (Album, error) {
	err := s.insert(ctx, "insert album", `
		INSERT INTO tb_album (ab_id, ab_id_artiste, ab_titre, ab_annee)
		VALUES ($1, $2, $3, $4)
	`, a.ID, a.ArtistID, a.Title, a.Year)
	if err != nil {
		return Album{}, err
	}
	return a, nil
}

// UpdateAlbum merges patch into the looked-up album and stores the result.
func (s *Store) UpdateAlbum(ctx context.Context, existing Found[Album], patch AlbumPatch) (Album, error) {
	a := patch.Apply(existing.Row())
	err := s.update(ctx, "update album", `
		UPDATE tb_album
		SET ab_id_artiste = $2, ab_titre = $3, ab_annee = $4
		WHERE ab_id = $1
	`, a.ID, a.ArtistID, a.Title, a.Year)
	if err != nil {
		return Album{}, err
	}
	return a, nil
}

// DeleteAlbum removes the looked-up album and returns it.
func (s *Store) DeleteAlbum(ctx context.Context, existing Found[Album]) (Album, error) {
	a := existing.Row()
	if err := s.remove(ctx, "delete album", `DELETE FROM tb_album WHERE ab_id = $1`, a.ID); err != nil {
		return Album{}, err
	}
	return a, nil
}

func scanAlbum(sc rowScanner) (Album, error) {
	var a Album
	if err := sc.Scan(&a.ID, &a.ArtistID, &a.Title, &a.Year); err != nil {
		return Album{}, fmt.Errorf("scan album: %w", err)
	}
	return a, nil
}
