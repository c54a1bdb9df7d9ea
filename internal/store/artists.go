package store

import (
	"context"
	"fmt"
)

// Artist is a row of tb_artiste.
type Artist struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nom"`
	FirstName   *string `json:"prenom"`
	Nationality *string `json:"nationalite"`
	Genre       string  `json:"genre"`
	Biography   *string `json:"biographie"`
}

// ArtistPatch carries the fields of a partial artist update. Nil fields are
// left untouched.
type ArtistPatch struct {
	Name        *string
	FirstName   *string
	Nationality *string
	Genre       *string
	Biography   *string
}

// Apply returns a copy of a with every non-nil patch field written over it.
func (p ArtistPatch) Apply(a Artist) Artist {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.FirstName != nil {
		a.FirstName = p.FirstName
	}
	if p.Nationality != nil {
		a.Nationality = p.Nationality
	}
	if p.Genre != nil {
		a.Genre = *p.Genre
	}
	if p.Biography != nil {
		a.Biography = p.Biography
	}
	return a
}

// ListArtists returns one page of artists ordered by id.
func (s *Store) ListArtists(ctx context.Context, page Page) ([]Artist, error) {
	artists, err := list(ctx, s.db, `
		SELECT at_id, at_nom, at_prenom, at_nationalite, at_genre, at_biographie
		FROM tb_artiste
		ORDER BY at_id
		LIMIT $1 OFFSET $2
	`, page, scanArtist)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return artists, nil
}

// Artist looks an artist up by id. A missing artist is reported through ok.
func (s *Store) Artist(ctx context.Context, id int64) (Found[Artist], bool, error) {
	found, ok, err := lookup(ctx, s.db, `
		SELECT at_id, at_nom, at_prenom, at_nationalite, at_genre, at_biographie
		FROM tb_artiste
		WHERE at_id = $1
	`, scanArtist, id)
	if err != nil {
		return Found[Artist]{}, false, fmt.Errorf("get artist: %w", err)
	}
	return found, ok, nil
}

// ArtistByName returns the first artist, by id, whose name matches exactly.
func (s *Store) ArtistByName(ctx context.Context, name string) (Found[Artist], bool, error) {
	found, ok, err := lookup(ctx, s.db, `
		SELECT at_id, at_nom, at_prenom, at_nationalite, at_genre, at_biographie
		FROM tb_artiste
		WHERE at_nom = $1
		ORDER BY at_id
		LIMIT 1
	`, scanArtist, name)
	if err != nil {
		return Found[Artist]{}, false, fmt.Errorf("find artist by name: %w", err)
	}
	return found, ok, nil
}

// CreateArtist inserts a with its caller-chosen id and echoes it back.
func (s *Store) CreateArtist(ctx context.Context, a Artist) (Artist, error) {
	err := s.insert(ctx, "insert artist", `
		INSERT INTO tb_artiste (at_id, at_nom, at_prenom, at_nationalite, at_genre, at_biographie)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, a.ID, a.Name, a.FirstName, a.Nationality, a.Genre, a.Biography)
	if err != nil {
		return Artist{}, err
	}
	return a, nil
}

// UpdateArtist merges patch into the looked-up artist and stores the result.
func (s *Store) UpdateArtist(ctx context.Context, existing Found[Artist], patch ArtistPatch) (Artist, error) {
	a := patch.Apply(existing.Row())
	err := s.update(ctx, "update artist", `
		UPDATE tb_artiste
		SET at_nom = $2, at_prenom = $3, at_nationalite = $4, at_genre = $5, at_biographie = $6
		WHERE at_id = $1
	`, a.ID, a.Name, a.FirstName, a.Nationality, a.Genre, a.Biography)
	if err != nil {
		return Artist{}, err
	}
	return a, nil
}

// DeleteArtist removes the looked-up artist and returns it.
func (s *Store) DeleteArtist(ctx context.Context, existing Found[Artist]) (Artist, error) {
	a := existing.Row()
	if err := s.remove(ctx, "delete artist", `DELETE FROM tb_artiste WHERE at_id = $1`, a.ID); err != nil {
		return Artist{}, err
	}
	return a, nil
}

func scanArtist(sc rowScanner) (Artist, error) {
	var a Artist
	if err := sc.Scan(&a.ID, &a.Name, &a.FirstName, &a.Nationality, &a.Genre, &a.Biography); err != nil {
		return Artist{}, fmt.Errorf("scan artist: %w", err)
	}
	return a, nil
}
