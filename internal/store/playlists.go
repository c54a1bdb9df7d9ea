package store

import (
	"context"
	"fmt"
)

// Playlist is a row of tb_playlist.
type Playlist struct {
	ID          int64   `json:"id"`
	UserID      *int64  `json:"id_user"`
	Title       string  `json:"titre"`
	Description *string `json:"description"`
}

// PlaylistPatch carries the fields of a partial playlist update.
type PlaylistPatch struct {
	UserID      *int64
	Title       *string
	Description *string
}

// Apply returns a copy of p with every non-nil patch field written over it.
func (patch PlaylistPatch) Apply(p Playlist) Playlist {
	if patch.UserID != nil {
		p.UserID = patch.UserID
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = patch.Description
	}
	return p
}

// ListPlaylists returns one page of playlists ordered by id.
func (s *Store) ListPlaylists(ctx context.Context, page Page) ([]Playlist, error) {
	playlists, err := list(ctx, s.db, `
		SELECT pl_id, pl_id_user, pl_titre, pl_description
		FROM tb_playlist
		ORDER BY pl_id
		LIMIT $1 OFFSET $2
	`, page, scanPlaylist)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	return playlists, nil
}

// Playlist looks a playlist up by id.
func (s *Store) Playlist(ctx context.Context, id int64) (Found[Playlist], bool, error) {
	found, ok, err := lookup(ctx, s.db, `
		SELECT pl_id, pl_id_user, pl_titre, pl_description
		FROM tb_playlist
		WHERE pl_id = $1
	`, scanPlaylist, id)
	if err != nil {
		return Found[Playlist]{}, false, fmt.Errorf("get playlist: %w", err)
	}
	return found, ok, nil
}

// CreatePlaylist inserts p. An unknown owner fails with ErrMissingReference.
func (s *Store) CreatePlaylist(ctx context.Context, p Playlist) (Playlist, error) {
	err := s.insert(ctx, "insert playlist", `
		INSERT INTO tb_playlist (pl_id, pl_id_user, pl_titre, pl_description)
		VALUES ($1, $2, $3, $4)
	`, p.ID, p.UserID, p.Title, p.Description)
	if err != nil {
		return Playlist{}, err
	}
	return p, nil
}

// UpdatePlaylist merges patch into the looked-up playlist and stores the result.
func (s *Store) UpdatePlaylist(ctx context.Context, existing Found[Playlist], patch PlaylistPatch) (Playlist, error) {
	p := patch.Apply(existing.Row())
	err := s.update(ctx, "update playlist", `
		UPDATE tb_playlist
		SET pl_id_user = $2, pl_titre = $3, pl_description = $4
		WHERE pl_id = $1
	`, p.ID, p.UserID, p.Title, p.Description)
	if err != nil {
		return Playlist{}, err
	}
	return p, nil
}

// DeletePlaylist removes the looked-up playlist and returns it.
func (s *Store) DeletePlaylist(ctx context.Context, existing Found[Playlist]) (Playlist, error) {
	p := existing.Row()
	if err := s.remove(ctx, "delete playlist", `DELETE FROM tb_playlist WHERE pl_id = $1`, p.ID); err != nil {
		return Playlist{}, err
	}
	return p, nil
}

func scanPlaylist(sc rowScanner) (Playlist, error) {
	var p Playlist
	if err := sc.Scan(&p.ID, &p.UserID, &p.Title, &p.Description); err != nil {
		return Playlist{}, fmt.Errorf("scan playlist: %w", err)
	}
	return p, nil
}
