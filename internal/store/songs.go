package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// Song is a row of tb_song.
type Song struct {
	ID          int64       `json:"id"`
	AlbumID     *int64      `json:"id_album"`
	Title       string      `json:"titre"`
	ReleaseDate pgtype.Date `json:"date_de_sortie"`
}

// SongPatch carries the fields of a partial song update.
type SongPatch struct {
	AlbumID     *int64
	Title       *string
	ReleaseDate *pgtype.Date
}

// Apply returns a copy of song with every non-nil patch field written over it.
func (p SongPatch) Apply(song Song) Song {
	if p.AlbumID != nil {
		song.AlbumID = p.AlbumID
	}
	if p.Title != nil {
		song.Title = *p.Title
	}
	if p.ReleaseDate != nil && p.ReleaseDate.Valid {
		song.ReleaseDate = *p.ReleaseDate
	}
	return song
}

// ListSongs returns one page of songs ordered by id.
func (s *Store) ListSongs(ctx context.Context, page Page) ([]Song, error) {
	songs, err := list(ctx, s.db, `
		SELECT sg_id, sg_id_album, sg_titre, sg_datedesortie
		FROM tb_song
		ORDER BY sg_id
		LIMIT $1 OFFSET $2
	`, page, scanSong)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	return songs, nil
}

// Song looks a song up by id.
func (s *Store) Song(ctx context.Context, id int64) (Found[Song], bool, error) {
	found, ok, err := lookup(ctx, s.db, `
		SELECT sg_id, sg_id_album, sg_titre, sg_datedesortie
		FROM tb_song
		WHERE sg_id = $1
	`, scanSong, id)
	if err != nil {
		return Found[Song]{}, false, fmt.Errorf("get song: %w", err)
	}
	return found, ok, nil
}

// CreateSong inserts song and echoes it back.
func (s *Store) CreateSong(ctx context.Context, song Song) (Song, error) {
	err := s.insert(ctx, "insert song", `
		INSERT INTO tb_song (sg_id, sg_id_album, sg_titre, sg_datedesortie)
		VALUES ($1, $2, $3, $4)
	`, song.ID, song.AlbumID, song.Title, song.ReleaseDate)
	if err != nil {
		return Song{}, err
	}
	return song, nil
}

// UpdateSong merges patch into the looked-up song and stores the result.
func (s *Store) UpdateSong(ctx context.Context, existing Found[Song], patch SongPatch) (Song, error) {
	song := patch.Apply(existing.Row())
	err := s.update(ctx, "update song", `
		UPDATE tb_song
		SET sg_id_album = $2, sg_titre = $3, sg_datedesortie = $4
		WHERE sg_id = $1
	`, song.ID, song.AlbumID, song.Title, song.ReleaseDate)
	if err != nil {
		return Song{}, err
	}
	return song, nil
}

// DeleteSong removes the looked-up song and returns it.
func (s *Store) DeleteSong(ctx context.Context, existing Found[Song]) (Song, error) {
	song := existing.Row()
	if err := s.remove(ctx, "delete song", `DELETE FROM tb_song WHERE sg_id = $1`, song.ID); err != nil {
		return Song{}, err
	}
	return song, nil
}

func scanSong(sc rowScanner) (Song, error) {
	var song Song
	if err := sc.Scan(&song.ID, &song.AlbumID, &song.Title, &song.ReleaseDate); err != nil {
		return Song{}, fmt.Errorf("scan song: %w", err)
	}
	return song, nil
}
