package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

var playlistColumns = []string{"pl_id", "pl_id_user", "pl_titre", "pl_description"}

func TestListPlaylists(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT pl_id, pl_id_user, pl_titre, pl_description
		FROM tb_playlist
		ORDER BY pl_id
		LIMIT $1 OFFSET $2
	`)).
		WithArgs(DefaultLimit, 0).
		WillReturnRows(sqlmock.NewRows(playlistColumns).
			AddRow(int64(1), int64(3), "Road trip", "Long drives").
			AddRow(int64(2), nil, "Orphaned", nil))

	playlists, err := s.ListPlaylists(context.Background(), Page{})
	if err != nil {
		t.Fatalf("ListPlaylists: %v", err)
	}
	if len(playlists) != 2 || *playlists[0].UserID != 3 || *playlists[0].Description != "Long drives" {
		t.Fatalf("unexpected playlists: %#v", playlists)
	}
	if playlists[1].UserID != nil || playlists[1].Description != nil {
		t.Fatalf("expected NULL columns to stay nil: %#v", playlists[1])
	}
}

func TestPlaylistAbsent(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT pl_id, pl_id_user, pl_titre, pl_description
		FROM tb_playlist
		WHERE pl_id = $1
	`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(playlistColumns))

	_, ok, err := s.Playlist(context.Background(), 5)
	if err != nil || ok {
		t.Fatalf("expected a missing playlist, got ok=%v err=%v", ok, err)
	}
}

func TestCreatePlaylistEchoesInput(t *testing.T) {
	s, mock := newMockStore(t)

	owner := int64(3)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO tb_playlist (pl_id, pl_id_user, pl_titre, pl_description)
		VALUES ($1, $2, $3, $4)
	`)).
		WithArgs(int64(1), owner, "Road trip", "Long drives").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	in := Playlist{ID: 1, UserID: &owner, Title: "Road trip", Description: strPtr("Long drives")}
	got, err := s.CreatePlaylist(context.Background(), in)
	if err != nil {
		t.Fatalf("CreatePlaylist: %v", err)
	}
	if got != in {
		t.Fatalf("expected %#v, got %#v", in, got)
	}
}

func TestUpdatePlaylistDescription(t *testing.T) {
	s, mock := newMockStore(t)

	owner := int64(3)
	existing := Found[Playlist]{row: Playlist{ID: 1, UserID: &owner, Title: "Road trip"}}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE tb_playlist
		SET pl_id_user = $2, pl_titre = $3, pl_description = $4
		WHERE pl_id = $1
	`)).
		WithArgs(int64(1), owner, "Road trip", "Night drives").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := s.UpdatePlaylist(context.Background(), existing, PlaylistPatch{Description: strPtr("Night drives")})
	if err != nil {
		t.Fatalf("UpdatePlaylist: %v", err)
	}
	if *got.Description != "Night drives" || *got.UserID != 3 {
		t.Fatalf("unexpected playlist: %#v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteSharedPlaylist(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tb_playlist WHERE pl_id = $1`)).
		WithArgs(int64(1)).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "tb_partager_pa_id_playlist_fkey"})
	mock.ExpectRollback()

	_, err := s.DeletePlaylist(context.Background(), Found[Playlist]{row: Playlist{ID: 1}})
	if !errors.Is(err, ErrReferenced) {
		t.Fatalf("expected ErrReferenced, got %v", err)
	}
}
