package store

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var songColumns = []string{"sg_id", "sg_id_album", "sg_titre", "sg_datedesortie"}

func TestSongReleaseDateRoundTrip(t *testing.T) {
	s, mock := newMockStore(t)

	released := date(1975, time.November, 1)
	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT sg_id, sg_id_album, sg_titre, sg_datedesortie
		FROM tb_song
		WHERE sg_id = $1
	`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(songColumns).AddRow(int64(7), int64(4), "Hurricane", released.Time))

	found, ok, err := s.Song(context.Background(), 7)
	if err != nil || !ok {
		t.Fatalf("Song: ok=%v err=%v", ok, err)
	}

	body, err := json.Marshal(found.Row())
	if err != nil {
		t.Fatalf("marshal song: %v", err)
	}
	want := `{"id":7,"id_album":4,"titre":"Hurricane","date_de_sortie":"1975-11-01"}`
	if string(body) != want {
		t.Fatalf("expected %s, got %s", want, body)
	}
}

func TestListSongs(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT sg_id, sg_id_album, sg_titre, sg_datedesortie
		FROM tb_song
		ORDER BY sg_id
		LIMIT $1 OFFSET $2
	`)).
		WithArgs(1, 0).
		WillReturnRows(sqlmock.NewRows(songColumns).AddRow(int64(1), nil, "Single", date(2001, time.May, 2).Time))

	songs, err := s.ListSongs(context.Background(), Page{Limit: 1})
	if err != nil {
		t.Fatalf("ListSongs: %v", err)
	}
	if len(songs) != 1 || songs[0].AlbumID != nil || !songs[0].ReleaseDate.Valid {
		t.Fatalf("unexpected songs: %#v", songs)
	}
}

func TestCreateSongWritesReleaseDate(t *testing.T) {
	s, mock := newMockStore(t)

	album := int64(4)
	released := date(1975, time.November, 1)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO tb_song (sg_id, sg_id_album, sg_titre, sg_datedesortie)
		VALUES ($1, $2, $3, $4)
	`)).
		WithArgs(int64(7), album, "Hurricane", released.Time).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if _, err := s.CreateSong(context.Background(), Song{ID: 7, AlbumID: &album, Title: "Hurricane", ReleaseDate: released}); err != nil {
		t.Fatalf("CreateSong: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateSongChangesReleaseDate(t *testing.T) {
	s, mock := newMockStore(t)

	existing := Found[Song]{row: Song{ID: 7, Title: "Hurricane", ReleaseDate: date(1975, time.November, 1)}}
	reissued := date(1976, time.January, 5)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE tb_song
		SET sg_id_album = $2, sg_titre = $3, sg_datedesortie = $4
		WHERE sg_id = $1
	`)).
		WithArgs(int64(7), nil, "Hurricane", reissued.Time).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := s.UpdateSong(context.Background(), existing, SongPatch{ReleaseDate: &reissued})
	if err != nil {
		t.Fatalf("UpdateSong: %v", err)
	}
	if got.ReleaseDate != reissued {
		t.Fatalf("unexpected song: %#v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteSongReturnsRow(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tb_song WHERE sg_id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := s.DeleteSong(context.Background(), Found[Song]{row: Song{ID: 7, Title: "Hurricane"}})
	if err != nil {
		t.Fatalf("DeleteSong: %v", err)
	}
	if got.Title != "Hurricane" {
		t.Fatalf("unexpected deleted song: %#v", got)
	}
}

func TestUpdateSongVanishedRow(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE tb_song`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err := s.UpdateSong(context.Background(), Found[Song]{row: Song{ID: 7}}, SongPatch{Title: strPtr("Isis")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
